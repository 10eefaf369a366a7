// Package wire implements the indexed text format used by the game server.
//
// The indexed format is a flat, delimiter-separated rendering of a record.
// Every record kind picks its own delimiter (":" for levels and profiles,
// "~" for comments, "~|~" for songs), and the list that joins many records
// of one kind uses yet another one. The package never sees those lists; it
// encodes and decodes exactly one record per call.
//
// # Encoding Modes
//
// There are two modes:
//   - Positional: only the values are written, in schema order.
//     "4170784:Serponge:119741"
//   - Keyed: every value is preceded by its field name.
//     "1:1234:2:Bloodbath:5:3"
//
// # Scalars
//
// Scalars are written as plain text:
//   - bool: "1" or "0"
//   - integers: decimal, no leading zeros
//   - floats: shortest decimal; integral values carry no fraction ("11", not "11.0")
//   - char, string: raw UTF-8
//   - bytes: URL-safe base64 with padding
//
// # Absent vs Empty
//
// An absent optional value writes nothing but still occupies its slot, so
// positional field indices never shift. A present empty string produces the
// same text. The decoder resolves the ambiguity from the schema alone: an
// empty field declared Optional decodes as absent, an empty field declared
// String decodes as "".
//
// # Unsupported Shapes
//
// Sequences, tuples, maps, unit values and enum variants have no
// representation in the format. They can be described as Values, but the
// encoder rejects them with an UnsupportedError naming the construct.
package wire
