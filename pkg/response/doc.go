// Package response decodes complete server replies into typed records.
//
// A reply body is first checked against the reserved bodies ("-1" for not
// found, "error code: 1005" for a blocked client), then split into '#'
// separated sections. Each section is split into record fragments with an
// endpoint-specific delimiter, empty fragments are dropped, and every
// fragment is decoded with the record codec. Records that refer to each
// other by id (a level and its creator or custom song) are linked up after
// decoding; a reference with no matching record is left nil and never fails
// the decode.
//
// Any record that fails to decode aborts the whole call; no partial results
// are returned.
//
// The package-level Parse functions use a Decoder without logging. Use
// NewDecoder with a DecoderConfig to capture protocol events.
package response
