// Package model defines the records the game server returns and their
// mapping onto the indexed format.
//
// # Records
//
// Every record kind has a schema (field names are the server's numeric keys
// in keyed mode), a Format naming its delimiter and mode, a Decode function
// and an Encode method:
//
//	Level           ":"    keyed
//	Creator         ":"    positional
//	NewgroundsSong  "~|~"  keyed
//	Profile         ":"    keyed
//	SearchedUser    ":"    keyed
//	LevelComment    "~"    keyed
//	CommentUser     "~"    keyed
//	ProfileComment  "~"    keyed
//
// # Relations
//
// Some records refer to others by id (a level names its creator's user id
// and its custom song id). The ids are always kept; the resolved pointers
// (Level.Creator, Level.CustomSong, LevelComment.User) are filled in by the
// response decoder and stay nil when the referenced record is not part of
// the response.
//
// # Lazy fields
//
// Base64 or percent-encoded fields (descriptions, comment bodies, song
// links, level data) are kept as wire text inside a Thunk and decoded on
// first access.
package model
