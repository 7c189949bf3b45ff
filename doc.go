// Package upid implements UPID, a 128-bit alternative to UUID and ULID
// that carries a useful four-character prefix.
//
// A UPID is stored as 16 bytes, sorts by creation time, and keeps 64 bits
// of randomness. Its text form uses a modified Crockford base32 alphabet,
// lower-case with letters prioritised, so any sensible prefix can be
// spelled:
//
//	id := upid.New("user")
//	text := id.String()        // e.g. user_aaccvpp5guht4dts56je5a
//	same, _ := upid.Parse(text)
//
// Within the 16 bytes the first 40 bits are a unix millisecond timestamp
// with the bottom byte dropped (about 256ms precision), the next 64 are
// random, and the last 24 pack the prefix together with a version tag.
// Because the timestamp leads, byte order is chronological order.
//
// Prefixes are normalised rather than rejected: characters outside the
// alphabet become 'z', short prefixes are right-padded with 'z', long ones
// are cut to four characters.
package upid
