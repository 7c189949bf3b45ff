package upid

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"

	"github.com/carderne/upid/internal/b32"
	"github.com/carderne/upid/internal/clock"
	"github.com/carderne/upid/internal/entropy"
)

// Size is the byte length of a binary UPID.
const Size = 16

// Version is the layout version symbol packed into the low four bits of
// every UPID. It is restricted to the first half of the alphabet so the
// prefix field's padding bit stays clear.
const Version = "a"

const (
	prefixLen = 4
	filler    = 'z'
)

// UPID is a 128-bit, time-sortable unique identifier with a four-character
// prefix, held in big-endian binary order: 5 bytes of truncated millisecond
// timestamp, 8 random bytes, then 3 bytes packing the prefix and version.
//
// The zero value is valid but all-zero; create identifiers with New and
// its variants. UPID is comparable, so == and map keys work directly;
// both compare raw bytes, as does Compare.
type UPID [Size]byte

// New returns a UPID for prefix using the current wall-clock time.
//
// Successive calls produce byte-increasing identifiers only as far as the
// host clock is monotonic; the library does not enforce ordering within or
// across processes.
func New(prefix string) UPID {
	return NewWithMilliseconds(prefix, clock.Milliseconds())
}

// NewWithTime returns a UPID for prefix stamped with the given time.
// Times before the Unix epoch are clamped to the epoch.
func NewWithTime(prefix string, t time.Time) UPID {
	ms := t.UnixMilli()
	if ms < 0 {
		ms = 0
	}
	return NewWithMilliseconds(prefix, uint64(ms))
}

// NewWithMilliseconds returns a UPID for prefix stamped with the given
// milliseconds since the Unix epoch. The bottom byte of the timestamp is
// dropped before storage, so recovered timestamps are accurate to about
// 256ms and never later than the value supplied here.
func NewWithMilliseconds(prefix string, ms uint64) UPID {
	var id UPID

	ts := ms >> 8
	id[0] = byte(ts >> 32)
	id[1] = byte(ts >> 24)
	id[2] = byte(ts >> 16)
	id[3] = byte(ts >> 8)
	id[4] = byte(ts)

	entropy.Read(id[5:13])

	packed, err := b32.DecodePrefix(normalizePrefix(prefix) + Version)
	if err != nil {
		// normalizePrefix guarantees alphabet membership and the version
		// symbol keeps the padding bit clear, so decoding cannot fail.
		panic("upid: " + err.Error())
	}
	copy(id[13:], packed)
	return id
}

// Parse converts the 27-character text form back into a UPID. It fails on
// wrong length, characters outside the alphabet, and final padded symbols
// that no valid encoder can produce; see ErrInvalidLength, ErrInvalidChar
// and ErrOverflow.
func Parse(encoded string) (UPID, error) {
	b, err := b32.Decode(encoded)
	if err != nil {
		return UPID{}, err
	}
	var id UPID
	copy(id[:], b)
	return id, nil
}

// MustParse is Parse, panicking on invalid input. Intended for constants
// and tests.
func MustParse(encoded string) UPID {
	id, err := Parse(encoded)
	if err != nil {
		panic(err)
	}
	return id
}

// FromBytes returns the UPID held in b, which must be exactly 16 bytes in
// the binary layout described on UPID.
func FromBytes(b []byte) (UPID, error) {
	if len(b) != Size {
		return UPID{}, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidLength, len(b), Size)
	}
	var id UPID
	copy(id[:], b)
	return id, nil
}

// normalizePrefix maps bytes outside the alphabet to the filler symbol,
// right-pads to four characters and cuts anything longer.
func normalizePrefix(prefix string) string {
	b := []byte{filler, filler, filler, filler}
	for i := 0; i < len(prefix) && i < prefixLen; i++ {
		if b32.InAlphabet(prefix[i]) {
			b[i] = prefix[i]
		}
	}
	return string(b)
}

// Prefix returns the four-character prefix, normalised as at construction.
func (id UPID) Prefix() string {
	prefix, _, _ := b32.EncodePrefix(id[13:]) // length is fixed here
	return prefix
}

// Milliseconds returns the identifier's timestamp in milliseconds since
// the Unix epoch. The dropped bottom byte reads back as zero, so the value
// is accurate to about 256ms and never later than the construction time.
func (id UPID) Milliseconds() uint64 {
	ts := uint64(id[0])<<32 | uint64(id[1])<<24 | uint64(id[2])<<16 |
		uint64(id[3])<<8 | uint64(id[4])
	return ts << 8
}

// Time returns the identifier's timestamp as a UTC time, with the same
// 256ms precision as Milliseconds.
func (id UPID) Time() time.Time {
	return time.UnixMilli(int64(id.Milliseconds())).UTC()
}

// Hex returns the raw 16 bytes as a 32-character lower-case hex string.
func (id UPID) Hex() string {
	return hex.EncodeToString(id[:])
}

// BigInt returns the identifier as an unsigned 128-bit big-endian integer.
func (id UPID) BigInt() *big.Int {
	return new(big.Int).SetBytes(id[:])
}

// Bytes returns a copy of the raw 16 bytes.
func (id UPID) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, id[:])
	return b
}

// Compare returns -1, 0 or 1 ordering id against other byte-wise. The
// timestamp occupies the most significant bytes, so identifiers sort
// chronologically, with randomness and prefix breaking ties inside the
// same ~256ms bucket.
func (id UPID) Compare(other UPID) int {
	return bytes.Compare(id[:], other[:])
}

// Less reports whether id sorts before other.
func (id UPID) Less(other UPID) bool {
	return id.Compare(other) < 0
}
