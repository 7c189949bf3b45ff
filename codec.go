package upid

import "github.com/carderne/upid/internal/b32"

// String returns the 27-character text form: the prefix, a "_" separator,
// then timestamp, randomness and version symbols.
func (id UPID) String() string {
	s, _ := b32.Encode(id[:]) // length is fixed here
	return s
}

// MarshalText implements encoding.TextMarshaler using the text form.
// encoding/json picks this up, so UPIDs serialise as JSON strings.
func (id UPID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with the same error
// taxonomy as Parse.
func (id *UPID) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler using the raw 16-byte
// form.
func (id UPID) MarshalBinary() ([]byte, error) {
	return id.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler; data must be
// exactly 16 bytes.
func (id *UPID) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes(data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
