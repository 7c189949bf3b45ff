package upid

import (
	"database/sql/driver"
	"fmt"

	"github.com/google/uuid"
)

// Scan implements sql.Scanner. It accepts the 27-character text form, the
// raw 16-byte binary form, and, for columns written by UUID tooling, the
// canonical UUID string form of the same 16 bytes.
func (id *UPID) Scan(src interface{}) error {
	switch src := src.(type) {
	case string:
		return id.scanText(src)
	case []byte:
		if len(src) == Size {
			copy(id[:], src)
			return nil
		}
		return id.scanText(string(src))
	default:
		return fmt.Errorf("upid: cannot scan %T into UPID", src)
	}
}

// scanText tries the UPID text form first, then the UUID string form.
// The original decode error wins if neither matches.
func (id *UPID) scanText(s string) error {
	parsed, err := Parse(s)
	if err == nil {
		*id = parsed
		return nil
	}
	u, uerr := uuid.Parse(s)
	if uerr != nil {
		return err
	}
	*id = FromUUID(u)
	return nil
}

// Value implements driver.Valuer, emitting the text form.
func (id UPID) Value() (driver.Value, error) {
	return id.String(), nil
}
