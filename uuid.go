package upid

import "github.com/google/uuid"

// UUID reinterprets the identifier's 16 bytes as a standard UUID. This is
// a relabelling only; no bits change, so the result will not carry a
// meaningful RFC 4122 version or variant.
func (id UPID) UUID() uuid.UUID {
	return uuid.UUID(id)
}

// FromUUID reinterprets a UUID's 16 bytes as a UPID. Lossless inverse of
// UPID.UUID; applied to an arbitrary UUID the prefix and timestamp fields
// will simply read back as noise.
func FromUUID(u uuid.UUID) UPID {
	return UPID(u)
}
