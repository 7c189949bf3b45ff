// Package entropy wraps the operating system's CSPRNG so that UPID
// construction can be stubbed in tests. It lives under `internal` because
// callers should treat the randomness source as opaque.
package entropy

import crand "crypto/rand"

// ReadFunc fills b with cryptographically random bytes. Override in tests
// for determinism.
var ReadFunc = func(b []byte) {
	if _, err := crand.Read(b); err != nil {
		// The OS randomness source is treated as infallible; if it is gone
		// the host environment is broken beyond anything this library can do.
		panic("upid: reading OS randomness: " + err.Error())
	}
}

// Read fills b via ReadFunc.
func Read(b []byte) { ReadFunc(b) }
