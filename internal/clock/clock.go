// Package clock wraps the wall clock so UPID construction can be stubbed
// in tests. It lives under `internal` because callers should not rely on
// its exact behaviour or API.
package clock

import "time"

// NowFunc returns the current time. Override in tests for determinism.
var NowFunc = time.Now

// Now is a thin wrapper around NowFunc.
func Now() time.Time { return NowFunc() }

// Milliseconds returns the current time in integer milliseconds since the
// Unix epoch, clamped to zero should the host clock sit before the epoch.
func Milliseconds() uint64 {
	ms := Now().UnixMilli()
	if ms < 0 {
		return 0
	}
	return uint64(ms)
}
