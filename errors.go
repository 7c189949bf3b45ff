package upid

import "github.com/carderne/upid/internal/b32"

// Decode failures surfaced by Parse, Scan and the unmarshalling methods.
// Re-exported from the internal codec so callers can match them with
// errors.Is. Every failure is a value-validation error, terminal for the
// call; nothing is retried or partially recovered.
var (
	// ErrInvalidLength reports input that is not exactly the required
	// length, whether binary bytes or text characters (counted after the
	// cosmetic separator is stripped).
	ErrInvalidLength = b32.ErrInvalidLength

	// ErrInvalidChar reports text containing a character outside the
	// 32-symbol alphabet.
	ErrInvalidChar = b32.ErrInvalidChar

	// ErrOverflow reports a padded field whose final symbol sets its
	// implicit padding bit; accepting it would corrupt the adjacent field.
	ErrOverflow = b32.ErrOverflow
)
