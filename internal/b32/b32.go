// Package b32 implements the base32 codec behind UPID's text form.
//
// The alphabet is a modified Crockford base32: numerals first so encoded
// timestamps sort sensibly, then the full lower-case latin alphabet so any
// sensible prefix can be spelled. Binary field order is
// timestamp|randomness|prefix+version, while the string order is
// prefix|timestamp|randomness|version; Encode and Decode translate between
// the two layouts.
package b32

import (
	"errors"
	"fmt"
	"strings"
)

// Binary field widths, in bytes.
const (
	timeBinLen   = 5
	randoBinLen  = 8
	endRandoBin  = timeBinLen + randoBinLen
	prefixBinLen = 3 // includes the version nibble

	// BinLen is the total byte length of a binary UPID.
	BinLen = timeBinLen + randoBinLen + prefixBinLen
)

// String field widths, in characters.
const (
	prefixCharLen  = 4 // excluding the version char
	timeCharLen    = 8
	endTimeChar    = prefixCharLen + timeCharLen
	randoCharLen   = 13
	versionCharLen = 1

	// CharLen is the character length of an encoded UPID, separator excluded.
	CharLen = prefixCharLen + timeCharLen + randoCharLen + versionCharLen
)

// Alphabet maps each 5-bit value 0-31 to its base32 symbol.
const Alphabet = "234567abcdefghijklmnopqrstuvwxyz"

// invalid marks an ASCII byte with no alphabet index.
const invalid = 0xFF

// decodeTable is the O(1) inverse of Alphabet: ascii byte -> alphabet index,
// or invalid for bytes outside the alphabet.
var decodeTable = func() (t [256]byte) {
	for i := range t {
		t[i] = invalid
	}
	for i := 0; i < len(Alphabet); i++ {
		t[Alphabet[i]] = byte(i)
	}
	return t
}()

// Decode failures. Sentinel values so callers can match with errors.Is;
// every failure is value-level and terminal for the call.
var (
	// ErrInvalidLength is returned when an input is not exactly the length
	// the unit requires.
	ErrInvalidLength = errors.New("upid: invalid length")

	// ErrInvalidChar is returned when a decode input contains a character
	// outside the alphabet.
	ErrInvalidChar = errors.New("upid: invalid character")

	// ErrOverflow is returned when the final symbol of a padded unit would
	// set its implicit padding bit, which no valid encoder can produce.
	ErrOverflow = errors.New("upid: overflow")
)

// InAlphabet reports whether c is one of the 32 alphabet symbols.
func InAlphabet(c byte) bool {
	return decodeTable[c] != invalid
}

// Encode converts a 16-byte binary UPID to its 27-character text form,
// prefix first and a "_" separator after it.
func Encode(binary []byte) (string, error) {
	if len(binary) != BinLen {
		return "", fmt.Errorf("%w: UPID must be exactly %d bytes", ErrInvalidLength, BinLen)
	}
	t, err := EncodeTime(binary[:timeBinLen])
	if err != nil {
		return "", err
	}
	r, err := EncodeRando(binary[timeBinLen:endRandoBin])
	if err != nil {
		return "", err
	}
	prefix, version, err := EncodePrefix(binary[endRandoBin:])
	if err != nil {
		return "", err
	}
	return prefix + "_" + t + r + version, nil
}

// EncodeTime converts the 5-byte timestamp field to 8 characters.
// 40 bits map onto exactly eight 5-bit symbols, so no padding is involved.
func EncodeTime(binary []byte) (string, error) {
	if len(binary) != timeBinLen {
		return "", fmt.Errorf("%w: timestamp must be exactly %d bytes", ErrInvalidLength, timeBinLen)
	}
	buf := []byte{
		Alphabet[binary[0]>>3],
		Alphabet[(binary[0]&7)<<2|binary[1]>>6],
		Alphabet[(binary[1]&62)>>1],
		Alphabet[(binary[1]&1)<<4|binary[2]>>4],
		Alphabet[(binary[2]&15)<<1|binary[3]>>7],
		Alphabet[(binary[3]&124)>>2],
		Alphabet[(binary[3]&3)<<3|binary[4]>>5],
		Alphabet[binary[4]&31],
	}
	return string(buf), nil
}

// EncodeRando converts the 8-byte randomness field to 13 characters.
// 64 bits become 65, so the final symbol carries an implicit 0 padding bit
// and stays in the first half of the alphabet.
func EncodeRando(binary []byte) (string, error) {
	if len(binary) != randoBinLen {
		return "", fmt.Errorf("%w: randomness must be exactly %d bytes", ErrInvalidLength, randoBinLen)
	}
	buf := []byte{
		Alphabet[binary[0]>>3],
		Alphabet[(binary[0]&7)<<2|binary[1]>>6],
		Alphabet[(binary[1]&62)>>1],
		Alphabet[(binary[1]&1)<<4|binary[2]>>4],
		Alphabet[(binary[2]&15)<<1|binary[3]>>7],
		Alphabet[(binary[3]&124)>>2],
		Alphabet[(binary[3]&3)<<3|binary[4]>>5],
		Alphabet[binary[4]&31],
		Alphabet[binary[5]>>3],
		Alphabet[(binary[5]&7)<<2|binary[6]>>6],
		Alphabet[(binary[6]&62)>>1],
		Alphabet[(binary[6]&1)<<4|binary[7]>>4],
		Alphabet[binary[7]&15], // implicit 0 padding bit
	}
	return string(buf), nil
}

// EncodePrefix converts the 3-byte prefix+version field to the 4-character
// prefix and the 1-character version. 24 bits become 25, so the version
// symbol carries the implicit 0 padding bit.
func EncodePrefix(binary []byte) (prefix, version string, err error) {
	if len(binary) != prefixBinLen {
		return "", "", fmt.Errorf("%w: prefix must be exactly %d bytes", ErrInvalidLength, prefixBinLen)
	}
	buf := []byte{
		Alphabet[binary[0]>>3],
		Alphabet[(binary[0]&7)<<2|binary[1]>>6],
		Alphabet[(binary[1]&62)>>1],
		Alphabet[(binary[1]&1)<<4|binary[2]>>4],
	}
	return string(buf), string(Alphabet[binary[2]&15]), nil
}

// Decode converts an encoded UPID back to its 16-byte binary form. Every
// "_" is cosmetic and stripped before validation. The string is length and
// alphabet checked up front, then re-sliced into the three regions; note
// the prefix decoder also receives the trailing version character.
func Decode(encoded string) ([]byte, error) {
	encoded = strings.ReplaceAll(encoded, "_", "")
	if len(encoded) != CharLen {
		return nil, fmt.Errorf("%w: encoded UPID must be exactly %d characters", ErrInvalidLength, CharLen)
	}
	for i := 0; i < len(encoded); i++ {
		if !InAlphabet(encoded[i]) {
			return nil, fmt.Errorf("%w: %q is not in the UPID alphabet", ErrInvalidChar, encoded[i])
		}
	}

	prefix, err := DecodePrefix(encoded[:prefixCharLen] + encoded[CharLen-1:])
	if err != nil {
		return nil, err
	}
	t, err := DecodeTime(encoded[prefixCharLen:endTimeChar])
	if err != nil {
		return nil, err
	}
	rando, err := DecodeRando(encoded[endTimeChar : CharLen-1])
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, BinLen)
	out = append(out, t...)
	out = append(out, rando...)
	out = append(out, prefix...)
	return out, nil
}

// DecodePrefix converts the 4 prefix characters plus the version character
// into the 3-byte prefix+version field. 25 bits collapse to 24, so a final
// symbol past the first half of the alphabet would spill outside the 128
// bits and is rejected.
func DecodePrefix(encoded string) ([]byte, error) {
	if len(encoded) != prefixCharLen+versionCharLen {
		return nil, fmt.Errorf("%w: prefix must be exactly %d characters plus version", ErrInvalidLength, prefixCharLen)
	}
	v0 := decodeTable[encoded[0]]
	v1 := decodeTable[encoded[1]]
	v2 := decodeTable[encoded[2]]
	v3 := decodeTable[encoded[3]]
	v4 := decodeTable[encoded[4]]
	if v4 > 15 {
		return nil, fmt.Errorf("%w: prefix %q is too large for 128 bits", ErrOverflow, encoded)
	}
	return []byte{
		v0<<3 | v1>>2,
		v1<<6 | v2<<1 | v3>>4,
		v3<<4 | v4&15, // drops the padding bit
	}, nil
}

// DecodeTime converts the 8 timestamp characters into the 5-byte timestamp
// field. The bit widths line up exactly, so after the caller's alphabet
// check this cannot fail; it returns an error to match its peers.
func DecodeTime(encoded string) ([]byte, error) {
	if len(encoded) != timeCharLen {
		return nil, fmt.Errorf("%w: timestamp must be exactly %d characters", ErrInvalidLength, timeCharLen)
	}
	v0 := decodeTable[encoded[0]]
	v1 := decodeTable[encoded[1]]
	v2 := decodeTable[encoded[2]]
	v3 := decodeTable[encoded[3]]
	v4 := decodeTable[encoded[4]]
	v5 := decodeTable[encoded[5]]
	v6 := decodeTable[encoded[6]]
	v7 := decodeTable[encoded[7]]
	return []byte{
		v0<<3 | v1>>2,
		v1<<6 | v2<<1 | v3>>4,
		v3<<4 | v4>>1,
		v4<<7 | v5<<2 | v6>>3,
		v6<<5 | v7,
	}, nil
}

// DecodeRando converts the 13 randomness characters into the 8-byte
// randomness field. 65 bits collapse to 64; a final symbol with the padding
// bit set would corrupt the adjacent prefix field and is rejected.
func DecodeRando(encoded string) ([]byte, error) {
	if len(encoded) != randoCharLen {
		return nil, fmt.Errorf("%w: randomness must be exactly %d characters", ErrInvalidLength, randoCharLen)
	}
	v0 := decodeTable[encoded[0]]
	v1 := decodeTable[encoded[1]]
	v2 := decodeTable[encoded[2]]
	v3 := decodeTable[encoded[3]]
	v4 := decodeTable[encoded[4]]
	v5 := decodeTable[encoded[5]]
	v6 := decodeTable[encoded[6]]
	v7 := decodeTable[encoded[7]]
	v8 := decodeTable[encoded[8]]
	v9 := decodeTable[encoded[9]]
	v10 := decodeTable[encoded[10]]
	v11 := decodeTable[encoded[11]]
	v12 := decodeTable[encoded[12]]
	if v12 > 15 {
		return nil, fmt.Errorf("%w: randomness %q is too large for 128 bits", ErrOverflow, encoded)
	}
	return []byte{
		v0<<3 | v1>>2,
		v1<<6 | v2<<1 | v3>>4,
		v3<<4 | v4>>1,
		v4<<7 | v5<<2 | v6>>3,
		v6<<5 | v7,
		v8<<3 | v9>>2,
		v9<<6 | v10<<1 | v11>>4,
		v11<<4 | v12&15, // drops the padding bit
	}, nil
}
