package b32

import (
	"encoding/hex"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDecodeTable(t *testing.T) {
	var want [256]byte
	for i := range want {
		want[i] = invalid
	}
	for i := 0; i < len(Alphabet); i++ {
		want[Alphabet[i]] = byte(i)
	}
	assert.Equal(t, want, decodeTable)
	assert.Len(t, Alphabet, 32)
}

func TestInAlphabet(t *testing.T) {
	for i := 0; i < len(Alphabet); i++ {
		assert.True(t, InAlphabet(Alphabet[i]))
	}
	for _, c := range []byte{'0', '1', '8', '9', 'A', 'Z', '_', ' ', 0, 0xFF} {
		assert.False(t, InAlphabet(c), "byte %q", c)
	}
}

func TestVectors(t *testing.T) {
	data, err := os.ReadFile("testdata/vectors.yaml")
	require.NoError(t, err)

	var fixture struct {
		Vectors []struct {
			Name string `yaml:"name"`
			Hex  string `yaml:"hex"`
			Text string `yaml:"text"`
		} `yaml:"vectors"`
	}
	require.NoError(t, yaml.Unmarshal(data, &fixture))
	require.NotEmpty(t, fixture.Vectors)

	for _, vec := range fixture.Vectors {
		t.Run(vec.Name, func(t *testing.T) {
			binary, err := hex.DecodeString(vec.Hex)
			require.NoError(t, err)

			encoded, err := Encode(binary)
			require.NoError(t, err)
			assert.Equal(t, vec.Text, encoded)

			decoded, err := Decode(vec.Text)
			require.NoError(t, err)
			assert.Equal(t, binary, decoded)
		})
	}
}

func TestEncodeSubFields(t *testing.T) {
	timeStr, err := EncodeTime([]byte{1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, "2632a327", timeStr)

	rando, err := EncodeRando([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	require.NoError(t, err)
	assert.Equal(t, "2632a3272s5kc", rando)

	prefix, version, err := EncodePrefix([]byte{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, "2632", prefix)
	assert.Equal(t, "5", version)
}

func TestDecodeSubFields(t *testing.T) {
	timeBin, err := DecodeTime("abcdefgh")
	require.NoError(t, err)
	assert.Equal(t, "31d0952d8d", hex.EncodeToString(timeBin))

	rando, err := DecodeRando("abcdefghabcde")
	require.NoError(t, err)
	assert.Equal(t, "31d0952d8d31d09a", hex.EncodeToString(rando))

	prefix, err := DecodePrefix("usera")
	require.NoError(t, err)
	assert.Equal(t, "d61576", hex.EncodeToString(prefix))
}

func TestSubFieldRoundTrip(t *testing.T) {
	timeBin := []byte{0x01, 0x90, 0x99, 0x61, 0xad}
	encoded, err := EncodeTime(timeBin)
	require.NoError(t, err)
	decoded, err := DecodeTime(encoded)
	require.NoError(t, err)
	assert.Equal(t, timeBin, decoded)

	// the padded fields round-trip exactly because the padding bit is
	// implicit on encode and dropped on decode
	randoBin := []byte{0xde, 0xad, 0xbe, 0xef, 0xca, 0xfe, 0xba, 0xbe}
	encoded, err = EncodeRando(randoBin)
	require.NoError(t, err)
	decoded, err = DecodeRando(encoded)
	require.NoError(t, err)
	assert.Equal(t, randoBin, decoded)

	prefixBin := []byte{0xd6, 0x15, 0x76}
	p, v, err := EncodePrefix(prefixBin)
	require.NoError(t, err)
	decoded, err = DecodePrefix(p + v)
	require.NoError(t, err)
	assert.Equal(t, prefixBin, decoded)
}

func TestEncodeLengthEnforcement(t *testing.T) {
	tests := []struct {
		name   string
		encode func([]byte) error
		want   int
	}{
		{"whole", func(b []byte) error { _, err := Encode(b); return err }, BinLen},
		{"time", func(b []byte) error { _, err := EncodeTime(b); return err }, timeBinLen},
		{"rando", func(b []byte) error { _, err := EncodeRando(b); return err }, randoBinLen},
		{"prefix", func(b []byte) error { _, _, err := EncodePrefix(b); return err }, prefixBinLen},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.encode(make([]byte, tc.want-1)), ErrInvalidLength)
			assert.ErrorIs(t, tc.encode(make([]byte, tc.want+1)), ErrInvalidLength)
			assert.ErrorIs(t, tc.encode(nil), ErrInvalidLength)
			assert.NoError(t, tc.encode(make([]byte, tc.want)))
		})
	}
}

func TestDecodeLengthEnforcement(t *testing.T) {
	tests := []struct {
		name   string
		decode func(string) error
		want   int
	}{
		{"whole", func(s string) error { _, err := Decode(s); return err }, CharLen},
		{"time", func(s string) error { _, err := DecodeTime(s); return err }, timeCharLen},
		{"rando", func(s string) error { _, err := DecodeRando(s); return err }, randoCharLen},
		{"prefix", func(s string) error { _, err := DecodePrefix(s); return err }, prefixCharLen + versionCharLen},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.decode(strings.Repeat("2", tc.want-1)), ErrInvalidLength)
			assert.ErrorIs(t, tc.decode(strings.Repeat("2", tc.want+1)), ErrInvalidLength)
			assert.ErrorIs(t, tc.decode(""), ErrInvalidLength)
			assert.NoError(t, tc.decode(strings.Repeat("2", tc.want)))
		})
	}
}

func TestDecodeInvalidChar(t *testing.T) {
	valid := strings.Repeat("2", CharLen)
	for _, c := range []string{"0", "1", "8", "9", "A", "!", "-"} {
		encoded := c + valid[1:]
		_, err := Decode(encoded)
		assert.ErrorIs(t, err, ErrInvalidChar, "char %q", c)
	}
}

func TestDecodeOverflow(t *testing.T) {
	// 'j' (15) is the highest symbol that keeps the padding bit clear;
	// 'k' (16) and above must be rejected on the final padded symbol.
	_, err := DecodeRando("222222222222j")
	assert.NoError(t, err)
	_, err = DecodeRando("222222222222k")
	assert.ErrorIs(t, err, ErrOverflow)
	_, err = DecodeRando("222222222222z")
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = DecodePrefix("2222j")
	assert.NoError(t, err)
	_, err = DecodePrefix("2222k")
	assert.ErrorIs(t, err, ErrOverflow)
	_, err = DecodePrefix("zzzzz")
	assert.ErrorIs(t, err, ErrOverflow)

	// the same rejections surface through the whole-identifier decode
	_, err = Decode("zzzz_zzzzzzzzzzzzzzzzzzzzjz")
	assert.ErrorIs(t, err, ErrOverflow)
	_, err = Decode("zzzz_zzzzzzzzzzzzzzzzzzzzzj")
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestDecodeBoundaryNonOverflow(t *testing.T) {
	// the largest valid text form: every symbol at its maximum
	// non-overflowing value
	const max = "zzzz_zzzzzzzzzzzzzzzzzzzzjj"
	binary, err := Decode(max)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("ff", BinLen), hex.EncodeToString(binary))

	encoded, err := Encode(binary)
	require.NoError(t, err)
	assert.Equal(t, max, encoded)
}

func TestDecodeSeparatorHandling(t *testing.T) {
	const canonical = "user_2acdmshh2632a3272s5kca"

	want, err := Decode(canonical)
	require.NoError(t, err)

	// the separator is cosmetic: absent or repositioned, the decode is
	// unchanged, and length is counted after stripping
	for _, encoded := range []string{
		"user2acdmshh2632a3272s5kca",
		"u_ser2acdmshh2632a3272s5kca",
		"user_2acdmshh_2632a3272s5kca",
		"_user2acdmshh2632a3272s5kca_",
	} {
		got, err := Decode(encoded)
		require.NoError(t, err, "encoded %q", encoded)
		assert.Equal(t, want, got)
	}
}
