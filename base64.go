package base64

import "errors"

// Errors returned by Decode and DecodeString. Encoding cannot
// fail.
var (
	// ErrLength is returned when the input's length is not a
	// multiple of 4. The empty input is valid.
	ErrLength = errors.New("base64: length is not a multiple of 4")

	// ErrInvalidCharacter is returned when the input contains a
	// byte outside the base64 alphabet, including any byte
	// >= 0x80.
	ErrInvalidCharacter = errors.New("base64: invalid character")

	// ErrInvalidPadding is returned when '=' appears anywhere
	// but the final one or two positions, or when the bits
	// beside the padding are non-zero and so cannot have come
	// from an encoder.
	ErrInvalidPadding = errors.New("base64: invalid padding")
)

// encTable is the standard base64 alphabet.
//
//    ABCDEFGHIJKLMNOPQRSTUVWXYZ
//    abcdefghijklmnopqrstuvwxyz
//    0123456789
//    +/
//
const encTable = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	"+/"

const padChar = '='

// Sentinels in decTable. Both are > 63 and therefore cannot
// collide with a decoded value.
const (
	padByte     = 0xfe
	invalidByte = 0xff
)

// decTable maps each byte to its 6-bit value, padByte for '=',
// or invalidByte. Read-only after init.
var decTable = func() (t [256]byte) {
	for i := range t {
		t[i] = invalidByte
	}
	for i := 0; i < len(encTable); i++ {
		t[encTable[i]] = byte(i)
	}
	t[padChar] = padByte
	return t
}()

// EncodedLen returns the size in bytes of the base64 encoding
// of n source bytes.
func EncodedLen(n int) int {
	return (n + 2) / 3 * 4
}

// DecodedLen returns the maximum length in bytes of n bytes of
// base64-encoded data.
func DecodedLen(n int) int {
	return n / 4 * 3
}

// Encode encodes src, writing EncodedLen(len(src)) bytes to dst.
//
// Encode never fails; any byte sequence, including the empty
// one, has an encoding.
func Encode(dst, src []byte) {
	n := len(src) / 3 * 3
	di := 0
	for si := 0; si < n; si += 3 {
		v := uint(src[si])<<16 | uint(src[si+1])<<8 | uint(src[si+2])
		dst[di+0] = encTable[v>>18&0x3f]
		dst[di+1] = encTable[v>>12&0x3f]
		dst[di+2] = encTable[v>>6&0x3f]
		dst[di+3] = encTable[v&0x3f]
		di += 4
	}

	switch len(src) - n {
	case 1:
		v := uint(src[n]) << 16
		dst[di+0] = encTable[v>>18&0x3f]
		dst[di+1] = encTable[v>>12&0x3f]
		dst[di+2] = padChar
		dst[di+3] = padChar
	case 2:
		v := uint(src[n])<<16 | uint(src[n+1])<<8
		dst[di+0] = encTable[v>>18&0x3f]
		dst[di+1] = encTable[v>>12&0x3f]
		dst[di+2] = encTable[v>>6&0x3f]
		dst[di+3] = padChar
	}
}

// EncodeToString encodes src.
func EncodeToString(src []byte) string {
	dst := make([]byte, EncodedLen(len(src)))
	Encode(dst, src)
	return string(dst)
}

// validate scans src once and reports the number of trailing
// padding characters, or the first error found.
//
// After a nil return, every byte of src maps to a value or, in
// the final two positions only, to padding, and any bits beside
// the padding are zero. The decode loops can therefore run
// without further checks.
func validate(src []byte) (pad int, err error) {
	if len(src) == 0 {
		return 0, nil
	}
	if len(src)%4 != 0 {
		return 0, ErrLength
	}

	for i, c := range src {
		switch decTable[c] {
		case invalidByte:
			return 0, ErrInvalidCharacter
		case padByte:
			// Padding only at the end, and '=' in the
			// penultimate position forces '=' in the last.
			if i < len(src)-2 {
				return 0, ErrInvalidPadding
			}
			if i == len(src)-2 && src[i+1] != padChar {
				return 0, ErrInvalidPadding
			}
			pad++
		}
	}

	// There can't be any information (ones) in the bits the
	// padding replaced; an encoder always leaves them zero.
	switch pad {
	case 1:
		if decTable[src[len(src)-2]]&0x3 != 0 {
			return 0, ErrInvalidPadding
		}
	case 2:
		if decTable[src[len(src)-3]]&0xf != 0 {
			return 0, ErrInvalidPadding
		}
	}
	return pad, nil
}

// Decode decodes src, writing at most DecodedLen(len(src))
// bytes to dst and returning the number written.
//
// Decode is atomic: src is fully validated before any output is
// produced, so on error Decode returns (0, err) with dst
// untouched, never a partial result. err is one of ErrLength,
// ErrInvalidCharacter, or ErrInvalidPadding.
func Decode(dst, src []byte) (n int, err error) {
	if _, err := validate(src); err != nil {
		return 0, err
	}
	if len(src) == 0 {
		return 0, nil
	}

	// All groups but the last. Validation guarantees padding
	// can only appear in the final group, so no per-group
	// checks are needed here.
	si := 0
	for ; si < len(src)-4; si += 4 {
		v := uint(decTable[src[si]])<<18 |
			uint(decTable[src[si+1]])<<12 |
			uint(decTable[src[si+2]])<<6 |
			uint(decTable[src[si+3]])
		dst[n+0] = byte(v >> 16)
		dst[n+1] = byte(v >> 8)
		dst[n+2] = byte(v)
		n += 3
	}

	// Final group: emit one byte per non-padding tail
	// character. Padding never contributes output, it only
	// stops the group early.
	c0 := decTable[src[si]]
	c1 := decTable[src[si+1]]
	c2 := decTable[src[si+2]]
	c3 := decTable[src[si+3]]

	dst[n] = c0<<2 | c1>>4
	n++
	if c2 != padByte {
		dst[n] = c1<<4 | c2>>2
		n++
		if c3 != padByte {
			dst[n] = c2<<6 | c3
			n++
		}
	}
	return n, nil
}

// DecodeString decodes s.
//
// The result has length (len(s)/4)*3 minus one byte per padding
// character. Like Decode, DecodeString either fully succeeds or
// returns (nil, err); it never returns partial data.
func DecodeString(s string) ([]byte, error) {
	dst := make([]byte, DecodedLen(len(s)))
	n, err := Decode(dst, []byte(s))
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}
