// Package base64 implements strict base64 encoding and decoding
// as specified by RFC 4648 (standard alphabet, '=' padding).
//
// Comparison to encoding/base64
//
// This package is almost, but not exactly a drop-in replacement
// for encoding/base64's StdEncoding.
//
// Unlike encoding/base64, decoding is atomic: the input is fully
// validated before any output is produced, so a malformed byte
// late in the input never yields partial data. For example:
//
//    src := []byte("aGVsb?8=")
//    base64.StdEncoding.Decode(dst, src) // 3, CorruptInputError(5)
//    Decode(dst, src)                    // 0, ErrInvalidCharacter
//
// Unlike encoding/base64, this package rejects the newline
// characters '\r' and '\n' (and any other byte outside the
// standard alphabet), and always rejects non-canonical encodings
// whose spare bits beside the padding are set, the way
// encoding/base64 only does in Strict mode.
//
// Errors are reported as one of three sentinels, distinguishing
// bad length from bad characters from bad padding; all three
// match with errors.Is.
package base64
