// Package charset is the character set conversion used by the header value
// engines. Out of the box it only understands us-ascii, iso-8859-1, and utf-8.
// To handle pretty much anything found in the wild, import the encoding
// sub-package for its side effects:
//
//	import _ "github.com/zostay/go-mailtext/header/charset/encoding"
package charset

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Names of the charsets the default converters understand.
const (
	USASCII  = "us-ascii"
	ISO88591 = "iso-8859-1"
	UTF8     = "utf-8"
)

// Default is the charset assigned to text whose charset is not otherwise
// known, but which is not plain ASCII.
const Default = UTF8

// Encoder transforms native unicode into bytes of the named charset.
//
// The encoder should attempt to clean up and only output text that is valid in
// the target encoding. If the target charset is not supported, it returns an
// error.
type Encoder func(charset, s string) ([]byte, error)

// Decoder transforms bytes of the named charset into native unicode. Bytes that
// are invalid for the charset become unicode.ReplacementChar. If the source
// charset is not supported, it returns an error.
type Decoder func(charset string, b []byte) (string, error)

var (
	// CharsetEncoder is the Encoder used whenever text must be turned into
	// bytes of a particular charset. Import the encoding sub-package to
	// replace it with one that knows every IANA charset.
	CharsetEncoder Encoder = DefaultCharsetEncoder

	// CharsetDecoder is the Decoder used whenever text must be read from bytes
	// of a particular charset. Import the encoding sub-package to replace it
	// with one that knows every IANA charset.
	CharsetDecoder Decoder = DefaultCharsetDecoder
)

// Normalize returns the canonical spelling of a charset name: lower case,
// trimmed, with any RFC 2231 language suffix removed.
func Normalize(name string) string {
	if ix := strings.IndexByte(name, '*'); ix >= 0 {
		name = name[:ix]
	}
	return strings.ToLower(strings.TrimSpace(name))
}

// DefaultCharsetEncoder is the default encoder. It is able to handle us-ascii,
// iso-8859-1 (a.k.a. latin1), and utf-8 only.
//
// When outputting us-ascii, any character that does not fit will be replaced
// with "\x1a", the ASCII SUB character. Likewise for characters beyond U+00FF
// in iso-8859-1.
func DefaultCharsetEncoder(charset, s string) ([]byte, error) {
	var buf bytes.Buffer
	switch Normalize(charset) {
	case USASCII, "ascii", "":
		for _, c := range s {
			if c > unicode.MaxASCII {
				buf.WriteByte('\x1a')
			} else {
				buf.WriteRune(c)
			}
		}
		return buf.Bytes(), nil
	case ISO88591, "latin1":
		for _, c := range s {
			if c > unicode.MaxLatin1 {
				buf.WriteByte('\x1a')
			} else {
				buf.WriteByte(byte(c))
			}
		}
		return buf.Bytes(), nil
	case UTF8, "utf8":
		return []byte(s), nil
	default:
		return nil, fmt.Errorf("unsupported byte encoding %q", charset)
	}
}

// DefaultCharsetDecoder is the default decoder. It is able to handle us-ascii,
// iso-8859-1 (a.k.a. latin1), and utf-8 only.
//
// When us-ascii is input, any 8-bit byte is translated into
// unicode.ReplacementChar. When utf-8 is input, invalid sequences are
// likewise replaced.
func DefaultCharsetDecoder(charset string, b []byte) (string, error) {
	var s strings.Builder
	switch Normalize(charset) {
	case USASCII, "ascii", "":
		for _, c := range b {
			if c > unicode.MaxASCII {
				s.WriteRune(unicode.ReplacementChar)
			} else {
				s.WriteByte(c)
			}
		}
		return s.String(), nil
	case ISO88591, "latin1":
		for _, c := range b {
			s.WriteRune(rune(c))
		}
		return s.String(), nil
	case UTF8, "utf8":
		for len(b) > 0 {
			r, size := utf8.DecodeRune(b)
			s.WriteRune(r)
			b = b[size:]
		}
		return s.String(), nil
	default:
		return "", fmt.Errorf("unsupported byte encoding %q", charset)
	}
}

// Convert transcodes b from one charset to another through unicode.
func Convert(b []byte, from, to string) ([]byte, error) {
	if Normalize(from) == Normalize(to) {
		return b, nil
	}

	s, err := CharsetDecoder(from, b)
	if err != nil {
		return nil, fmt.Errorf("unable to decode from %q: %w", from, err)
	}

	out, err := CharsetEncoder(to, s)
	if err != nil {
		return nil, fmt.Errorf("unable to encode to %q: %w", to, err)
	}

	return out, nil
}

// IsASCII reports whether every byte of b is 7-bit.
func IsASCII(b []byte) bool {
	for _, c := range b {
		if c > unicode.MaxASCII {
			return false
		}
	}
	return true
}

// For picks the charset to tag bytes with when nothing better is known: us-ascii
// for pure 7-bit text and Default otherwise.
func For(b []byte) string {
	if IsASCII(b) {
		return USASCII
	}
	return Default
}

// Representable is a best-effort check of whether b holds text in the named
// charset that survives a trip through the charset converters unchanged.
func Representable(charset string, b []byte) bool {
	switch Normalize(charset) {
	case USASCII, "ascii":
		return IsASCII(b)
	case UTF8, "utf8":
		return utf8.Valid(b)
	case ISO88591, "latin1":
		return true
	}

	s, err := CharsetDecoder(charset, b)
	if err != nil {
		return false
	}

	back, err := CharsetEncoder(charset, s)
	if err != nil {
		return false
	}

	return bytes.Equal(back, b)
}

// Characters splits b, text in the named charset, into the byte sequences of
// its individual characters. Concatenating any run of the returned slices
// yields text that decodes on its own, which makes them safe places to break an
// encoded-word. For utf-8 this splits on rune boundaries and for the 8-bit
// charsets on bytes. Anything else is decoded through CharsetDecoder and each
// character is re-encoded with CharsetEncoder. If that fails or would lose
// data, b is split into single bytes.
func Characters(charset string, b []byte) [][]byte {
	switch Normalize(charset) {
	case UTF8, "utf8":
		chars := make([][]byte, 0, len(b))
		for len(b) > 0 {
			_, size := utf8.DecodeRune(b)
			chars = append(chars, b[:size])
			b = b[size:]
		}
		return chars
	case USASCII, "ascii", ISO88591, "latin1", "":
		return splitBytes(b)
	}

	s, err := CharsetDecoder(charset, b)
	if err != nil {
		return splitBytes(b)
	}

	if back, err := CharsetEncoder(charset, s); err != nil || !bytes.Equal(back, b) {
		return splitBytes(b)
	}

	chars := make([][]byte, 0, len(s))
	for _, r := range s {
		c, err := CharsetEncoder(charset, string(r))
		if err != nil {
			return splitBytes(b)
		}
		chars = append(chars, c)
	}
	return chars
}

func splitBytes(b []byte) [][]byte {
	chars := make([][]byte, len(b))
	for i := range b {
		chars[i] = b[i : i+1]
	}
	return chars
}
