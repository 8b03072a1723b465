package text

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
)

// The transfer encodings of an encoded-word.
const (
	BEncoding = 'B' // base64
	QEncoding = 'Q' // the quoted-printable variant of RFC 2047
)

var (
	errBadEncoding = errors.New("unknown encoded-word encoding")
	errBadQ        = errors.New("malformed Q encoding")
)

const upperhex = "0123456789ABCDEF"

func isWSP(c byte) bool { return c == ' ' || c == '\t' }

func isFWS(c byte) bool { return c == ' ' || c == '\t' || c == '\r' || c == '\n' }

// needsEncoding reports whether a token can't be written as plain text: it
// holds control or 8-bit bytes, or something a reader would take for the start
// of an encoded-word.
func needsEncoding(tok []byte) bool {
	for _, c := range tok {
		if (c < ' ' && c != '\t') || c >= 0x7f {
			return true
		}
	}
	return bytes.Contains(tok, []byte("=?"))
}

// qSafe is true for the bytes that may appear as themselves in a Q encoded
// word anywhere in a header, including in a phrase.
func qSafe(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '!', c == '*', c == '+', c == '-', c == '/':
		return true
	}
	return false
}

func qLen(b []byte) int {
	n := 0
	for _, c := range b {
		if qSafe(c) || c == ' ' {
			n++
		} else {
			n += 3
		}
	}
	return n
}

func encodedLen(enc byte, rawLen, qLength int) int {
	if enc == BEncoding {
		return base64.StdEncoding.EncodedLen(rawLen)
	}
	return qLength
}

// chooseEncoding picks Q when at least 60% of the bytes can be written as
// themselves and base64 otherwise.
func chooseEncoding(b []byte) byte {
	safe := 0
	for _, c := range b {
		if qSafe(c) || c == ' ' {
			safe++
		}
	}

	if safe*5 >= len(b)*3 {
		return QEncoding
	}
	return BEncoding
}

func appendQ(dst, b []byte) []byte {
	for _, c := range b {
		switch {
		case c == ' ':
			dst = append(dst, '_')
		case qSafe(c):
			dst = append(dst, c)
		default:
			dst = append(dst, '=', upperhex[c>>4], upperhex[c&0x0f])
		}
	}
	return dst
}

// appendEncodedWord appends "=?cs?E?payload?=" to dst.
func appendEncodedWord(dst []byte, cs string, enc byte, b []byte) []byte {
	dst = append(dst, '=', '?')
	dst = append(dst, cs...)
	dst = append(dst, '?', enc, '?')
	if enc == BEncoding {
		n := len(dst)
		dst = append(dst, make([]byte, base64.StdEncoding.EncodedLen(len(b)))...)
		base64.StdEncoding.Encode(dst[n:], b)
	} else {
		dst = appendQ(dst, b)
	}
	return append(dst, '?', '=')
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func decodeQ(p []byte) ([]byte, error) {
	out := make([]byte, 0, len(p))
	for i := 0; i < len(p); i++ {
		switch c := p[i]; c {
		case '_':
			out = append(out, ' ')
		case '=':
			if i+2 >= len(p) {
				return nil, errBadQ
			}
			hi, ok1 := unhex(p[i+1])
			lo, ok2 := unhex(p[i+2])
			if !ok1 || !ok2 {
				return nil, errBadQ
			}
			out = append(out, hi<<4|lo)
			i += 2
		default:
			out = append(out, c)
		}
	}
	return out, nil
}

func decodeB(p []byte) ([]byte, error) {
	out := make([]byte, base64.StdEncoding.DecodedLen(len(p)))
	n, err := base64.StdEncoding.Decode(out, p)
	if err == nil {
		return out[:n], nil
	}

	// some mailers leave off the padding
	p = bytes.TrimRight(p, "=")
	out = make([]byte, base64.RawStdEncoding.DecodedLen(len(p)))
	n, err = base64.RawStdEncoding.Decode(out, p)
	if err != nil {
		return nil, err
	}
	return out[:n], nil
}

func decodePayload(enc byte, p []byte) ([]byte, error) {
	switch enc {
	case 'B', 'b':
		return decodeB(p)
	case 'Q', 'q':
		return decodeQ(p)
	}
	return nil, fmt.Errorf("%w: %q", errBadEncoding, enc)
}
