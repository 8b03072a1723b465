package text

import (
	"bytes"

	"github.com/zostay/go-mailtext/header/charset"
)

// Word is a run of bytes in a single charset. It is the unit of a Text.
type Word struct {
	buffer  []byte
	charset string
}

// NewWord returns a word holding buf, which is text in the named charset. The
// word takes ownership of buf.
func NewWord(buf []byte, cs string) *Word {
	return &Word{buffer: buf, charset: cs}
}

// NewWordString returns a word holding a copy of s.
func NewWordString(s, cs string) *Word {
	return NewWord([]byte(s), cs)
}

// Buffer returns the raw bytes of the word, in the word's charset.
func (w *Word) Buffer() []byte {
	return w.buffer
}

// SetBuffer replaces the raw bytes of the word.
func (w *Word) SetBuffer(buf []byte) {
	w.buffer = buf
}

// Charset returns the name of the charset of the word.
func (w *Word) Charset() string {
	return w.charset
}

// SetCharset changes the charset the word is tagged with. The bytes are left
// as they are.
func (w *Word) SetCharset(cs string) {
	w.charset = cs
}

// Clone returns a deep copy of the word.
func (w *Word) Clone() *Word {
	return NewWord(append([]byte(nil), w.buffer...), w.charset)
}

// Equal reports whether both words hold the same bytes in the same charset.
func (w *Word) Equal(o *Word) bool {
	return charset.Normalize(w.charset) == charset.Normalize(o.charset) &&
		bytes.Equal(w.buffer, o.buffer)
}

// ConvertedText returns the content of the word in the named charset.
func (w *Word) ConvertedText(dest string) ([]byte, error) {
	return charset.Convert(w.buffer, w.charset, dest)
}

// String returns the word decoded into native unicode. If the charset is not
// understood, the bytes are returned as they are.
func (w *Word) String() string {
	s, err := charset.CharsetDecoder(w.charset, w.buffer)
	if err != nil {
		return string(w.buffer)
	}
	return s
}
