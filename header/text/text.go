// Package text implements the RFC 2047 text found in unstructured header
// fields like Subject. A Text is an ordered list of words, each tagged with the
// charset its bytes are in. Parsing decodes and unfolds encoded-words into that
// list and generating does the reverse: it encodes whatever cannot travel as
// plain ASCII and folds the result to fit a line length.
//
// Both directions are tolerant. Parse never fails on bad input; anything that
// cannot be decoded is kept as literal text.
package text

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zostay/go-mailtext/header/charset"
	"github.com/zostay/go-mailtext/header/component"
)

// ErrNoSuchWord is returned when a word position is outside the list.
var ErrNoSuchWord = errors.New("no word at that position")

// Text is a list of words. A Text owns the words added to it. Once a Word has
// been handed to AppendWord, InsertWordBefore, InsertWordAfter, or
// NewFromWord, the caller must not keep using it.
//
// The zero value is an empty Text ready to use.
type Text struct {
	words []*Word
}

var _ component.Component = (*Text)(nil)

// New returns an empty Text.
func New() *Text {
	return &Text{}
}

// NewFromWord returns a Text holding a single word.
func NewFromWord(w *Word) *Text {
	return &Text{words: []*Word{w}}
}

// NewFromString splits s, text in the named charset, into words. Runs of
// plain ASCII are tagged as us-ascii and everything else keeps the given
// charset, so that only the latter needs encoding when generated. Whitespace
// following a word stays with the word.
//
// For example, "Linux dans un téléphone mobile" in iso-8859-1 becomes:
//
//	<us-ascii>   "Linux dans un "
//	<iso-8859-1> "téléphone "
//	<us-ascii>   "mobile"
func NewFromString(s, cs string) *Text {
	t := &Text{}
	in := []byte(s)

	var cur *Word
	curPlain := false
	for len(in) > 0 {
		// a token is the non-space run plus the whitespace following it
		end := 0
		for end < len(in) && isWSP(in[end]) {
			end++
		}
		start := end
		for end < len(in) && !isWSP(in[end]) {
			end++
		}
		tokEnd := end
		for end < len(in) && isWSP(in[end]) {
			end++
		}

		plain := !needsEncoding(in[start:tokEnd])
		if cur == nil || plain != curPlain {
			wcs := cs
			if plain {
				wcs = charset.USASCII
			}
			cur = NewWord(nil, wcs)
			curPlain = plain
			t.words = append(t.words, cur)
		}
		cur.buffer = append(cur.buffer, in[:end]...)
		in = in[end:]
	}

	return t
}

// AppendWord adds a word to the end of the list.
func (t *Text) AppendWord(w *Word) {
	t.words = append(t.words, w)
}

// InsertWordBefore inserts a word before the word at pos. A pos of 0 puts it
// first and a pos equal to WordCount() appends it.
func (t *Text) InsertWordBefore(pos int, w *Word) error {
	if pos < 0 || pos > len(t.words) {
		return fmt.Errorf("%w: %d", ErrNoSuchWord, pos)
	}

	t.words = append(t.words, nil)
	copy(t.words[pos+1:], t.words[pos:])
	t.words[pos] = w
	return nil
}

// InsertWordAfter inserts a word after the word at pos.
func (t *Text) InsertWordAfter(pos int, w *Word) error {
	if pos < 0 || pos >= len(t.words) {
		return fmt.Errorf("%w: %d", ErrNoSuchWord, pos)
	}
	return t.InsertWordBefore(pos+1, w)
}

// RemoveWord removes the word at pos.
func (t *Text) RemoveWord(pos int) error {
	if pos < 0 || pos >= len(t.words) {
		return fmt.Errorf("%w: %d", ErrNoSuchWord, pos)
	}

	copy(t.words[pos:], t.words[pos+1:])
	t.words[len(t.words)-1] = nil
	t.words = t.words[:len(t.words)-1]
	return nil
}

// RemoveAllWords empties the list.
func (t *Text) RemoveAllWords() {
	t.words = nil
}

// WordCount returns the number of words in the list.
func (t *Text) WordCount() int {
	return len(t.words)
}

// IsEmpty returns true if there are no words.
func (t *Text) IsEmpty() bool {
	return len(t.words) == 0
}

// WordAt returns the word at pos.
func (t *Text) WordAt(pos int) (*Word, error) {
	if pos < 0 || pos >= len(t.words) {
		return nil, fmt.Errorf("%w: %d", ErrNoSuchWord, pos)
	}
	return t.words[pos], nil
}

// Words returns the words in order. The slice is a copy, but the words are
// not: they still belong to the Text.
func (t *Text) Words() []*Word {
	ws := make([]*Word, len(t.words))
	copy(ws, t.words)
	return ws
}

// Clone returns a deep copy of the Text.
func (t *Text) Clone() *Text {
	c := &Text{words: make([]*Word, len(t.words))}
	for i, w := range t.words {
		c.words[i] = w.Clone()
	}
	return c
}

// Equal reports whether both lists hold equal words in the same order.
func (t *Text) Equal(o *Text) bool {
	if len(t.words) != len(o.words) {
		return false
	}

	for i, w := range t.words {
		if !w.Equal(o.words[i]) {
			return false
		}
	}

	return true
}

// ConvertedText returns the text of all the words converted into the named
// charset and joined together.
func (t *Text) ConvertedText(dest string) ([]byte, error) {
	var out []byte
	for i, w := range t.words {
		b, err := w.ConvertedText(dest)
		if err != nil {
			return nil, fmt.Errorf("word %d: %w", i, err)
		}
		out = append(out, b...)
	}
	return out, nil
}

// DecodedText returns the whole text in native unicode. Words in a charset
// that cannot be decoded are included as they are.
func (t *Text) DecodedText() string {
	var s strings.Builder
	for _, w := range t.words {
		s.WriteString(w.String())
	}
	return s.String()
}

// String is the same as DecodedText.
func (t *Text) String() string {
	return t.DecodedText()
}
