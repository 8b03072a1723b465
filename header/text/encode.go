package text

import (
	"io"

	"github.com/zostay/go-mailtext/header/charset"
	"github.com/zostay/go-mailtext/header/component"
)

// Flags modify how EncodeAndFold writes a Text.
type Flags int

const (
	// ForceNoEncoding writes every word as it is, only folding lines. It takes
	// precedence over ForceEncoding when both are set.
	ForceNoEncoding Flags = 1 << iota

	// ForceEncoding writes every word as encoded-words, even plain ASCII.
	ForceEncoding

	// NoNewLineSequence folds with a bare CRLF where there is no whitespace in
	// the text to start the continuation line with, rather than CRLF and a
	// space.
	NoNewLineSequence
)

// segment is a stretch of output that is either written as it is or as
// encoded-words in a single charset.
type segment struct {
	data    []byte
	charset string
	encode  bool
}

// Generate writes the Text using the default flags. See EncodeAndFold.
func (t *Text) Generate(w io.Writer, maxLineLength, curLinePos int) (int, error) {
	return t.EncodeAndFold(w, maxLineLength, curLinePos, 0)
}

// EncodeAndFold writes the Text to w, encoding words as RFC 2047
// encoded-words where required and folding lines to keep them within
// maxLineLength. The current line is assumed to already hold curLinePos bytes.
// It returns the length of the last line written.
//
// By default, only the tokens that cannot be written as plain ASCII are
// encoded. Plain text is only ever folded at its own whitespace. Encoded text
// is split into as many encoded-words as needed to fit the lines, breaking
// only between characters. A token too long for any line is written anyway.
//
// An empty Text writes nothing.
func (t *Text) EncodeAndFold(
	w io.Writer,
	maxLineLength,
	curLinePos int,
	flags Flags,
) (int, error) {
	f := component.NewFolder(w, maxLineLength, curLinePos, flags&NoNewLineSequence != 0)

	prevEncoded := false
	for _, s := range t.segments(flags) {
		if s.encode {
			writeEncoded(f, s, prevEncoded)
		} else {
			writePlain(f, s.data)
		}
		prevEncoded = s.encode
	}

	return f.Flush()
}

// segments decides what will be encoded.
func (t *Text) segments(flags Flags) []segment {
	var segs []segment
	for _, w := range t.words {
		if len(w.buffer) == 0 {
			continue
		}

		cs := w.charset
		if cs == "" {
			cs = charset.For(w.buffer)
		}

		switch {
		case flags&ForceNoEncoding != 0:
			segs = appendSegment(segs, segment{w.buffer, cs, false})
		case flags&ForceEncoding != 0:
			segs = appendSegment(segs, segment{w.buffer, cs, true})
		default:
			segs = splitWord(segs, w.buffer, cs)
		}
	}

	if flags&ForceNoEncoding != 0 {
		return segs
	}

	return guardBoundaries(resplit(segs))
}

// resplit runs splitWord again over merged plain segments. The end of one word
// and the start of the next may join into a token that needs encoding, like
// "a=" followed by "?utf-8?Q?x?=".
func resplit(segs []segment) []segment {
	out := make([]segment, 0, len(segs))
	for _, s := range segs {
		if s.encode {
			out = appendSegment(out, s)
			continue
		}
		out = splitWord(out, s.data, s.charset)
	}
	return out
}

// appendSegment adds s, merging it into the last segment when both are plain
// or both are encoded in the same charset.
func appendSegment(segs []segment, s segment) []segment {
	if len(s.data) == 0 {
		return segs
	}

	if n := len(segs); n > 0 {
		last := &segs[n-1]
		if last.encode == s.encode &&
			(!s.encode || charset.Normalize(last.charset) == charset.Normalize(s.charset)) {
			last.data = append(last.data[:len(last.data):len(last.data)], s.data...)
			return segs
		}
	}

	return append(segs, s)
}

// splitWord breaks a word into plain and encoded segments at whitespace. A
// token is encoded when it is not plain ASCII or cs cannot represent it.
// Whitespace between two tokens that need encoding is encoded with them.
func splitWord(segs []segment, b []byte, cs string) []segment {
	// the tokens of a stateful charset can't be told apart
	for _, c := range b {
		if c == 0x1b {
			return appendSegment(segs, segment{b, cs, true})
		}
	}

	type run struct {
		data  []byte
		space bool
		needy bool
	}

	var runs []run
	for i := 0; i < len(b); {
		j := i
		space := isWSP(b[i])
		for j < len(b) && isWSP(b[j]) == space {
			j++
		}
		r := run{data: b[i:j], space: space}
		if !space {
			r.needy = needsEncoding(r.data) || !charset.Representable(cs, r.data)
		}
		runs = append(runs, r)
		i = j
	}

	for i := range runs {
		if runs[i].space {
			runs[i].needy = i > 0 && runs[i-1].needy &&
				i+1 < len(runs) && runs[i+1].needy
		}
	}

	for _, r := range runs {
		segs = appendSegment(segs, segment{r.data, cs, r.needy})
	}

	return segs
}

func indexWSP(b []byte) int {
	for i, c := range b {
		if isWSP(c) {
			return i
		}
	}
	return -1
}

func lastIndexWSP(b []byte) int {
	for i := len(b) - 1; i >= 0; i-- {
		if isWSP(b[i]) {
			return i
		}
	}
	return -1
}

func allWSP(b []byte) bool {
	for _, c := range b {
		if !isWSP(c) {
			return false
		}
	}
	return true
}

// guardBoundaries makes sure every encoded segment is set apart from plain
// text by whitespace, or a reader would not find the encoded-words. Plain
// tokens stuck to an encoded segment are encoded along with it. Whitespace
// alone between two encoded segments is encoded too, since a reader drops
// whitespace between encoded-words.
func guardBoundaries(segs []segment) []segment {
	out := make([]segment, 0, len(segs))
	for i, s := range segs {
		if s.encode {
			out = appendSegment(out, s)
			continue
		}

		prevEnc := i > 0 && segs[i-1].encode
		nextEnc := i+1 < len(segs) && segs[i+1].encode

		data := s.data
		var head, tail []byte
		if prevEnc && !isWSP(data[0]) {
			ix := indexWSP(data)
			if ix < 0 {
				ix = len(data)
			}
			head, data = data[:ix], data[ix:]
		}

		if nextEnc && len(data) > 0 && !isWSP(data[len(data)-1]) {
			ix := lastIndexWSP(data) + 1
			data, tail = data[:ix], data[ix:]
		}

		if prevEnc && nextEnc && allWSP(data) {
			out = appendSegment(out, segment{s.data, s.charset, true})
			continue
		}

		out = appendSegment(out, segment{head, s.charset, true})
		out = appendSegment(out, segment{data, s.charset, false})
		out = appendSegment(out, segment{tail, s.charset, true})
	}

	return out
}

// writePlain writes text as it is, handing whitespace to the folder so lines
// may be broken there.
func writePlain(f *component.Folder, b []byte) {
	for i := 0; i < len(b); {
		j := i
		space := isWSP(b[i])
		for j < len(b) && isWSP(b[j]) == space {
			j++
		}

		if space {
			f.Space(b[i:j])
		} else {
			f.Token(b[i:j])
		}
		i = j
	}
}

// writeEncoded writes a segment as one or more encoded-words, each holding as
// many characters as fit the room left on the line. At least one character
// goes in every encoded-word, so output always makes progress.
func writeEncoded(f *component.Folder, s segment, prevEncoded bool) {
	chars := charset.Characters(s.charset, s.data)
	enc := chooseEncoding(s.data)
	overhead := len("=??X??=") + len(s.charset)

	var atom []byte
	for i := 0; i < len(chars); {
		if prevEncoded {
			f.Separate()
		}

		firstLen := encodedLen(enc, len(chars[i]), qLen(chars[i]))
		room := f.Begin(overhead+firstLen) - overhead

		j, raw, q := i, 0, 0
		for j < len(chars) {
			nextRaw, nextQ := raw+len(chars[j]), q+qLen(chars[j])
			if j > i && encodedLen(enc, nextRaw, nextQ) > room {
				break
			}
			raw, q = nextRaw, nextQ
			j++
		}

		payload := make([]byte, 0, raw)
		for _, c := range chars[i:j] {
			payload = append(payload, c...)
		}

		atom = appendEncodedWord(atom[:0], s.charset, enc, payload)
		f.Emit(atom)

		i = j
		prevEncoded = true
	}
}
