package text

import (
	"bytes"

	"github.com/zostay/go-mailtext/header/charset"
	"github.com/zostay/go-mailtext/header/component"
)

var encodedWordStart = []byte("=?")

// Parse replaces the content of the Text with the words found in
// buf[position:end]. Encoded-words are decoded and folding is removed.
// Encoded-words separated by nothing but whitespace are joined into a single
// word when they share a charset, and the whitespace between them is dropped.
// Anything that looks like an encoded-word but fails to decode is kept as
// literal text and the result is marked as not well-formed.
//
// The only error returned is component.ErrRange.
func (t *Text) Parse(buf []byte, position, end int) (component.Result, error) {
	if err := component.CheckRange(buf, position, end); err != nil {
		return component.Result{NewPosition: position}, err
	}

	words, wellFormed := decodeAndUnfold(buf[position:end])
	t.words = words

	return component.Result{NewPosition: end, WellFormed: wellFormed}, nil
}

// DecodeAndUnfold parses the whole of s into a new Text. It reports whether
// the input was well-formed, though a usable Text is returned either way.
func DecodeAndUnfold(s string) (*Text, bool) {
	words, wellFormed := decodeAndUnfold([]byte(s))
	return &Text{words: words}, wellFormed
}

// encodedWord is the syntax of a single "=?charset?e?payload?=" atom.
type encodedWord struct {
	charset string
	enc     byte
	payload []byte
	end     int // offset just after the closing "?="
}

// scanEncodedWord reads the encoded-word starting at in[start], which must be
// the "=?" opening it.
func scanEncodedWord(in []byte, start int) (encodedWord, bool) {
	i := start + len(encodedWordStart)

	csEnd := bytes.IndexByte(in[i:], '?')
	if csEnd <= 0 {
		return encodedWord{}, false
	}
	csEnd += i

	cs := in[i:csEnd]
	if bytes.IndexFunc(cs, func(r rune) bool { return r <= ' ' || r >= 0x7f }) >= 0 {
		return encodedWord{}, false
	}

	if csEnd+2 >= len(in) || in[csEnd+2] != '?' {
		return encodedWord{}, false
	}
	enc := in[csEnd+1]

	ps := csEnd + 3
	pe := bytes.Index(in[ps:], []byte("?="))
	if pe < 0 {
		return encodedWord{}, false
	}
	pe += ps

	payload := in[ps:pe]
	if bytes.IndexFunc(payload, func(r rune) bool { return r <= ' ' }) >= 0 {
		return encodedWord{}, false
	}

	return encodedWord{
		charset: charset.Normalize(string(cs)),
		enc:     enc,
		payload: payload,
		end:     pe + 2,
	}, true
}

func allFWS(b []byte) bool {
	for _, c := range b {
		if !isFWS(c) {
			return false
		}
	}
	return true
}

// unfold removes line breaks, leaving the whitespace that followed them.
func unfold(b []byte) []byte {
	uf := make([]byte, 0, len(b))
	for _, c := range b {
		if c != '\r' && c != '\n' {
			uf = append(uf, c)
		}
	}
	return uf
}

func appendPlain(words []*Word, b []byte) []*Word {
	uf := unfold(b)
	if len(uf) == 0 {
		return words
	}
	return append(words, NewWord(uf, charset.For(uf)))
}

func decodeAndUnfold(in []byte) ([]*Word, bool) {
	var (
		words       []*Word
		wellFormed  = true
		lastEncoded = false
		plainStart  = 0
		p           = 0
	)

	for {
		ix := bytes.Index(in[p:], encodedWordStart)
		if ix < 0 {
			break
		}
		start := p + ix

		ew, ok := scanEncodedWord(in, start)
		if !ok {
			wellFormed = false
			p = start + len(encodedWordStart)
			continue
		}

		dec, err := decodePayload(ew.enc, ew.payload)
		if err != nil {
			wellFormed = false
			p = start + len(encodedWordStart)
			continue
		}

		plain := in[plainStart:start]
		switch {
		case lastEncoded && allFWS(plain):
			// whitespace between encoded-words is not part of the text
		case len(plain) > 0:
			words = appendPlain(words, plain)
			lastEncoded = false
		}

		if lastEncoded && words[len(words)-1].charset == ew.charset {
			last := words[len(words)-1]
			last.buffer = append(last.buffer, dec...)
		} else {
			words = append(words, NewWord(dec, ew.charset))
		}

		lastEncoded = true
		p = ew.end
		plainStart = ew.end
	}

	if plainStart < len(in) {
		words = appendPlain(words, in[plainStart:])
	}

	return words, wellFormed
}
