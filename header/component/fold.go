package component

import (
	"io"
	"math"
)

// CRLF is the line break written at every fold.
var CRLF = []byte("\r\n")

var foldSpace = []byte(" ")

// Folder writes a header value a token at a time, breaking lines at
// whitespace to keep each line under a maximum length. Whitespace is queued
// with Space and only written once the next token is known, so it can become
// the indentation of a continuation line rather than trailing on the previous
// one. Nothing but CRLF is ever inserted into content whitespace, so unfolding
// the output by removing line breaks restores it exactly.
//
// A token that is longer than a whole line is written anyway. Lines are never
// broken inside a token. Whitespace still queued at Flush stays on the last
// line, which may then run past the maximum by that much, because a
// continuation line may not hold whitespace alone.
type Folder struct {
	w        io.Writer
	max      int
	col      int
	crlfOnly bool

	pending []byte // content whitespace waiting for the next token
	sep     bool   // a separator that is not content is needed before the next token
	content bool   // the current line holds more than indentation

	total int64
	err   error
}

// NewFolder returns a Folder writing to w. The current line is assumed to
// already hold curLinePos bytes. When maxLineLength is Infinite (or any value
// less than 1) no folding is performed.
//
// When crlfOnly is set, a fold made where no content whitespace is present is
// written as a bare CRLF. Otherwise a single space follows the CRLF so the
// next line is a proper header continuation.
func NewFolder(w io.Writer, maxLineLength, curLinePos int, crlfOnly bool) *Folder {
	return &Folder{
		w:        w,
		max:      maxLineLength,
		col:      curLinePos,
		crlfOnly: crlfOnly,
		content:  curLinePos > 0,
	}
}

func (f *Folder) write(b []byte) {
	if f.err != nil || len(b) == 0 {
		return
	}
	n, err := f.w.Write(b)
	f.total += int64(n)
	f.err = err
}

// Space queues whitespace that is part of the content.
func (f *Folder) Space(ws []byte) {
	f.pending = append(f.pending, ws...)
}

// Separate requests a separator before the next token that carries no
// meaning, such as the space required between two encoded-words. It is
// ignored if content whitespace is already queued.
func (f *Folder) Separate() {
	f.sep = true
}

// Room returns the number of bytes left on the current line.
func (f *Folder) Room() int {
	if f.max <= 0 {
		return math.MaxInt32
	}
	return f.max - f.col
}

// Begin writes whatever separator is queued ahead of a token that will take at
// least minLen bytes, folding the line first when the token would not fit. It
// returns Room() after the separator has been written. Every call to Begin
// must be followed by a call to Emit.
func (f *Folder) Begin(minLen int) int {
	sepLen := len(f.pending)
	if sepLen == 0 && f.sep {
		sepLen = 1
	}

	canFold := sepLen > 0 && f.content
	if canFold && f.max > 0 && f.col+sepLen+minLen > f.max {
		f.write(CRLF)
		switch {
		case len(f.pending) > 0:
			f.write(f.pending)
			f.col = len(f.pending)
		case f.crlfOnly:
			f.col = 0
		default:
			f.write(foldSpace)
			f.col = 1
		}
		f.content = false
	} else {
		if len(f.pending) > 0 {
			f.write(f.pending)
		} else if f.sep {
			f.write(foldSpace)
		}
		f.col += sepLen
	}

	f.pending = f.pending[:0]
	f.sep = false
	return f.Room()
}

// Emit writes a token. Call Begin first.
func (f *Folder) Emit(tok []byte) {
	f.write(tok)
	f.col += len(tok)
	if len(tok) > 0 {
		f.content = true
	}
}

// Token is Begin followed by Emit for a token that cannot be resized.
func (f *Folder) Token(tok []byte) {
	f.Begin(len(tok))
	f.Emit(tok)
}

// Flush writes out any queued content whitespace without folding, even past
// the maximum line length. It returns
// the column the output ended on and the first write error encountered.
func (f *Folder) Flush() (int, error) {
	if len(f.pending) > 0 {
		f.write(f.pending)
		f.col += len(f.pending)
		f.pending = f.pending[:0]
	}
	f.sep = false
	return f.col, f.err
}

// Written returns the number of bytes written so far.
func (f *Folder) Written() int64 {
	return f.total
}
