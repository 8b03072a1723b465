package component_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-mailtext/header/component"
)

func TestFolder(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	f := component.NewFolder(buf, 10, 0, false)
	f.Token([]byte("aaaa"))
	f.Space([]byte(" "))
	f.Token([]byte("bbbb"))
	f.Space([]byte(" "))
	f.Token([]byte("cccc"))
	col, err := f.Flush()
	assert.NoError(t, err)
	assert.Equal(t, "aaaa bbbb\r\n cccc", buf.String())
	assert.Equal(t, 5, col)
	assert.Equal(t, int64(buf.Len()), f.Written())
}

func TestFolder_Infinite(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	f := component.NewFolder(buf, component.Infinite, 70, false)
	for i := 0; i < 10; i++ {
		f.Space([]byte(" "))
		f.Token([]byte("word"))
	}
	col, err := f.Flush()
	assert.NoError(t, err)
	assert.Equal(t, strings.Repeat(" word", 10), buf.String())
	assert.Equal(t, 120, col)
}

func TestFolder_Separate(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	f := component.NewFolder(buf, 10, 0, false)
	f.Token([]byte("aaaa"))
	f.Separate()
	f.Token([]byte("bbbb"))
	f.Separate()
	f.Token([]byte("cccc"))
	_, err := f.Flush()
	assert.NoError(t, err)
	assert.Equal(t, "aaaa bbbb\r\n cccc", buf.String())

	buf.Reset()
	f = component.NewFolder(buf, 10, 0, true)
	f.Token([]byte("aaaaaaaa"))
	f.Separate()
	f.Token([]byte("bbbbbbbb"))
	col, err := f.Flush()
	assert.NoError(t, err)
	assert.Equal(t, "aaaaaaaa\r\nbbbbbbbb", buf.String())
	assert.Equal(t, 8, col)
}

func TestFolder_NoWhitespaceNoFold(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	f := component.NewFolder(buf, 10, 0, false)
	f.Token([]byte("aaaaaaaa"))
	f.Token([]byte("bbbb"))
	f.Token([]byte(strings.Repeat("c", 20)))
	col, err := f.Flush()
	assert.NoError(t, err)
	assert.Equal(t, "aaaaaaaabbbb"+strings.Repeat("c", 20), buf.String())
	assert.Equal(t, 32, col)
}

func TestFolder_CurLinePos(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	f := component.NewFolder(buf, 10, 8, false)
	f.Space([]byte("\t"))
	f.Token([]byte("abcd"))
	_, err := f.Flush()
	assert.NoError(t, err)
	assert.Equal(t, "\r\n\tabcd", buf.String())

	// an empty line is never folded
	buf.Reset()
	f = component.NewFolder(buf, 10, 0, false)
	f.Space([]byte(" "))
	f.Token([]byte("abcdefghijkl"))
	_, err = f.Flush()
	assert.NoError(t, err)
	assert.Equal(t, " abcdefghijkl", buf.String())
}

func TestFolder_FlushTrailingSpace(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	f := component.NewFolder(buf, 3, 0, false)
	f.Token([]byte("a"))
	f.Space([]byte("     "))
	col, err := f.Flush()
	assert.NoError(t, err)
	assert.Equal(t, "a     ", buf.String())
	assert.Equal(t, 6, col)
}

func TestFolder_Room(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	f := component.NewFolder(buf, 20, 5, false)
	assert.Equal(t, 15, f.Room())
	f.Space([]byte(" "))
	assert.Equal(t, 14, f.Begin(3))
	f.Emit([]byte("abc"))
	assert.Equal(t, 11, f.Room())
}

func TestCheckRange(t *testing.T) {
	t.Parallel()

	buf := []byte("abcdef")
	assert.NoError(t, component.CheckRange(buf, 0, 6))
	assert.NoError(t, component.CheckRange(buf, 3, 3))
	assert.ErrorIs(t, component.CheckRange(buf, -1, 3), component.ErrRange)
	assert.ErrorIs(t, component.CheckRange(buf, 0, 7), component.ErrRange)
	assert.ErrorIs(t, component.CheckRange(buf, 4, 3), component.ErrRange)
}
