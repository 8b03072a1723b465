// Package encoding provides a replacement encoder and decoder for use with
// charset.CharsetEncoder and charset.CharsetDecoder. This loads all the
// encodings provided with:
//
// * golang.org/x/text/encoding/ianaindex
//
// This will make the size of your compiled binaries considerably larger. But it
// will also give your code the ability to encode and decode pretty much any
// character set it might encounter in the wild wild world of email.
package encoding

import (
	"fmt"

	"golang.org/x/text/encoding"
	_ "golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/zostay/go-mailtext/header/charset"
)

func init() {
	charset.CharsetEncoder = CharsetEncoder
	charset.CharsetDecoder = CharsetDecoder
}

// lookup finds the named charset, trying the MIME names first and then the
// full IANA registry.
func lookup(name string) (encoding.Encoding, error) {
	e, err := ianaindex.MIME.Encoding(name)
	if err != nil || e == nil {
		e, err = ianaindex.IANA.Encoding(name)
	}

	if err != nil {
		return nil, err
	}

	if e == nil {
		return nil, fmt.Errorf("no encoding found for charset %q", name)
	}

	return e, nil
}

// CharsetEncoder provides a replacement encoder for charset.CharsetEncoder,
// which can encode a wide range of rare and unusual character sets.
func CharsetEncoder(name, s string) ([]byte, error) {
	e, err := lookup(name)
	if err != nil {
		return nil, err
	}

	es, err := encoding.ReplaceUnsupported(e.NewEncoder()).String(s)
	if err != nil {
		return nil, err
	}

	return []byte(es), nil
}

// CharsetDecoder provides a replacement decoder for charset.CharsetDecoder,
// which can decode a wide range of rare and unusual character sets.
func CharsetDecoder(name string, b []byte) (string, error) {
	e, err := lookup(name)
	if err != nil {
		return "", err
	}

	eb, err := e.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}

	return string(eb), nil
}
