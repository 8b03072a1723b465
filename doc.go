// Package mailtext parses and generates the structured values found in
// Internet mail headers: human readable text that may be in any number of
// character sets, carried as RFC 2047 encoded-words, and the date-times of
// RFC 2822 along with their historical zone names.
//
// The work is split up by kind of value. The header/text package holds the
// encoded-word engine, which reads a header value into a list of words, each
// tagged with its charset, and writes such a list back out, encoding only what
// needs to be encoded and folding lines to fit. The header/datetime package
// does the same for dates. Both implement component.Component from the
// header/component package, which also provides the folding writer they
// share.
//
// Parsing is tolerant. No header value is so broken that it cannot be read,
// so malformed input is never an error. Instead, every Parse returns a
// component.Result that says whether recovery was needed. Generation is
// strict and produces only well-formed output, though lines may run long when
// a single token cannot be broken up.
//
// Only us-ascii, iso-8859-1, and utf-8 are understood out of the box. Import
// header/charset/encoding to get every charset golang.org/x/text knows about.
//
// The header package ties the engines together for whole header fields, and
// cmd/mailtext is a command line tool for trying them out.
package mailtext

// Version is the current version of this module.
const Version = "0.1.0"
