// Package header joins the value engines of this module into header fields.
// ParseLines splits a raw header into field lines and ParseField turns one
// line into a Field, choosing the kind of value from the field name: date
// fields hold a datetime.DateTime and everything else holds a text.Text.
//
// Parsing follows the rest of the module in being liberal in what it accepts
// and strict in what it generates. Fields are written folded to
// component.Convenient columns using whatever line break the header was parsed
// with.
package header
