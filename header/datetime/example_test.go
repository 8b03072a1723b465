package datetime_test

import (
	"fmt"

	"github.com/zostay/go-mailtext/header/datetime"
)

func ExampleParseString() {
	d, wellFormed := datetime.ParseString("Mon, 02 Jan 06 15:04:05 EST")
	fmt.Println(wellFormed, d.Year(), d.Zone())
	fmt.Println(d)

	// Output:
	// true 2006 -300
	// Mon, 02 Jan 2006 15:04:05 -0500
}
