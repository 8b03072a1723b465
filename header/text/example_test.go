package text_test

import (
	"fmt"
	"os"

	"github.com/zostay/go-mailtext/header/component"
	"github.com/zostay/go-mailtext/header/text"
)

func Example() {
	tx, _ := text.DecodeAndUnfold("Re: =?utf-8?Q?caf=C3=A9?= =?utf-8?B?4pi6?= menu")
	for _, w := range tx.Words() {
		fmt.Printf("%s %q\n", w.Charset(), w.String())
	}

	_, _ = tx.Generate(os.Stdout, component.Convenient, len("Subject: "))
	fmt.Println()

	// Output:
	// us-ascii "Re: "
	// utf-8 "café☺"
	// us-ascii " menu"
	// Re: =?utf-8?B?Y2Fmw6nimLo=?= menu
}
