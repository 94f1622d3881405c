// Replace every newline with a dash.
package main

import (
	"fmt"

	"github.com/sonro/linurgy/pkg/editor"
)

func main() {
	ed := editor.Replacer("-", 1)

	input := "example line\nanother line"
	output := ed.Edit(input)

	fmt.Printf("input:\n%s\noutput:\n%s\n", input, output)
}
