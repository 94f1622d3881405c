// Stream stdin to stdout, appending underscores after every line.
//
// Output is written as each line arrives, without waiting for the input
// stream to end. Useful for watching files such as logs:
//
//	tail -f app.log | go run ./_example/stream-stdio
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/sonro/linurgy/pkg/editor"
)

func main() {
	ed := editor.Appender("___\n", 1)

	src := bufio.NewReader(os.Stdin)
	if err := ed.EditStream(src, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "edit failed:", err)
		os.Exit(1)
	}
}
