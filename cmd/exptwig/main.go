/*
Exptwig CLI Expression Factorer
-------------------------------
Reads infix expressions from stdin, prints factored substitutions and the
residual expressions to stdout. Exit status is non-zero on any parse error.
*/

package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
