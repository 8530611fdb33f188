// Command filesig wraps the lzw and fuzzy packages behind a small CLI,
// in the spirit of the historical compress/uncompress/ssdeep tools.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
