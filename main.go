package main

import (
	"fmt"
	"os"

	"ccc/cmd"
)

func main() {
	if err := cmd.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "ccc: %s\n", err)
		os.Exit(1)
	}
}
