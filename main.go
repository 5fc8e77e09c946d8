package main

import (
	"fmt"
	"os"

	"github.com/misterclayt0n/reps/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
