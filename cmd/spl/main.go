package main

import (
	"fmt"
	"os"

	"github.com/khang200923/simple-propositional-logic/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
