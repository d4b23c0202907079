package main

import (
	"fmt"
	"os"

	"github.com/gubsgame/gubs/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
