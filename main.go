package main

import (
	"fmt"
	"os"

	"flipfit/src/ui"
)

func main() {
	if err := ui.RunFlipFit(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
