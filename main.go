package main

import (
	"os"

	"github.com/Lulu77Donc/reggie-take-out/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
