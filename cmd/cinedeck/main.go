package main

import (
	"github.com/cinedeck/cli/internal/cmd"
)

func main() {
	cmd.Execute()
}
