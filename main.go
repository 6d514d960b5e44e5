package main

import (
	"github.com/shihabdider/ensembl-variation/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
