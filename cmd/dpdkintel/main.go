package main

import (
	"github.com/livp123/dpdkintel/cmd/dpdkintel/commands"
)

func main() {
	commands.Execute()
}
