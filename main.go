package main

import (
	"github.com/magosil86/shiver/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
