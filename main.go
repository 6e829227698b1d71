package main

import (
	"fastcat.org/go/jrun/cmd"
)

func main() {
	cmd.Main()
}
