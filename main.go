package main

import (
	"annoscape/cmd"
)

func main() {
	cmd.Execute()
}
