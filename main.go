package main

import (
	"github.com/hance08/fintrack/cmd"
)

func main() {
	cmd.Execute()
}
