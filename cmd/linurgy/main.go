package main

import "github.com/sonro/linurgy/cmd/linurgy/cmd"

func main() {
	cmd.Execute()
}
