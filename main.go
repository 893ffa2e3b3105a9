package main

import "github.com/gnames/skillgap/cmd"

func main() {
	cmd.Execute()
}
