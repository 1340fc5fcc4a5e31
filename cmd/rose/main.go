package main

import "github.com/Ramsey-B/rose/cmd/rose/commands"

func main() {
	commands.Execute()
}
