package main

import "foodkeeper/cmd/cli/commands"

func main() {
	commands.Execute()
}
