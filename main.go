package main

import "github.com/jonwhittlestone/tools-streamstofiles/cmd"

func main() {
	cmd.Execute()
}
