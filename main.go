package main

import "github.com/mouse-blink/marauders/cmd"

func main() {
	cmd.Execute()
}
