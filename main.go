package main

import "github.com/mouse-blink/patchall/cmd"

func main() {
	cmd.Execute()
}
