package main

import "github.com/mouse-blink/paramfix/cmd"

func main() {
	cmd.Execute()
}
