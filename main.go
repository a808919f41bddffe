package main

import "github.com/Glubus/minacalc-go/cmd"

func main() {
	cmd.Execute()
}
