package main

import "github.com/jacobtrombetta/pedal-steel/cmd"

func main() {
	cmd.Execute()
}
