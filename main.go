package main

import "github.com/geetanshi0205/pitchsnitch/cmd"

func main() {
	cmd.Execute()
}
