package main

import "github.com/animarr/animarr/cmd"

func main() {
	cmd.Execute()
}
