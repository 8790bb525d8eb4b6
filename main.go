package main

import "github.com/caseloom/caseloom-cli/cmd"

func main() {
	cmd.Execute()
}
