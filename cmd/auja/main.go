package main

import "github.com/ichaly/auja/cmd"

func main() {
	cmd.Execute()
}
