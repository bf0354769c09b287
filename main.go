package main

import "fmh-devserver/cmd"

func main() {
	cmd.Execute()
}
