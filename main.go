package main

import "github.com/hireterm/hireterm/cmd"

func main() {
	cmd.Execute()
}
