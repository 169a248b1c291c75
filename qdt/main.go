package main

import "github.com/sarchlab/qdt/qdt/cmd"

func main() {
	cmd.Execute()
}
