package main

import "github.com/bz888/sentiment/cmd"

func main() {
	cmd.Execute()
}
