package main

import "github.com/slidekit/git-slides/cmd"

func main() {
	cmd.Run()
}
