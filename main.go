package main

import "github.com/naka-gawa/github-resume/cmd"

func main() {
	cmd.Execute()
}
