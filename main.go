package main

import "github.com/uthuyomi/ai-workbench/cmd"

func main() {
	cmd.Execute()
}
