package main

import "github.com/mcoot/lifegame/internal/cli"

func main() {
	cli.Execute()
}
