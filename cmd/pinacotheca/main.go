package main

import "github.com/becked/pinacotheca/internal/cli"

func main() {
	cli.Execute()
}
