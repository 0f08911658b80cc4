package main

import "github.com/mcoot/equatix/internal/cli"

func main() {
	cli.Execute()
}
