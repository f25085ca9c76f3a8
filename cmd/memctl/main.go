package main

import "memd/internal/cli"

var version = "dev"

func main() {
	cli.Execute(version)
}
