package main

import "fuzzyfind/internal/cli"

func main() {
	cli.Execute()
}
