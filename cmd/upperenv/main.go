package main

import "github.com/alexozer/upperenv/internal/cli"

func main() {
	cli.Execute()
}
