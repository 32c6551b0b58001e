package main

import "modtagger/internal/cli"

func main() {
	cli.Execute()
}
