package main

import "cnc-reformat/internal/cli"

func main() {
	cli.Execute()
}
