package main

import "svw.info/sudokulab/internal/cli"

func main() {
	cli.Execute()
}
