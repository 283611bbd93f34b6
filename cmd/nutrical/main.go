package main

import "nutritrack/internal/cli"

func main() {
	cli.Execute()
}
