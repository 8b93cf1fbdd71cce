package main

import "github.com/hyst16/HuskerFB-Schedule/internal/cli"

func main() {
	cli.Execute()
}
