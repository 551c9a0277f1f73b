package main

import "kernel-lifecycle/internal/cli"

func main() {
	cli.Execute()
}
