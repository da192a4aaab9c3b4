package main

import "github.com/sky/skygo/cmd/skyconv/cmd"

func main() {
	cmd.Execute()
}
