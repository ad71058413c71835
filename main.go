package main

import "github.com/theirongolddev/cbank/cmd"

func main() {
	cmd.Execute()
}
