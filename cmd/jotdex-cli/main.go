package main

import "jotdex/cmd/jotdex-cli/cmd"

func main() {
	cmd.Execute()
}
