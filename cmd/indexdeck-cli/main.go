package main

import "indexdeck/cmd/indexdeck-cli/cmd"

func main() {
	cmd.Execute()
}
