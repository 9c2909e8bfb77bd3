package main

import "isolet/cmd/cli/app/cmd"

func main() {
	cmd.Execute()
}
