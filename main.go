package main

import "github.com/skillhub-cli/skillhub/cmd"

func main() {
	cmd.Execute()
}
