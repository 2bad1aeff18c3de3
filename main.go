package main

import "github.com/perarneng/decksheet/cmd"

func main() {
	cmd.Execute()
}
