package main

import "github.com/mikewthornton1988-glitch/Pool-bot/internal/cli"

func main() {
	cli.Execute()
}
