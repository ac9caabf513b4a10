package main

import "github.com/swirldnet/swirld-go/cmd/snapshots/cmd"

func main() {
	cmd.Execute()
}
