package main

import "keyframer/cmd/keyframer-cli/cmd"

func main() {
	cmd.Execute()
}
