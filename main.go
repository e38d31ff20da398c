package main

import "content-state/cmd"

func main() {
	cmd.Execute()
}
