package main

import "qa-preview/cmd"

func main() {
	cmd.Execute()
}
