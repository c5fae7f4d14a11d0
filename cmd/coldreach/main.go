package main

import "coldreach/internal/cmd"

func main() {
	cmd.Execute()
}
