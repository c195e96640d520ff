package main

import "github.com/goalsplit/backend/cmd"

func main() {
	cmd.Execute()
}
