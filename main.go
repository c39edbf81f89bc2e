package main

import "github.com/easyhr/backend/cmd"

func main() {
	cmd.Execute()
}
