package main

import "github.com/dest4590/collapse-updater/cmd/collapse-updater/cmd"

func main() {
	cmd.Execute()
}
