package main

import "github.com/josegonzalez/romname/internal/cmd"

func main() {
	cmd.Execute()
}
