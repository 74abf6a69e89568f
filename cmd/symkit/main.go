package main

import "github.com/schemalab/symkit/cmd/symkit/cmd"

func main() {
	cmd.Execute()
}
