package main

import "github.com/alexiusacademia/goslab/cmd"

func main() {
	cmd.Execute()
}
