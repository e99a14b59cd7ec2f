package main

import "github.com/orbitalcompute/ocse/cmd"

func main() {
	cmd.Execute()
}
