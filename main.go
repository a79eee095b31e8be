package main

import "github.com/gaurav-prasanna/svgcomp/cmd"

func main() {
	cmd.Execute()
}
