package main

import "github.com/rrspmax/bracketgen/cmd"

func main() {
	cmd.Execute()
}
