package main

import "github.com/oslfdg/skree/cmd"

func main() {
	cmd.Execute()
}
