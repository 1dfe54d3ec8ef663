package main

import "shoecard/cmd"

func main() {
	cmd.Execute()
}
