package main

import "github.com/they4kman/gomaze/cmd"

func main() {
	cmd.Execute()
}
