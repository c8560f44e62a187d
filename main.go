package main

import "nathanbeddoewebdev/twui/cmd"

func main() {
	cmd.Execute()
}
