package main

import "location-directory/cmd"

func main() {
	cmd.Execute()
}
