package main

import "github.com/SiliconWit/mechanics-of-materials/cmd"

func main() {
	cmd.Execute()
}
