package main

import "github.com/jasimarif/psychology-app/cmd"

func main() {
	cmd.Execute()
}
