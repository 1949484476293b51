package main

import "github.com/Tiliavir/intrack/cmd"

func main() {
	cmd.Execute()
}
