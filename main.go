package main

import "github.com/Tiliavir/topup/cmd"

func main() {
	cmd.Execute()
}
