package main

import "github.com/thetatoken/treasury/cmd/treasury/cmd"

func main() {
	cmd.Execute()
}
