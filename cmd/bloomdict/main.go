package main

import "github.com/bloomdict/bloomdict/cmd/bloomdict/cmds"

func main() {
	cmds.Execute()
}
