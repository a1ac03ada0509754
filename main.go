package main

import "github.com/N-45div/Agentmesh/cmd"

func main() {
	cmd.Execute()
}
