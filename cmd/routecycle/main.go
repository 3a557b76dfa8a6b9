package main

import "github.com/dbsmedya/routecycle/cmd/routecycle/cmd"

func main() {
	cmd.Execute()
}
