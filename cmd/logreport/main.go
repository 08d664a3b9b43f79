package main

import "github.com/dbsmedya/logreport/cmd/logreport/cmd"

func main() {
	cmd.Execute()
}
