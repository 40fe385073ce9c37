package main

import "github.com/dbsmedya/svnaudit/cmd/svnaudit/cmd"

func main() {
	cmd.Execute()
}
