package main

import (
	"fmt"
	"os"

	"threatwatch/cmd"
)

func main() {
	var err error
	if len(os.Args) > 1 && os.Args[1] == "token" {
		err = cmd.IssueToken(os.Args[2:])
	} else {
		err = cmd.Start()
	}

	if err != nil {
		fmt.Printf("threatwatch run into an error: %s\n", err)
		os.Exit(1)
	}
}
