package main

import (
	"fmt"
	"grafana-sidecar/cmd"
	"os"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "\n❌", err)
		os.Exit(1)
	}
}
