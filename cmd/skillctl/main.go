package main

import (
	"os"

	"alfredoptarigan/resume-skill-ranker/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
