package main

import (
	"os"

	"github.com/tgeorghiu/go-ebustl/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
