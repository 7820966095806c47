package main

import (
	"os"

	"github.com/myteamhq/handball-api/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
