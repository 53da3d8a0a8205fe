package main

import (
	"fmt"
	"os"

	"github.com/mrlokans/kindlenotes/internal/cli"
	"github.com/mrlokans/kindlenotes/internal/config"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	cfg := config.NewConfig()
	root := cli.NewRootCommand(cfg, cli.BuildInfo{Version: Version, Commit: Commit})

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
