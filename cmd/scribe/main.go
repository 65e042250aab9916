// Package main is the scribe CLI.
//
// Usage:
//
//	scribe shell                         # interactive editor
//	scribe list [--json]                 # print posts
//	scribe add -t TITLE -b CONTENT       # create a post
//	scribe edit ID [-t TITLE] [-b BODY]  # update a post
//	scribe delete ID                     # remove a post
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Set at build time via -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	configPath string
	dataDir    string
	logLevel   string
	ephemeral  bool
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "scribe",
		Short: "A small local post manager",
		Long: `scribe keeps a list of text posts (title + content) in a local
bolt database. Every change rewrites the whole collection to a single
slot, stored as the same JSON array the browser version kept in
localStorage.

Run "scribe shell" for the interactive editor.`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "path to config file (.toml or .yaml)")
	pf.StringVar(&flags.dataDir, "data-dir", "", "data directory (overrides config)")
	pf.StringVar(&flags.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	pf.BoolVar(&flags.ephemeral, "ephemeral", false, "keep posts in memory only")

	root.AddCommand(
		newShellCmd(flags),
		newListCmd(flags),
		newAddCmd(flags),
		newEditCmd(flags),
		newDeleteCmd(flags),
		newPurgeCmd(flags),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "scribe %s\n", version)
			_, _ = fmt.Fprintf(out, "  commit: %s\n", commit)
			_, _ = fmt.Fprintf(out, "  built:  %s\n", date)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// cobra already printed the error
		os.Exit(1)
	}
}
