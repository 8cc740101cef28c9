package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/torevar5544/FileMarsh/internal/config"
	apperrors "github.com/torevar5544/FileMarsh/internal/errors"
)

func main() {
	cfg := &config.Config{}

	rootCmd := &cobra.Command{
		Use:   "filemarsh",
		Short: "Classify, analyze and organize directory trees",
		Long: `FileMarsh scans a directory tree, classifies every file into a fixed
set of categories (images, videos, audio, documents, archives, executables,
unknown), aggregates statistics, and can export the files into a reorganized
category tree by copy or move.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&cfg.Plain, "plain", false, "disable the terminal UI")

	rootCmd.AddCommand(newScanCmd(cfg))
	rootCmd.AddCommand(newExportCmd(cfg))

	if err := rootCmd.Execute(); err != nil {
		exitWithError(err)
	}
}

// useTUI reports whether the interactive progress UI should run.
func useTUI(cfg *config.Config) bool {
	return !cfg.Plain && term.IsTerminal(int(os.Stdout.Fd()))
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, apperrors.UserMessage(err))
	os.Exit(1)
}
