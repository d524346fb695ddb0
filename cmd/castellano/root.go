package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cours-d-espagnol/castellano"
)

// errUntranslated makes the process exit non-zero after a result carrying
// an error has already been printed.
var errUntranslated = errors.New("sentence not translated")

// cli holds the persistent flags shared by every subcommand.
type cli struct {
	dataDir string
	verbose bool
	output  string
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "castellano",
		Short: "English to Spanish pattern translator with grammar notes",
		Long: `castellano translates a handful of simple English sentence patterns into
Spanish and explains the grammar behind each translation. Hint mode lists
the steps to build the sentence yourself.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			switch c.output {
			case outputText, outputJSON, outputYAML:
				return nil
			}
			return fmt.Errorf("unknown output format %q (want text, json or yaml)", c.output)
		},
	}

	root.PersistentFlags().StringVar(&c.dataDir, "data-dir", "", "directory whose vocabulary files replace the built-in ones")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log which rule handled the sentence")
	root.PersistentFlags().StringVarP(&c.output, "output", "o", outputText, "output format: text, json or yaml")

	root.AddCommand(
		newTranslateCmd(c),
		newPatternsCmd(c),
		newLexiconCmd(c),
	)
	return root
}

// translator loads the data, logging to stderr when --verbose is set.
func (c *cli) translator(cmd *cobra.Command) (*castellano.Translator, error) {
	level := slog.LevelWarn
	if c.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return castellano.New(c.dataDir, castellano.WithLogger(logger))
}
