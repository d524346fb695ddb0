package main

import (
	"github.com/spf13/cobra"
)

func newPatternsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "List the supported sentence patterns in the order they are tried",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tr, err := c.translator(cmd)
			if err != nil {
				return err
			}
			return renderPatterns(cmd.OutOrStdout(), c.output, tr.Rules())
		},
	}
}

func newLexiconCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "lexicon",
		Short: "List the known adjectives, nouns and -ing verbs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tr, err := c.translator(cmd)
			if err != nil {
				return err
			}
			return renderLexicon(cmd.OutOrStdout(), c.output, tr.Lexicon())
		},
	}
}
