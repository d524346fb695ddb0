package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cours-d-espagnol/castellano"
)

var errEmptySentence = errors.New("empty sentence")

type translateFlags struct {
	dialect string
	mode    string
	gender  string
	you     string
}

func newTranslateCmd(c *cli) *cobra.Command {
	f := &translateFlags{}

	cmd := &cobra.Command{
		Use:   "translate <sentence>",
		Short: "Translate one English sentence",
		Long: `Translate one English sentence into Spanish.

Options accept codes or labels: --dialect mx|es ("Mexican Spanish",
"Castilian Spanish"), --mode translate|hint, --gender m|f, --you tu|usted.`,
		Example: `  castellano translate "I am tired." --gender f
  castellano translate "You are tired." --you usted
  castellano translate "We are eating." --mode hint`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if strings.TrimSpace(text) == "" {
				fmt.Fprintln(cmd.ErrOrStderr(), "Type a sentence first.")
				return errEmptySentence
			}

			req, err := castellano.NewRequest(text, f.dialect, f.mode, f.gender, f.you)
			if err != nil {
				return err
			}
			tr, err := c.translator(cmd)
			if err != nil {
				return err
			}

			res := tr.Translate(req)
			if err := renderResult(cmd.OutOrStdout(), c.output, res); err != nil {
				return err
			}
			if !res.OK() {
				return errUntranslated
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&f.dialect, "dialect", "", "mx (Mexican Spanish) or es (Castilian Spanish); default mx")
	cmd.Flags().StringVar(&f.mode, "mode", "", "translate or hint; default translate")
	cmd.Flags().StringVar(&f.gender, "gender", "", "speaker gender for I/you/we adjectives, m or f; default m")
	cmd.Flags().StringVar(&f.you, "you", "", "what English 'you' means, tu or usted; default tu")
	return cmd
}
