// Command castellano translates one English sentence from the command line.
//
// Usage:
//
//	castellano translate "She is hardworking." --gender f
//	castellano translate "I like the car." --dialect es --output yaml
//	castellano translate "I am tired." --mode hint
//	castellano patterns
//	castellano lexicon --output json
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errUntranslated) && !errors.Is(err, errEmptySentence) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
