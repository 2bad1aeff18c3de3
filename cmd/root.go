package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "decksheet",
	Short: "Extract pitch-deck data from Gmail into a Google Sheet",
	Long: `decksheet is a command-line tool that scans recent inbox emails for
pitch-deck PDF attachments, extracts structured company information from
each deck through a document question-answering service, and appends the
result as one row per deck to a Google Sheet.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
