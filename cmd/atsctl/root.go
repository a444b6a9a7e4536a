package main

import (
	"github.com/spf13/cobra"
)

const app = "atsctl"

var rootCmd = &cobra.Command{
	Use:   app,
	Short: "atsctl scores resumes against job postings offline",
	Long: `atsctl runs the same extraction, normalization and TF-IDF scoring
pipeline as the HTTP service against a local PDF or DOCX file.`,
	SilenceUsage: true,
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
