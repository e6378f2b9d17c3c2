package cmd

import (
	"fmt"

	"github.com/mendelkb/owlkit/internal/match"
	"github.com/spf13/cobra"
)

var (
	codesTermsFile   string
	codesRelaxed     bool
	codesSemiRelaxed bool
)

var codesCmd = &cobra.Command{
	Use:   "codes [terms...]",
	Short: "Code search (exact, relaxed, or semi-relaxed)",
	Long: "Match input codes against every class's code list.\n" +
		"Default: exact case-insensitive match of the raw codingSystem:value string.\n" +
		"--relaxed: compare code values only, all punctuation stripped.\n" +
		"--semi-relaxed: compare code values only, just '.' stripped.",
	RunE: runCodes,
}

func init() {
	codesCmd.Flags().StringVar(&codesTermsFile, "terms-file", "", "CSV file with a 'Values' column of codes")
	codesCmd.Flags().BoolVar(&codesRelaxed, "relaxed", false, "Relaxed code-value matching")
	codesCmd.Flags().BoolVar(&codesSemiRelaxed, "semi-relaxed", false, "Semi-relaxed code-value matching")
}

func runCodes(cmd *cobra.Command, args []string) error {
	if codesRelaxed && codesSemiRelaxed {
		return fmt.Errorf("--relaxed and --semi-relaxed are mutually exclusive")
	}

	logger := newLogger()
	defer logger.Sync()

	terms, err := gatherTerms(args, codesTermsFile)
	if err != nil {
		return err
	}
	doc, err := loadDocument()
	if err != nil {
		return err
	}

	mode := match.Exact
	if codesRelaxed {
		mode = match.Relaxed
	}
	if codesSemiRelaxed {
		mode = match.SemiRelaxed
	}

	table := newApp(logger).SearchCodes(doc, terms, mode)
	return emitTable(table)
}
