package cmd

import (
	"github.com/spf13/cobra"
)

var lookupTermsFile string

var lookupCmd = &cobra.Command{
	Use:   "lookup [ids...]",
	Short: "Mendel ID lookup",
	Long:  "Report label, codes, and synonyms for each requested Mendel ID.",
	RunE:  runLookup,
}

func init() {
	lookupCmd.Flags().StringVar(&lookupTermsFile, "terms-file", "", "CSV file with a 'Values' column of Mendel IDs")
}

func runLookup(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer logger.Sync()

	ids, err := gatherTerms(args, lookupTermsFile)
	if err != nil {
		return err
	}
	doc, err := loadDocument()
	if err != nil {
		return err
	}

	table := newApp(logger).Lookup(doc, ids)
	return emitTable(table)
}
