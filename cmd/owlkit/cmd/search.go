package cmd

import (
	"github.com/spf13/cobra"
)

var searchTermsFile string

var searchCmd = &cobra.Command{
	Use:   "search [terms...]",
	Short: "Exact synonym search",
	Long: "Case-insensitive exact match of search phrases against every class's\n" +
		"synonym list. Terms are ||-delimited; a single-column CSV with header\n" +
		"'Values' may supply them instead.",
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchTermsFile, "terms-file", "", "CSV file with a 'Values' column of search terms")
}

func runSearch(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer logger.Sync()

	terms, err := gatherTerms(args, searchTermsFile)
	if err != nil {
		return err
	}
	doc, err := loadDocument()
	if err != nil {
		return err
	}

	table := newApp(logger).SearchSynonyms(doc, terms)
	return emitTable(table)
}
