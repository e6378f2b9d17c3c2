package cmd

import (
	"github.com/spf13/cobra"
)

var descendantsProps []string

var descendantsCmd = &cobra.Command{
	Use:   "descendants [root-ids...]",
	Short: "Extract the descendant closure of one or more concepts",
	Long: "Every concept reachable from the given root Mendel ID(s) via child\n" +
		"edges, one row per descendant. --props adds columns with the values\n" +
		"of selected annotation properties (see 'owlkit props').",
	RunE: runDescendants,
}

func init() {
	descendantsCmd.Flags().StringSliceVar(&descendantsProps, "props", nil, "Property codes to include as output columns")
}

func runDescendants(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer logger.Sync()

	roots, err := gatherTerms(args, "")
	if err != nil {
		return err
	}
	doc, err := loadDocument()
	if err != nil {
		return err
	}

	table := newApp(logger).Descendants(doc, roots, descendantsProps)
	return emitTable(table)
}
