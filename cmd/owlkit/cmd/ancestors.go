package cmd

import (
	"github.com/spf13/cobra"
)

var ancestorsCmd = &cobra.Command{
	Use:   "ancestors [ids...]",
	Short: "Enumerate ancestor lineages of one or more concepts",
	Long: "Walks every distinct root-to-concept lineage (multiple inheritance\n" +
		"yields multiple lineages), levels each path from the root, and lists\n" +
		"ancestors deduplicated in visitation order with first-seen levels.",
	RunE: runAncestors,
}

func runAncestors(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer logger.Sync()

	ids, err := gatherTerms(args, "")
	if err != nil {
		return err
	}
	doc, err := loadDocument()
	if err != nil {
		return err
	}

	table := newApp(logger).Ancestors(doc, ids)
	return emitTable(table)
}
