package cmd

import (
	"github.com/spf13/cobra"
)

var propsCmd = &cobra.Command{
	Use:   "props",
	Short: "List annotation properties used in the ontology",
	Long: "Enumerates every property element appearing on any class, with human\n" +
		"labels resolved from the document's AnnotationProperty declarations.\n" +
		"Codes from this list feed 'descendants --props'.",
	RunE: runProps,
}

func runProps(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer logger.Sync()

	doc, err := loadDocument()
	if err != nil {
		return err
	}

	table := newApp(logger).Properties(doc)
	return emitTable(table)
}
