package cmd

import (
	"fmt"
	"os"

	"github.com/mendelkb/owlkit/internal/tabular"
	"github.com/spf13/cobra"
)

var (
	addClassRowsFile string
	addClassOutFile  string
)

var addClassCmd = &cobra.Command{
	Use:   "add-class",
	Short: "Batch-insert new classes from CSV rows",
	Long: "Synthesizes one class per CSV row (columns: Label required; Parent,\n" +
		"Mendel_ID, Codes, Synonyms optional). Each new class gets a fresh\n" +
		"resource URI derived from its label and a subClassOf edge to the\n" +
		"given parent. Rows with an empty label are skipped and logged.\n" +
		"The whole document is re-serialized to --out.",
	RunE: runAddClass,
}

func init() {
	addClassCmd.Flags().StringVar(&addClassRowsFile, "rows", "", "CSV file of class rows (required)")
	addClassCmd.Flags().StringVar(&addClassOutFile, "out", "", "Output OWL file (required)")
	addClassCmd.MarkFlagRequired("rows")
	addClassCmd.MarkFlagRequired("out")
}

func runAddClass(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer logger.Sync()

	f, err := os.Open(addClassRowsFile)
	if err != nil {
		return err
	}
	rows, err := tabular.ReadNewClasses(f)
	f.Close()
	if err != nil {
		return err
	}

	doc, err := loadDocument()
	if err != nil {
		return err
	}

	res, out, err := newApp(logger).AddClasses(doc, rows)
	if err != nil {
		return err
	}
	if err := os.WriteFile(addClassOutFile, out, 0644); err != nil {
		return err
	}

	fmt.Printf("%s⚡ %d classes created, %d rows skipped%s → %s\n",
		colorBold, res.Created, res.Skipped, colorReset, addClassOutFile)
	return nil
}
