package cmd

import (
	"fmt"
	"os"

	"github.com/mendelkb/owlkit/internal/owl"
	"github.com/mendelkb/owlkit/internal/tabular"
	"github.com/spf13/cobra"
)

var (
	editRowsFile string
	editOutFile  string
)

var editCmd = &cobra.Command{
	Use:   "edit <codes|synonyms>",
	Short: "Batch append-or-create a field across classes",
	Long: "Applies a CSV batch (columns Mendel_ID, Values) to the chosen field.\n" +
		"Existing values and new values are merged as a sorted set, so the edit\n" +
		"is idempotent and never duplicates. Classes missing the field get it\n" +
		"created; rows naming an unknown Mendel ID are skipped and logged.\n" +
		"The whole document is re-serialized to --out.",
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editRowsFile, "edits", "", "CSV file with Mendel_ID and Values columns (required)")
	editCmd.Flags().StringVar(&editOutFile, "out", "", "Output OWL file (required)")
	editCmd.MarkFlagRequired("edits")
	editCmd.MarkFlagRequired("out")
}

func runEdit(cmd *cobra.Command, args []string) error {
	var field string
	switch args[0] {
	case "codes":
		field = owl.TagCodes
	case "synonyms":
		field = owl.TagSynonyms
	default:
		return fmt.Errorf("unknown field %q: want codes or synonyms", args[0])
	}

	logger := newLogger()
	defer logger.Sync()

	f, err := os.Open(editRowsFile)
	if err != nil {
		return err
	}
	edits, err := tabular.ReadFieldEdits(f)
	f.Close()
	if err != nil {
		return err
	}

	doc, err := loadDocument()
	if err != nil {
		return err
	}

	res, out, err := newApp(logger).EditField(doc, field, edits)
	if err != nil {
		return err
	}
	if err := os.WriteFile(editOutFile, out, 0644); err != nil {
		return err
	}

	fmt.Printf("%s⚡ %d updated, %d created, %d skipped%s → %s\n",
		colorBold, res.Updated, res.Created, res.Skipped, colorReset, editOutFile)
	return nil
}
