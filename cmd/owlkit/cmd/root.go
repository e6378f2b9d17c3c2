package cmd

import (
	"github.com/spf13/cobra"
)

var (
	flagFile     string
	flagOntology string
	flagLibrary  string
	flagVerbose  bool
	flagCSV      bool
)

var rootCmd = &cobra.Command{
	Use:   "owlkit",
	Short: "owlkit - OWL ontology search and edit toolkit",
	Long: "Search an OWL/XML ontology by synonym, Mendel ID, or code; extract\n" +
		"descendant and ancestor branches; and batch-edit class properties\n" +
		"from CSV input. Ontologies are read from a ZIP archive or OWL file\n" +
		"(--file) or from the local library (--ontology).",
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagFile, "file", "f", "", "Path to a ZIP archive or bare OWL/XML file")
	pf.StringVarP(&flagOntology, "ontology", "o", "", "Name of an ontology in the library")
	pf.StringVar(&flagLibrary, "library", "", "Library database path (default ~/.owlkit/library.db)")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Log progress and per-item detail")
	pf.BoolVar(&flagCSV, "csv", false, "Write the result table as CSV to stdout")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(codesCmd)
	rootCmd.AddCommand(descendantsCmd)
	rootCmd.AddCommand(ancestorsCmd)
	rootCmd.AddCommand(propsCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(addClassCmd)
	rootCmd.AddCommand(libraryCmd)
	rootCmd.AddCommand(watchCmd)
}
