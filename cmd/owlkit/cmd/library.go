package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mendelkb/owlkit/internal/owl"
	"github.com/mendelkb/owlkit/internal/ports"
	"github.com/mendelkb/owlkit/internal/tabular"
	"github.com/spf13/cobra"
)

var libraryImportName string

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Manage the local ontology library",
	Long: "Imported archives are stored in a local database so search commands\n" +
		"can reference them by name (--ontology) instead of a file path.",
}

var libraryImportCmd = &cobra.Command{
	Use:   "import <archive.zip>",
	Short: "Import an ontology archive into the library",
	Args:  cobra.ExactArgs(1),
	RunE:  runLibraryImport,
}

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored ontologies",
	RunE:  runLibraryList,
}

var libraryRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove an ontology from the library",
	Args:  cobra.ExactArgs(1),
	RunE:  runLibraryRemove,
}

func init() {
	libraryImportCmd.Flags().StringVar(&libraryImportName, "name", "", "Library name (default: archive file name)")
	libraryCmd.AddCommand(libraryImportCmd)
	libraryCmd.AddCommand(libraryListCmd)
	libraryCmd.AddCommand(libraryRemoveCmd)
}

// importArchive validates and stores one archive. Shared with watch mode.
func importArchive(lib ports.Library, path, name string) (*ports.OntologyMeta, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Parse up front: a broken archive should fail the import, not every
	// later query.
	var doc *owl.Document
	if strings.EqualFold(filepath.Ext(path), ".zip") {
		doc, err = owl.Open(data)
	} else {
		doc, err = owl.OpenDocument(data)
		if err == nil {
			// Bare documents are wrapped so the library holds archives only.
			data, err = owl.Wrap(filepath.Base(path), data)
		}
	}
	if err != nil {
		return nil, err
	}

	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	meta := &ports.OntologyMeta{
		Name:       name,
		Source:     path,
		Size:       int64(len(data)),
		Classes:    len(doc.Classes()),
		ImportedAt: time.Now().Unix(),
	}
	if err := lib.Save(name, data, meta); err != nil {
		return nil, err
	}
	return meta, nil
}

func runLibraryImport(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}
	defer lib.Close()

	meta, err := importArchive(lib, args[0], libraryImportName)
	if err != nil {
		return err
	}
	fmt.Printf("%s⚡ imported %q%s (%d classes, %d bytes)\n",
		colorBold, meta.Name, colorReset, meta.Classes, meta.Size)
	return nil
}

func runLibraryList(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}
	defer lib.Close()

	metas, err := lib.List()
	if err != nil {
		return err
	}

	t := tabular.Table{Columns: []string{"Name", "Classes", "Size", "Imported", "Source"}}
	for _, m := range metas {
		t.Rows = append(t.Rows, []string{
			m.Name,
			fmt.Sprintf("%d", m.Classes),
			fmt.Sprintf("%d", m.Size),
			time.Unix(m.ImportedAt, 0).Format("2006-01-02 15:04"),
			m.Source,
		})
	}
	return emitTable(t)
}

func runLibraryRemove(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}
	defer lib.Close()

	if err := lib.Delete(args[0]); err != nil {
		return err
	}
	fmt.Printf("%s⚡ removed %q%s\n", colorBold, args[0], colorReset)
	return nil
}
