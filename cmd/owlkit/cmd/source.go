package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mendelkb/owlkit/internal/adapters/bbolt"
	"github.com/mendelkb/owlkit/internal/app"
	"github.com/mendelkb/owlkit/internal/owl"
	"github.com/mendelkb/owlkit/internal/ports"
	"github.com/mendelkb/owlkit/internal/tabular"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds the command-scoped logger: human-readable lines on
// stderr, warnings only unless --verbose.
func newLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if flagVerbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// newApp wires the per-request App with logging and progress reporting.
func newApp(logger *zap.Logger) *app.App {
	var prog ports.Progress
	if flagVerbose {
		prog = &stderrProgress{}
	}
	return app.New(logger, prog)
}

// libraryPath resolves the library database location, creating the parent
// directory on demand.
func libraryPath() (string, error) {
	if flagLibrary != "" {
		return flagLibrary, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".owlkit")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "library.db"), nil
}

// openLibrary opens the bbolt-backed ontology library.
func openLibrary() (*bbolt.Store, error) {
	path, err := libraryPath()
	if err != nil {
		return nil, err
	}
	return bbolt.NewStore(path)
}

// loadDocument resolves --file / --ontology into a parsed document.
// Each command loads fresh: there is no cached document across requests.
func loadDocument() (*owl.Document, error) {
	switch {
	case flagFile != "":
		return owl.OpenFile(flagFile)
	case flagOntology != "":
		lib, err := openLibrary()
		if err != nil {
			return nil, err
		}
		defer lib.Close()
		archive, _, err := lib.Load(flagOntology)
		if err != nil {
			return nil, err
		}
		if archive == nil {
			return nil, fmt.Errorf("no ontology %q in library (import it first: owlkit library import)", flagOntology)
		}
		return owl.Open(archive)
	default:
		return nil, fmt.Errorf("no ontology given: pass --file or --ontology")
	}
}

// gatherTerms merges ||-delimited argument terms with an optional
// single-column CSV term file.
func gatherTerms(args []string, termsFile string) ([]string, error) {
	var terms []string
	for _, arg := range args {
		terms = append(terms, tabular.ParseTerms(arg)...)
	}
	if termsFile != "" {
		f, err := os.Open(termsFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		fromFile, err := tabular.ReadTerms(f)
		if err != nil {
			return nil, err
		}
		terms = append(terms, fromFile...)
	}
	if len(terms) == 0 {
		return nil, fmt.Errorf("no search terms: pass ||-delimited terms or --terms-file")
	}
	return terms, nil
}

// stderrProgress prints a coarse monotonic counter. Observational only.
type stderrProgress struct {
	last int
}

// Report prints every 2000 items and on completion.
func (p *stderrProgress) Report(current, total int) {
	if current-p.last < 2000 && current != total {
		return
	}
	p.last = current
	fmt.Fprintf(os.Stderr, "  … %d/%d\n", current, total)
}
