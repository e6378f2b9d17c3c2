package owl

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
)

// Error taxonomy for the load step. All three are fatal for the request and
// surfaced verbatim to the caller; everything past a successful parse
// degrades per-item instead.
var (
	// ErrCorruptArchive: the container cannot be opened as a ZIP.
	ErrCorruptArchive = errors.New("archive cannot be opened")

	// ErrNoOntology: no entry with a recognized ontology extension.
	ErrNoOntology = errors.New("no ontology document found in archive")

	// ErrParse: the ontology document is not well-formed XML.
	ErrParse = errors.New("ontology document is not well-formed")
)

// ontologyExts are the recognized ontology document extensions, checked
// case-insensitively against archive entry names.
var ontologyExts = []string{".owl", ".xml"}

// Open locates the ontology document inside a ZIP archive and parses it.
// The first entry with a recognized extension wins, deterministically by
// archive listing order; there is no fallback to a second candidate.
func Open(data []byte) (*Document, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptArchive, err)
	}

	for _, f := range zr.File {
		if !recognized(f.Name) {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: open %s: %v", ErrCorruptArchive, f.Name, err)
		}
		raw, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", ErrCorruptArchive, f.Name, err)
		}
		return OpenDocument(raw)
	}

	return nil, ErrNoOntology
}

// OpenDocument parses a bare (non-archived) OWL/XML document.
func OpenDocument(data []byte) (*Document, error) {
	tree := etree.NewDocument()
	if err := tree.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if tree.Root() == nil {
		return nil, fmt.Errorf("%w: document has no root element", ErrParse)
	}
	return &Document{tree: tree}, nil
}

// OpenFile reads path and dispatches on its extension: ZIP archives go
// through the archive path, anything else is parsed as a bare document.
func OpenFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".zip") {
		return Open(data)
	}
	return OpenDocument(data)
}

// Wrap packs a bare ontology document into a single-entry ZIP archive, so
// callers that only store archives can accept bare .owl/.xml files too.
func Wrap(name string, doc []byte) ([]byte, error) {
	if !recognized(name) {
		name += ".owl"
	}
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(name)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(doc); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// recognized reports whether an archive entry name carries an ontology
// extension.
func recognized(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range ontologyExts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
