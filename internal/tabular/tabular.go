// Package tabular handles the flat tables at the toolkit's edges: ||-
// delimited and single-column CSV term input, the batch-edit row formats,
// and CSV output of result tables.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/mendelkb/owlkit/internal/mutate"
	"github.com/mendelkb/owlkit/internal/owl"
)

// Table is one result set: named columns and string rows, produced by the
// app layer and consumed by the CLI formatter or the CSV writer.
type Table struct {
	Columns []string
	Rows    [][]string
}

// ParseTerms splits ||-delimited free-text input into trimmed, non-empty
// search terms.
func ParseTerms(input string) []string {
	var out []string
	for _, t := range strings.Split(input, "||") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// ReadTerms reads a single-column CSV with header "Values" (case-
// insensitive) and returns the trimmed, non-empty terms.
func ReadTerms(r io.Reader) ([]string, error) {
	header, records, err := readAll(r)
	if err != nil {
		return nil, err
	}
	col, ok := columnIndex(header, "Values")
	if !ok {
		return nil, fmt.Errorf("term file must have a single header %q", "Values")
	}
	var terms []string
	for _, rec := range records {
		if col < len(rec) {
			if t := strings.TrimSpace(rec[col]); t != "" {
				terms = append(terms, t)
			}
		}
	}
	return terms, nil
}

// ReadFieldEdits reads a batch-edit CSV: columns Mendel_ID and Values,
// where Values holds one or more ;-delimited entries.
func ReadFieldEdits(r io.Reader) ([]mutate.FieldEdit, error) {
	header, records, err := readAll(r)
	if err != nil {
		return nil, err
	}
	idCol, ok := columnIndex(header, "Mendel_ID")
	if !ok {
		return nil, fmt.Errorf("edit file is missing column %q", "Mendel_ID")
	}
	valCol, ok := columnIndex(header, "Values")
	if !ok {
		return nil, fmt.Errorf("edit file is missing column %q", "Values")
	}

	var edits []mutate.FieldEdit
	for _, rec := range records {
		edit := mutate.FieldEdit{ID: field(rec, idCol)}
		edit.Values = splitValues(field(rec, valCol))
		edits = append(edits, edit)
	}
	return edits, nil
}

// ReadNewClasses reads an insertion CSV: required column Label, optional
// Parent, Mendel_ID, Codes, Synonyms. Rows are returned as-is; label
// validation belongs to the mutation pass so skips are counted there.
func ReadNewClasses(r io.Reader) ([]mutate.NewClass, error) {
	header, records, err := readAll(r)
	if err != nil {
		return nil, err
	}
	if _, ok := columnIndex(header, "Label"); !ok {
		return nil, fmt.Errorf("class file is missing column %q", "Label")
	}

	labelCol, _ := columnIndex(header, "Label")
	parentCol, _ := columnIndex(header, "Parent")
	idCol, _ := columnIndex(header, "Mendel_ID")
	codesCol, _ := columnIndex(header, "Codes")
	synCol, _ := columnIndex(header, "Synonyms")

	var rows []mutate.NewClass
	for _, rec := range records {
		rows = append(rows, mutate.NewClass{
			Label:    field(rec, labelCol),
			Parent:   field(rec, parentCol),
			ID:       field(rec, idCol),
			Codes:    splitValues(field(rec, codesCol)),
			Synonyms: splitValues(field(rec, synCol)),
		})
	}
	return rows, nil
}

// WriteCSV renders a table as CSV.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// readAll consumes a CSV stream into header + records. Rows are allowed to
// be ragged; missing cells read as empty.
func readAll(r io.Reader) ([]string, [][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	all, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("empty csv input")
	}
	return all[0], all[1:], nil
}

// columnIndex finds a header column by case-insensitive name.
func columnIndex(header []string, name string) (int, bool) {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i, true
		}
	}
	return -1, false
}

// splitValues tokenizes a multi-value cell. Cells accept the same ;/newline
// delimiters as ontology fields plus the || used for term input.
func splitValues(cell string) []string {
	return owl.SplitList(strings.ReplaceAll(cell, "||", ";"))
}

// field returns a trimmed cell, tolerating short rows and missing columns.
func field(rec []string, col int) string {
	if col < 0 || col >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[col])
}
