// Package mutate applies batch edits to a loaded ontology document:
// append-or-create of code/synonym fields and insertion of new classes.
// The document is consumed by the pass: it is re-serialized in full on
// completion and any previously built graph is invalid afterwards.
// Per-row failures are absorbed and logged; there is no rollback.
package mutate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/mendelkb/owlkit/internal/owl"
	"go.uber.org/zap"
)

// FieldEdit is one batch row: the target class identifier and the values
// to merge into the field.
type FieldEdit struct {
	ID     string
	Values []string
}

// NewClass is one insertion row. Label is required; everything else is
// optional.
type NewClass struct {
	Label    string
	Parent   string // parent identifier or resource URI
	ID       string // Mendel ID for the new class
	Codes    []string
	Synonyms []string
}

// Result summarizes one batch pass.
type Result struct {
	Updated int // existing field elements merged
	Created int // field elements or classes created
	Skipped int // rows dropped (missing class, missing label)
}

// AppendOrCreateField merges values into the named field (Codes or
// Synonyms) of each row's class. Existing values and new values are
// unioned as sets and re-joined sorted, so the operation is idempotent
// and deduplicating. A missing field element is created; a missing class
// skips the row.
func AppendOrCreateField(doc *owl.Document, field string, edits []FieldEdit, logger *zap.Logger) Result {
	if logger == nil {
		logger = zap.NewNop()
	}
	byID := indexByIdentifier(doc)

	var res Result
	for _, edit := range edits {
		c, ok := byID[edit.ID]
		if !ok {
			res.Skipped++
			logger.Warn("skipping edit row, no class with identifier",
				zap.String("identifier", edit.ID))
			continue
		}

		joined := joinSorted(mergeValues(c.FieldText(field), edit.Values))
		if el := c.Field(field); el != nil {
			el.SetText(joined)
			res.Updated++
			logger.Info("field updated",
				zap.String("identifier", edit.ID),
				zap.String("field", field))
		} else {
			c.AddField(field, joined)
			res.Created++
			logger.Info("field created",
				zap.String("identifier", edit.ID),
				zap.String("field", field))
		}
	}
	return res
}

// InsertClasses synthesizes a new class per row: a fresh rdf:about derived
// from the label, a subClassOf edge to the given parent (identifier or
// URI), the label element, and any optional fields present. Rows with an
// empty label are skipped and logged. No duplicate-identifier check is
// performed against existing classes, but a colliding about URI gets a
// random suffix so inserts never alias an existing resource.
func InsertClasses(doc *owl.Document, rows []NewClass, logger *zap.Logger) Result {
	if logger == nil {
		logger = zap.NewNop()
	}
	byID := indexByIdentifier(doc)

	used := make(map[string]bool)
	for _, c := range doc.Classes() {
		if about := c.About(); about != "" {
			used[about] = true
		}
	}

	base := doc.BaseURI()
	var res Result
	for _, row := range rows {
		label := strings.TrimSpace(row.Label)
		if label == "" {
			res.Skipped++
			logger.Warn("skipping insert row with empty label")
			continue
		}

		about := base + owl.Slug(label)
		if used[about] {
			about = fmt.Sprintf("%s_%s", about, uuid.NewString()[:8])
		}
		used[about] = true

		c := doc.CreateClass(about)
		if parent := strings.TrimSpace(row.Parent); parent != "" {
			resource := parent
			if p, ok := byID[parent]; ok {
				resource = p.About()
			}
			c.AddParentRef(doc, resource)
		}
		c.SetLabel(doc, label)
		if id := strings.TrimSpace(row.ID); id != "" {
			c.AddField(owl.TagIdentifier, id)
		}
		if len(row.Codes) > 0 {
			c.AddField(owl.TagCodes, joinSorted(dedupe(row.Codes)))
		}
		if len(row.Synonyms) > 0 {
			c.AddField(owl.TagSynonyms, joinSorted(dedupe(row.Synonyms)))
		}

		res.Created++
		logger.Info("class created",
			zap.String("about", about),
			zap.String("label", label))
	}
	return res
}

// indexByIdentifier maps Mendel IDs to class nodes, last-write-wins on
// duplicates (same policy as the graph builder).
func indexByIdentifier(doc *owl.Document) map[string]owl.Class {
	byID := make(map[string]owl.Class)
	for _, c := range doc.Classes() {
		if id := c.Identifier(); id != "" {
			byID[id] = c
		}
	}
	return byID
}

// mergeValues unions the tokenized existing field text with the new values.
func mergeValues(existing string, values []string) []string {
	set := make(map[string]bool)
	for _, v := range owl.SplitList(existing) {
		set[v] = true
	}
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			set[v] = true
		}
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	return out
}

// dedupe removes duplicate and empty values.
func dedupe(values []string) []string {
	return mergeValues("", values)
}

// joinSorted renders a value set deterministically.
func joinSorted(values []string) string {
	sort.Strings(values)
	return strings.Join(values, "; ")
}
