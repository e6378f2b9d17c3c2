// Package app orchestrates one request at a time: load the document, build
// the derived graph, run a single query or mutation, and hand back a result
// table. All state is rebuilt per request and discarded afterwards; there
// is no cached graph and no shared mutable state between invocations.
package app

import (
	"strconv"
	"strings"

	"github.com/mendelkb/owlkit/internal/graph"
	"github.com/mendelkb/owlkit/internal/match"
	"github.com/mendelkb/owlkit/internal/mutate"
	"github.com/mendelkb/owlkit/internal/owl"
	"github.com/mendelkb/owlkit/internal/ports"
	"github.com/mendelkb/owlkit/internal/tabular"
	"go.uber.org/zap"
)

// App runs queries and mutations against a loaded ontology.
type App struct {
	log  *zap.Logger
	prog ports.Progress
}

// New builds an App. logger and prog may be nil.
func New(logger *zap.Logger, prog ports.Progress) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{log: logger, prog: prog}
}

// Records extracts the full field set of every identifier-carrying class.
func (a *App) Records(doc *owl.Document) []match.Record {
	classes := doc.Classes()
	a.log.Info("ontology parsed", zap.Int("classes", len(classes)))

	var recs []match.Record
	for i, c := range classes {
		if a.prog != nil {
			a.prog.Report(i+1, len(classes))
		}
		id := c.Identifier()
		if id == "" {
			continue
		}
		recs = append(recs, match.Record{
			ID:       id,
			Label:    c.Label(),
			Synonyms: c.Synonyms(),
			Codes:    c.Codes(),
		})
	}
	return recs
}

// matchColumns is the shared result shape of the search operations.
var matchColumns = []string{"Original Search Term", "Mendel_ID", "Class_Label", "Matched", "Codes", "Synonyms"}

// SearchSynonyms runs the exact synonym strategy over every class.
func (a *App) SearchSynonyms(doc *owl.Document, terms []string) tabular.Table {
	recs := a.Records(doc)
	return a.matchTable(recs, match.Synonyms(recs, terms, a.prog))
}

// SearchCodes runs the code strategy selected by mode over every class.
func (a *App) SearchCodes(doc *owl.Document, terms []string, mode match.Mode) tabular.Table {
	recs := a.Records(doc)
	return a.matchTable(recs, match.Codes(recs, terms, mode, a.prog))
}

func (a *App) matchTable(recs []match.Record, rows []match.Row) tabular.Table {
	t := tabular.Table{Columns: matchColumns}
	for _, r := range rows {
		a.log.Info("match found",
			zap.String("identifier", r.ID),
			zap.String("label", r.Label),
			zap.Strings("terms", r.Terms))
		rec := lookupRecord(recs, r.ID)
		t.Rows = append(t.Rows, []string{
			strings.Join(r.Terms, "; "),
			r.ID,
			r.Label,
			strings.Join(r.Matched, "; "),
			strings.Join(rec.Codes, "; "),
			strings.Join(rec.Synonyms, "; "),
		})
	}
	return t
}

// Lookup reports label, codes, and synonyms for each requested identifier.
// Unknown identifiers are absorbed with a warning, matching the traversal
// failure semantics.
func (a *App) Lookup(doc *owl.Document, ids []string) tabular.Table {
	recs := a.Records(doc)
	byID := make(map[string]match.Record, len(recs))
	for _, r := range recs {
		byID[r.ID] = r
	}

	t := tabular.Table{Columns: []string{"Mendel_ID", "Class_Label", "Codes", "Synonyms"}}
	for _, id := range ids {
		rec, ok := byID[id]
		if !ok {
			a.log.Warn("lookup for unknown identifier", zap.String("identifier", id))
			continue
		}
		a.log.Info("identifier found",
			zap.String("identifier", id),
			zap.String("label", rec.Label))
		t.Rows = append(t.Rows, []string{
			rec.ID,
			rec.Label,
			strings.Join(rec.Codes, "; "),
			strings.Join(rec.Synonyms, "; "),
		})
	}
	return t
}

// Descendants computes the descendant closure of each root and reports one
// row per descendant, optionally carrying caller-selected property values.
func (a *App) Descendants(doc *owl.Document, roots []string, props []string) tabular.Table {
	g := graph.Build(doc, a.log)

	cols := []string{"Root Mendel ID", "Mendel_ID", "Class_Label", "Label::Mendel ID"}
	cols = append(cols, props...)

	t := tabular.Table{Columns: cols}
	for _, root := range roots {
		for _, id := range g.Descendants(root, a.prog) {
			c, ok := g.Node(id)
			if !ok {
				continue
			}
			label := c.Label()
			row := []string{root, id, label, label + "::" + id}
			for _, p := range props {
				row = append(row, c.Property(p))
			}
			t.Rows = append(t.Rows, row)
		}
	}
	return t
}

// Ancestors enumerates every root-to-start lineage of each identifier and
// reports the deduplicated, leveled flattening: one row per ancestor,
// first-seen level, visitation order preserved.
func (a *App) Ancestors(doc *owl.Document, ids []string) tabular.Table {
	g := graph.Build(doc, a.log)

	t := tabular.Table{Columns: []string{"Root Mendel ID", "Mendel_ID", "Class_Label", "Indented Label", "Label::Mendel ID", "Level"}}
	for _, id := range ids {
		for _, entry := range g.Ancestry(id, a.prog) {
			label := owl.NoLabel
			if c, ok := g.Node(entry.ID); ok {
				label = c.Label()
			}
			indented := strings.Repeat("--", entry.Level) + "> " + label
			t.Rows = append(t.Rows, []string{
				id,
				entry.ID,
				label,
				indented,
				label + "::" + entry.ID,
				strconv.Itoa(entry.Level),
			})
		}
	}
	return t
}

// Properties lists every annotation property in use, with human labels.
func (a *App) Properties(doc *owl.Document) tabular.Table {
	t := tabular.Table{Columns: []string{"Code", "Label"}}
	for _, p := range owl.DiscoverProperties(doc) {
		t.Rows = append(t.Rows, []string{p.Code, p.Label})
	}
	return t
}

// EditField applies an append-or-create batch to the named field and
// re-serializes the document.
func (a *App) EditField(doc *owl.Document, field string, edits []mutate.FieldEdit) (mutate.Result, []byte, error) {
	res := mutate.AppendOrCreateField(doc, field, edits, a.log)
	out, err := doc.Bytes()
	return res, out, err
}

// AddClasses applies an insertion batch and re-serializes the document.
func (a *App) AddClasses(doc *owl.Document, rows []mutate.NewClass) (mutate.Result, []byte, error) {
	res := mutate.InsertClasses(doc, rows, a.log)
	out, err := doc.Bytes()
	return res, out, err
}

// lookupRecord finds a record by identifier; zero Record when absent.
func lookupRecord(recs []match.Record, id string) match.Record {
	for _, r := range recs {
		if r.ID == id {
			return r
		}
	}
	return match.Record{}
}
