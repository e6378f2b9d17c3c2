// Package match implements the four search strategies over extracted class
// fields: exact synonym, exact code, and the relaxed / semi-relaxed code
// value comparisons. All strategies are case-insensitive filters: a class
// with no matching field is omitted, never annotated.
package match

import "github.com/mendelkb/owlkit/internal/ports"

// Record is the fully extracted field set of one class, the unit the match
// engine filters over.
type Record struct {
	ID       string
	Label    string
	Synonyms []string
	Codes    []string
}

// Row is one matching class: the original (pre-clean) input terms that hit,
// the full stored field values, and just the matched subset.
type Row struct {
	Terms   []string // original input terms that matched
	ID      string
	Label   string
	Values  []string // full stored field list (synonyms or codes)
	Matched []string // stored values that matched
}

// Mode selects the code comparison policy.
type Mode int

const (
	// Exact compares raw code strings, lowercased.
	Exact Mode = iota
	// Relaxed isolates the code value after the first ':' and strips all
	// non-alphanumeric characters before comparing.
	Relaxed
	// SemiRelaxed isolates the code value but strips only the '.'
	// character, preserving other punctuation.
	SemiRelaxed
)

// matcher pairs a field selector with the normalizers applied to stored
// values and input terms.
type matcher struct {
	field      func(Record) []string
	storedNorm func(string) string
	termNorm   func(string) string
}

// Synonyms filters records by exact (case-insensitive) synonym match.
func Synonyms(recs []Record, terms []string, prog ports.Progress) []Row {
	return run(recs, terms, matcher{
		field:      func(r Record) []string { return r.Synonyms },
		storedNorm: lower,
		termNorm:   lower,
	}, prog)
}

// Codes filters records by code match under the given mode.
func Codes(recs []Record, terms []string, mode Mode, prog ports.Progress) []Row {
	m := matcher{field: func(r Record) []string { return r.Codes }}
	switch mode {
	case Relaxed:
		m.storedNorm = func(s string) string { return relaxed(codeValue(s)) }
		m.termNorm = relaxed
	case SemiRelaxed:
		m.storedNorm = func(s string) string { return semiRelaxed(codeValue(s)) }
		m.termNorm = semiRelaxed
	default:
		m.storedNorm = lower
		m.termNorm = lower
	}
	return run(recs, terms, m, prog)
}

// run applies one matcher across every record. Input terms are indexed by
// their normalized form; the first original spelling of a normalized term
// wins for reporting.
func run(recs []Record, terms []string, m matcher, prog ports.Progress) []Row {
	index := make(map[string]string, len(terms))
	for _, t := range terms {
		key := m.termNorm(t)
		if key == "" {
			continue
		}
		if _, ok := index[key]; !ok {
			index[key] = t
		}
	}

	var rows []Row
	for i, rec := range recs {
		if prog != nil {
			prog.Report(i+1, len(recs))
		}
		values := m.field(rec)

		var matched, hitTerms []string
		seenTerm := make(map[string]bool)
		for _, v := range values {
			orig, ok := index[m.storedNorm(v)]
			if !ok {
				continue
			}
			matched = append(matched, v)
			if !seenTerm[orig] {
				seenTerm[orig] = true
				hitTerms = append(hitTerms, orig)
			}
		}
		if len(matched) == 0 {
			continue
		}
		rows = append(rows, Row{
			Terms:   hitTerms,
			ID:      rec.ID,
			Label:   rec.Label,
			Values:  values,
			Matched: matched,
		})
	}
	return rows
}
