package owl

import (
	"strings"

	"github.com/beevik/etree"
)

// Field lookup policy: an ordered list of strategies tried in sequence,
// first hit wins. The typed strategy matches the expected (namespace,
// local-name) pair; the wildcard strategy matches local name only, which
// tolerates ontologies declaring the custom vocabulary under a different
// prefix or namespace.
type lookupStrategy func(el *etree.Element, ns, local string) []*etree.Element

var lookupOrder = []lookupStrategy{findTyped, findWildcard}

// findTyped returns descendants whose local name and resolved namespace
// both match.
func findTyped(el *etree.Element, ns, local string) []*etree.Element {
	var out []*etree.Element
	walkElements(el, func(e *etree.Element) {
		if e.Tag == local && namespaceOf(e) == ns {
			out = append(out, e)
		}
	})
	return out
}

// findWildcard returns descendants matching on local name alone.
func findWildcard(el *etree.Element, ns, local string) []*etree.Element {
	var out []*etree.Element
	walkElements(el, func(e *etree.Element) {
		if e.Tag == local {
			out = append(out, e)
		}
	})
	return out
}

// find returns the first element for (ns, local) under the class, or nil.
func (c Class) find(ns, local string) *etree.Element {
	for _, strategy := range lookupOrder {
		if hits := strategy(c.el, ns, local); len(hits) > 0 {
			return hits[0]
		}
	}
	return nil
}

// findAll returns every element for (ns, local) under the class: all typed
// hits when any exist, otherwise all wildcard hits.
func (c Class) findAll(ns, local string) []*etree.Element {
	for _, strategy := range lookupOrder {
		if hits := strategy(c.el, ns, local); len(hits) > 0 {
			return hits
		}
	}
	return nil
}

// About returns the class's unique resource identifier (rdf:about).
// Empty for anonymous class elements.
func (c Class) About() string {
	return attrValue(c.el, NSRDF, "about")
}

// Identifier returns the Mendel ID, or "" when the class carries none.
func (c Class) Identifier() string {
	if el := c.find(NSOWL, TagIdentifier); el != nil {
		return strings.TrimSpace(el.Text())
	}
	return ""
}

// Label returns the human-readable name, or the NoLabel sentinel.
func (c Class) Label() string {
	if el := c.find(NSRDFS, TagLabel); el != nil {
		if text := strings.TrimSpace(el.Text()); text != "" {
			return text
		}
	}
	return NoLabel
}

// Synonyms returns the tokenized synonym list in document order.
func (c Class) Synonyms() []string {
	if el := c.find(NSOWL, TagSynonyms); el != nil {
		return SplitList(el.Text())
	}
	return nil
}

// Codes returns the tokenized code list, concatenated across every Codes
// element on the class in document order.
func (c Class) Codes() []string {
	var codes []string
	for _, el := range c.findAll(NSOWL, TagCodes) {
		codes = append(codes, SplitList(el.Text())...)
	}
	return codes
}

// ParentRefs returns the rdf:resource targets of the class's direct
// subClassOf children. Zero or more: multiple inheritance is legal.
func (c Class) ParentRefs() []string {
	var refs []string
	for _, child := range c.el.ChildElements() {
		if child.Tag != TagSubClassOf {
			continue
		}
		if ref := attrValue(child, NSRDF, "resource"); ref != "" {
			refs = append(refs, ref)
		}
	}
	return refs
}

// Field returns the first element for a custom vocabulary local name
// (Codes, Synonyms, …) under the class, or nil when absent. Used by the
// mutation pass to decide between update and create.
func (c Class) Field(local string) *etree.Element {
	return c.find(NSOWL, local)
}

// FieldText returns the raw text of Field(local), or "".
func (c Class) FieldText(local string) string {
	if el := c.Field(local); el != nil {
		return el.Text()
	}
	return ""
}

// Property returns the joined text of every element with the given local
// name under the class ("; "-joined), for caller-selected output columns.
// Wildcard lookup only: selected property codes carry no namespace.
func (c Class) Property(local string) string {
	var parts []string
	for _, el := range findWildcard(c.el, "", local) {
		if text := strings.TrimSpace(el.Text()); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "; ")
}

// SplitList tokenizes a free-text field on semicolons and newlines,
// trimming each token and discarding empties.
func SplitList(text string) []string {
	var out []string
	for _, tok := range strings.FieldsFunc(text, func(r rune) bool {
		return r == ';' || r == '\n' || r == '\r'
	}) {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}
