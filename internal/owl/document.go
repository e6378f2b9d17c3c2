// Package owl holds the in-memory ontology document: parsing OWL/XML (RDF/XML)
// into an element tree, namespace-tolerant field extraction per class, and the
// element-building helpers the mutation pass needs. The tree is owned by the
// caller for the lifetime of one request: load, query or mutate, then discard
// or re-serialize.
package owl

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/beevik/etree"
)

// Well-known namespace URIs.
const (
	NSOWL  = "http://www.w3.org/2002/07/owl#"
	NSRDF  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NSRDFS = "http://www.w3.org/2000/01/rdf-schema#"
)

// Local names of the custom vocabulary. Source files declare these under
// varying namespace prefixes, which is why every lookup falls back to a
// local-name-only match.
const (
	TagClass      = "Class"
	TagSubClassOf = "subClassOf"
	TagLabel      = "label"
	TagIdentifier = "Mendel_ID"
	TagSynonyms   = "Synonyms"
	TagCodes      = "Codes"
)

// NoLabel is the sentinel label for classes with no rdfs:label element.
const NoLabel = "No label"

// DefaultBase is the URI base for synthesized classes when the document
// declares no xml:base and no owl:Ontology about attribute.
const DefaultBase = "http://www.semanticweb.org/owlkit/ontologies#"

// Document is one parsed ontology. It owns all class elements for its
// lifetime. Immutable during traversal; mutable only during a mutation pass.
type Document struct {
	tree *etree.Document
}

// Class is one ontology concept: a view over an owl:Class element.
type Class struct {
	el *etree.Element
}

// Root returns the document's root element.
func (d *Document) Root() *etree.Element {
	return d.tree.Root()
}

// Bytes re-serializes the whole document.
func (d *Document) Bytes() ([]byte, error) {
	return d.tree.WriteToBytes()
}

// Classes returns every class element in document order. Elements whose
// resolved namespace is owl# are preferred; when the document resolves none
// (unknown prefixes throughout), any element with local name Class is taken.
func (d *Document) Classes() []Class {
	root := d.tree.Root()
	if root == nil {
		return nil
	}

	var typed, untyped []Class
	walkElements(root, func(el *etree.Element) {
		if el.Tag != TagClass {
			return
		}
		if namespaceOf(el) == NSOWL {
			typed = append(typed, Class{el: el})
		} else {
			untyped = append(untyped, Class{el: el})
		}
	})

	if len(typed) > 0 {
		return typed
	}
	return untyped
}

// BaseURI returns the URI base for fresh class resources: the root's
// xml:base if declared, else the owl:Ontology about value, else DefaultBase.
// A trailing fragment separator is guaranteed.
func (d *Document) BaseURI() string {
	root := d.tree.Root()
	if root == nil {
		return DefaultBase
	}
	base := attrValue(root, NSRDF, "about")
	for _, a := range root.Attr {
		if a.Key == "base" {
			base = a.Value
		}
	}
	if base == "" {
		walkElements(root, func(el *etree.Element) {
			if base == "" && el.Tag == "Ontology" && namespaceOf(el) == NSOWL {
				base = attrValue(el, NSRDF, "about")
			}
		})
	}
	if base == "" {
		return DefaultBase
	}
	if !strings.HasSuffix(base, "#") && !strings.HasSuffix(base, "/") {
		base += "#"
	}
	return base
}

// PrefixFor resolves the declared prefix for a namespace URI, falling back
// to the conventional prefix when the document does not declare one.
func (d *Document) PrefixFor(ns string) string {
	if root := d.tree.Root(); root != nil {
		for _, a := range root.Attr {
			if a.Space == "xmlns" && a.Value == ns {
				return a.Key
			}
		}
	}
	switch ns {
	case NSOWL:
		return "owl"
	case NSRDF:
		return "rdf"
	case NSRDFS:
		return "rdfs"
	}
	return ""
}

// CreateClass appends a fresh owl:Class element with the given rdf:about
// to the document root and returns it as a Class.
func (d *Document) CreateClass(about string) Class {
	root := d.tree.Root()
	el := root.CreateElement(qname(d.PrefixFor(NSOWL), TagClass))
	el.CreateAttr(qname(d.PrefixFor(NSRDF), "about"), about)
	return Class{el: el}
}

// AddParentRef appends a subClassOf edge referencing the parent's resource URI.
func (c Class) AddParentRef(d *Document, resource string) {
	el := c.el.CreateElement(qname(d.PrefixFor(NSRDFS), TagSubClassOf))
	el.CreateAttr(qname(d.PrefixFor(NSRDF), "resource"), resource)
}

// SetLabel appends an rdfs:label element.
func (c Class) SetLabel(d *Document, label string) {
	c.el.CreateElement(qname(d.PrefixFor(NSRDFS), TagLabel)).SetText(label)
}

// AddField appends a custom vocabulary element (Mendel_ID, Codes, Synonyms, …)
// using the class element's own prefix so the new field round-trips the way
// the source file spells its vocabulary.
func (c Class) AddField(local, text string) *etree.Element {
	el := c.el.CreateElement(qname(c.el.Space, local))
	el.SetText(text)
	return el
}

// slugRe collapses anything outside [A-Za-z0-9_] when deriving a URI
// fragment from a label.
var slugRe = regexp.MustCompile(`[^A-Za-z0-9_]+`)

// Slug derives a URI-safe local name from a human label.
func Slug(label string) string {
	s := strings.TrimSpace(strings.ToLower(label))
	s = strings.ReplaceAll(s, " ", "_")
	s = slugRe.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return "x"
	}
	return s
}

// qname joins a prefix and local name, omitting the colon for empty prefixes.
func qname(prefix, local string) string {
	if prefix == "" {
		return local
	}
	return prefix + ":" + local
}

// walkElements visits every element under el (excluding el itself) in
// document order. Explicit stack: depth is bounded by memory, not the
// call stack.
func walkElements(el *etree.Element, visit func(*etree.Element)) {
	stack := make([]*etree.Element, 0, 64)
	children := el.ChildElements()
	for i := len(children) - 1; i >= 0; i-- {
		stack = append(stack, children[i])
	}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(cur)
		children = cur.ChildElements()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
}

// namespaceOf resolves the namespace URI of an element's prefix by walking
// xmlns declarations up the tree. Empty when the prefix is undeclared.
func namespaceOf(el *etree.Element) string {
	return resolvePrefix(el, el.Space)
}

// resolvePrefix finds the in-scope namespace URI bound to prefix at el.
func resolvePrefix(el *etree.Element, prefix string) string {
	for cur := el; cur != nil; cur = cur.Parent() {
		for _, a := range cur.Attr {
			if prefix == "" {
				if a.Space == "" && a.Key == "xmlns" {
					return a.Value
				}
			} else if a.Space == "xmlns" && a.Key == prefix {
				return a.Value
			}
		}
	}
	return ""
}

// attrValue looks up an attribute by (namespace, local) with a local-name
// fallback, mirroring the element lookup policy.
func attrValue(el *etree.Element, ns, local string) string {
	fallback := ""
	for i := range el.Attr {
		a := &el.Attr[i]
		if a.Key != local || a.Space == "xmlns" {
			continue
		}
		if resolvePrefix(el, a.Space) == ns {
			return a.Value
		}
		if fallback == "" {
			fallback = a.Value
		}
	}
	return fallback
}

// String implements fmt.Stringer for debugging.
func (c Class) String() string {
	return fmt.Sprintf("Class(%s)", c.About())
}
