package owl

import (
	"sort"
	"strings"

	"github.com/beevik/etree"
)

// Property is one discoverable annotation property: the raw code used as an
// element tag on classes, plus a human label resolved from the document's
// owl:AnnotationProperty declarations (falling back to the code itself).
type Property struct {
	Code  string
	Label string
}

// structuralTags are class children that are hierarchy or naming structure,
// not annotation properties.
var structuralTags = map[string]bool{
	TagSubClassOf: true,
	TagLabel:      true,
	TagClass:      true,
}

// DiscoverProperties enumerates every property local name used on any class
// in the document, sorted by code.
func DiscoverProperties(d *Document) []Property {
	root := d.Root()
	if root == nil {
		return nil
	}

	// owl:AnnotationProperty about-fragment -> rdfs:label
	labels := make(map[string]string)
	walkElements(root, func(el *etree.Element) {
		if el.Tag != "AnnotationProperty" {
			return
		}
		about := attrValue(el, NSRDF, "about")
		if about == "" {
			return
		}
		local := about
		if i := strings.LastIndex(about, "#"); i >= 0 {
			local = about[i+1:]
		}
		label := local
		if lbl := (Class{el: el}).find(NSRDFS, TagLabel); lbl != nil {
			if text := strings.TrimSpace(lbl.Text()); text != "" {
				label = text
			}
		}
		labels[local] = label
	})

	// Property tags actually used on classes.
	seen := make(map[string]bool)
	for _, c := range d.Classes() {
		for _, child := range c.el.ChildElements() {
			if !structuralTags[child.Tag] {
				seen[child.Tag] = true
			}
		}
	}

	codes := make([]string, 0, len(seen))
	for code := range seen {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	props := make([]Property, 0, len(codes))
	for _, code := range codes {
		label := labels[code]
		if label == "" {
			label = code
		}
		props = append(props, Property{Code: code, Label: label})
	}
	return props
}
