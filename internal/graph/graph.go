// Package graph derives the identifier-keyed class graph from a parsed
// ontology document: an identifier index plus forward (parent→children)
// and reverse (child→parents) adjacency reconstructed from subClassOf
// resource references. The graph is built once per request from the
// current document state and never incrementally updated; a mutation
// invalidates it and requires a rebuild.
package graph

import (
	"github.com/mendelkb/owlkit/internal/owl"
	"go.uber.org/zap"
)

// Graph is the derived class graph. Read-only after Build.
type Graph struct {
	nodes    map[string]owl.Class // identifier -> class node
	children map[string][]string  // identifier -> child identifiers
	parents  map[string][]string  // identifier -> parent identifiers
	log      *zap.Logger
}

// Build scans every class element once and assembles the graph at O(N+E).
//
// Classes without an identifier are excluded from identifier-keyed lookups.
// Duplicate identifiers are last-write-wins, with a warning per duplicate.
// subClassOf references that do not resolve to any known class (external
// imports, dangling edits) cannot be represented in the identifier graph
// and are dropped.
func Build(doc *owl.Document, logger *zap.Logger) *Graph {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Graph{
		nodes:    make(map[string]owl.Class),
		children: make(map[string][]string),
		parents:  make(map[string][]string),
		log:      logger,
	}

	classes := doc.Classes()
	aboutToID := make(map[string]string, len(classes))

	for _, c := range classes {
		about := c.About()
		if about == "" {
			continue
		}
		id := c.Identifier()
		if id == "" {
			continue
		}
		if _, dup := g.nodes[id]; dup {
			g.log.Warn("duplicate identifier, keeping last node seen",
				zap.String("identifier", id),
				zap.String("about", about))
		}
		g.nodes[id] = c
		aboutToID[about] = id
	}

	for id, c := range g.nodes {
		for _, ref := range c.ParentRefs() {
			parentID, ok := aboutToID[ref]
			if !ok {
				g.log.Debug("dropping unresolved subClassOf reference",
					zap.String("identifier", id),
					zap.String("resource", ref))
				continue
			}
			g.children[parentID] = append(g.children[parentID], id)
			g.parents[id] = append(g.parents[id], parentID)
		}
	}

	g.log.Info("graph built",
		zap.Int("classes", len(classes)),
		zap.Int("identified", len(g.nodes)))
	return g
}

// Node returns the class node for an identifier.
func (g *Graph) Node(id string) (owl.Class, bool) {
	c, ok := g.nodes[id]
	return c, ok
}

// Len returns the number of identifier-keyed nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Children returns the direct child identifiers of id.
func (g *Graph) Children(id string) []string {
	return g.children[id]
}

// Parents returns the direct parent identifiers of id.
func (g *Graph) Parents(id string) []string {
	return g.parents[id]
}
