package graph

import (
	"github.com/mendelkb/owlkit/internal/ports"
	"go.uber.org/zap"
)

// PathEntry is one hop on a root-to-start ancestor path. Level counts from
// the root: root = 0, each hop adds one.
type PathEntry struct {
	ID    string
	Level int
}

// Descendants returns every identifier reachable from root via child edges,
// in visitation order, excluding root itself. A root absent from the graph
// yields an empty result with a warning, never an error. The walk is an
// explicit stack with a visited set, so accidental cycles cannot loop and
// depth is bounded only by memory.
func (g *Graph) Descendants(root string, prog ports.Progress) []string {
	if _, ok := g.nodes[root]; !ok {
		g.log.Warn("descendant query for unknown identifier", zap.String("identifier", root))
		return nil
	}

	var out []string
	visited := map[string]bool{root: true}
	stack := []string{root}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, child := range g.children[cur] {
			if visited[child] {
				continue
			}
			visited[child] = true
			out = append(out, child)
			stack = append(stack, child)
			if prog != nil {
				prog.Report(len(out), g.Len())
			}
		}
	}
	return out
}

// AncestorPaths enumerates every distinct root-to-start path over the
// reverse adjacency. Multiple inheritance makes the ancestor relation a
// DAG, so a node reachable via two lineages appears on both paths with
// each lineage's structure intact.
//
// Each returned path runs root→…→start with levels counted from the root.
// A per-branch on-path guard truncates branches that revisit a node, so a
// malformed cyclic ontology cannot hang the walk. A start absent from the
// graph yields an empty result with a warning.
func (g *Graph) AncestorPaths(start string, prog ports.Progress) [][]PathEntry {
	if _, ok := g.nodes[start]; !ok {
		g.log.Warn("ancestor query for unknown identifier", zap.String("identifier", start))
		return nil
	}

	type frame struct {
		id  string
		idx int // next parent to expand
	}

	var paths [][]PathEntry
	path := []string{start}
	onPath := map[string]bool{start: true}
	stack := []frame{{id: start}}

	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		ps := g.parents[f.id]

		if f.idx < len(ps) {
			p := ps[f.idx]
			f.idx++
			if onPath[p] {
				g.log.Warn("cycle in subClassOf hierarchy, truncating branch",
					zap.String("identifier", p))
				continue
			}
			onPath[p] = true
			path = append(path, p)
			stack = append(stack, frame{id: p})
			continue
		}

		// Every parent expanded. Nodes with zero parents terminate a path.
		if len(ps) == 0 {
			rec := make([]PathEntry, len(path))
			for i, id := range path {
				// path runs start→root; reverse so root is level 0
				rec[len(path)-1-i] = PathEntry{ID: id, Level: len(path) - 1 - i}
			}
			paths = append(paths, rec)
			if prog != nil {
				prog.Report(len(paths), g.Len())
			}
		}

		onPath[f.id] = false
		path = path[:len(path)-1]
		stack = stack[:len(stack)-1]
	}
	return paths
}

// Ancestry flattens the enumerated paths into a leveled, order-preserving
// list: identifiers deduplicated keeping the first occurrence, so the
// first-seen level wins. This is a presentation of path visitation order,
// not a minimum-distance guarantee.
func (g *Graph) Ancestry(start string, prog ports.Progress) []PathEntry {
	var out []PathEntry
	seen := make(map[string]bool)
	for _, path := range g.AncestorPaths(start, prog) {
		for _, entry := range path {
			if seen[entry.ID] {
				continue
			}
			seen[entry.ID] = true
			out = append(out, entry)
		}
	}
	return out
}
