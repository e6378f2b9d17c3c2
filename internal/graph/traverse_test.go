package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescendants_ExcludesRoot(t *testing.T) {
	g := diamond(t)
	desc := g.Descendants("R", nil)
	assert.NotContains(t, desc, "R")
	assert.ElementsMatch(t, []string{"A", "X", "Y"}, desc)
}

func TestDescendants_Idempotent(t *testing.T) {
	g := diamond(t)
	first := g.Descendants("R", nil)
	second := g.Descendants("R", nil)
	assert.ElementsMatch(t, first, second)
}

func TestDescendants_SharedChildVisitedOnce(t *testing.T) {
	g := diamond(t)
	desc := g.Descendants("B", nil)
	assert.ElementsMatch(t, []string{"X", "Y"}, desc)
}

func TestDescendants_UnknownRootEmpty(t *testing.T) {
	g := diamond(t)
	assert.Empty(t, g.Descendants("NOPE", nil))
}

func TestDescendants_LeafEmpty(t *testing.T) {
	g := diamond(t)
	assert.Empty(t, g.Descendants("Y", nil))
}

func TestAncestorPaths_MultipleInheritance(t *testing.T) {
	g := diamond(t)
	paths := g.AncestorPaths("X", nil)
	require.Len(t, paths, 2)

	// Lineage through A reaches R; lineage through B terminates at B.
	assert.Equal(t, []PathEntry{{ID: "R", Level: 0}, {ID: "A", Level: 1}, {ID: "X", Level: 2}}, paths[0])
	assert.Equal(t, []PathEntry{{ID: "B", Level: 0}, {ID: "X", Level: 1}}, paths[1])
}

func TestAncestorPaths_TerminateAtRootsOnly(t *testing.T) {
	g := diamond(t)
	for _, path := range g.AncestorPaths("Y", nil) {
		require.NotEmpty(t, path)
		assert.Empty(t, g.Parents(path[0].ID), "path must terminate at a zero-parent node")
	}
}

func TestAncestorPaths_UnknownStartEmpty(t *testing.T) {
	g := diamond(t)
	assert.Empty(t, g.AncestorPaths("NOPE", nil))
}

func TestAncestorPaths_RootYieldsSelf(t *testing.T) {
	g := diamond(t)
	paths := g.AncestorPaths("R", nil)
	require.Len(t, paths, 1)
	assert.Equal(t, []PathEntry{{ID: "R", Level: 0}}, paths[0])
}

func TestAncestry_DedupFirstSeen(t *testing.T) {
	g := diamond(t)
	flat := g.Ancestry("X", nil)

	// Visitation order with first-seen levels; X appears exactly once even
	// though both lineages contain it.
	assert.Equal(t, []PathEntry{
		{ID: "R", Level: 0},
		{ID: "A", Level: 1},
		{ID: "X", Level: 2},
		{ID: "B", Level: 0},
	}, flat)
}

func TestAncestry_FirstSeenLevelWins(t *testing.T) {
	// V has parents W (deep lineage) and R (direct). W's lineage enumerates
	// first, so shared nodes keep the deeper first-seen level.
	doc := ontology(t,
		[]string{"R", "Root"},
		[]string{"W", "Mid", "R"},
		[]string{"V", "Leaf", "W", "R"},
	)
	g := Build(doc, nil)

	flat := g.Ancestry("V", nil)
	assert.Equal(t, []PathEntry{
		{ID: "R", Level: 0},
		{ID: "W", Level: 1},
		{ID: "V", Level: 2},
	}, flat)
}

func TestAncestorPaths_CycleTruncates(t *testing.T) {
	// C1 and C2 point at each other: a malformed ontology. The walk must
	// terminate; branches revisiting an on-path node are dropped.
	doc := ontology(t,
		[]string{"C1", "One", "C2"},
		[]string{"C2", "Two", "C1"},
	)
	g := Build(doc, nil)

	paths := g.AncestorPaths("C1", nil)
	assert.Empty(t, paths, "cyclic lineage has no zero-parent terminus")
}

func TestDescendants_CycleTerminates(t *testing.T) {
	doc := ontology(t,
		[]string{"C1", "One", "C2"},
		[]string{"C2", "Two", "C1"},
	)
	g := Build(doc, nil)

	desc := g.Descendants("C1", nil)
	assert.Equal(t, []string{"C2"}, desc)
}

// recorder captures progress callbacks.
type recorder struct {
	calls int
	last  int
}

func (r *recorder) Report(current, total int) {
	r.calls++
	r.last = current
}

func TestDescendants_ReportsProgress(t *testing.T) {
	g := diamond(t)
	rec := &recorder{}
	g.Descendants("R", rec)
	assert.Equal(t, 3, rec.calls)
	assert.Equal(t, 3, rec.last)
}
