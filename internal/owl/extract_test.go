package owl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fieldsOWL = `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:rdfs="http://www.w3.org/2000/01/rdf-schema#"
         xmlns:owl="http://www.w3.org/2002/07/owl#"
         xmlns:amr="http://www.semanticweb.org/amr/ontologies/2018/">
  <owl:Class rdf:about="http://example.org/onto#D1">
    <rdfs:subClassOf rdf:resource="http://example.org/onto#Root"/>
    <rdfs:subClassOf rdf:resource="http://example.org/onto#Other"/>
    <owl:Mendel_ID> MID:100 </owl:Mendel_ID>
    <rdfs:label>  Type 2 Diabetes  </rdfs:label>
    <owl:Synonyms>T2D; Adult-onset diabetes
NIDDM</owl:Synonyms>
    <owl:Codes>A:100; B:200
C:300</owl:Codes>
    <amr:P90>extra value</amr:P90>
  </owl:Class>
  <owl:Class rdf:about="http://example.org/onto#D2">
    <amr:Mendel_ID>MID:200</amr:Mendel_ID>
  </owl:Class>
</rdf:RDF>`

func classesOf(t *testing.T, src string) []Class {
	t.Helper()
	doc, err := OpenDocument([]byte(src))
	require.NoError(t, err)
	return doc.Classes()
}

func TestExtract_Identifier(t *testing.T) {
	cls := classesOf(t, fieldsOWL)
	assert.Equal(t, "MID:100", cls[0].Identifier())
}

func TestExtract_IdentifierWildcardNamespace(t *testing.T) {
	// D2 declares Mendel_ID under a foreign namespace: the typed lookup
	// misses and the local-name fallback must pick it up.
	cls := classesOf(t, fieldsOWL)
	assert.Equal(t, "MID:200", cls[1].Identifier())
}

func TestExtract_LabelTrimmed(t *testing.T) {
	cls := classesOf(t, fieldsOWL)
	assert.Equal(t, "Type 2 Diabetes", cls[0].Label())
}

func TestExtract_LabelSentinel(t *testing.T) {
	cls := classesOf(t, fieldsOWL)
	assert.Equal(t, NoLabel, cls[1].Label())
}

func TestExtract_Synonyms(t *testing.T) {
	cls := classesOf(t, fieldsOWL)
	assert.Equal(t, []string{"T2D", "Adult-onset diabetes", "NIDDM"}, cls[0].Synonyms())
}

func TestExtract_CodesRoundTrip(t *testing.T) {
	cls := classesOf(t, fieldsOWL)
	assert.Equal(t, []string{"A:100", "B:200", "C:300"}, cls[0].Codes())
}

func TestExtract_ParentRefs(t *testing.T) {
	cls := classesOf(t, fieldsOWL)
	assert.Equal(t,
		[]string{"http://example.org/onto#Root", "http://example.org/onto#Other"},
		cls[0].ParentRefs())
}

func TestExtract_About(t *testing.T) {
	cls := classesOf(t, fieldsOWL)
	assert.Equal(t, "http://example.org/onto#D1", cls[0].About())
}

func TestExtract_Property(t *testing.T) {
	cls := classesOf(t, fieldsOWL)
	assert.Equal(t, "extra value", cls[0].Property("P90"))
	assert.Equal(t, "", cls[0].Property("Missing"))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"A:100", "B:200", "C:300"}, SplitList("A:100; B:200\nC:300"))
	assert.Nil(t, SplitList("  ;; \n "))
	assert.Nil(t, SplitList(""))
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "type_2_diabetes", Slug("Type 2 Diabetes"))
	assert.Equal(t, "x", Slug("  ***  "))
}
