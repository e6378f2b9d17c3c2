package tabular

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mendelkb/owlkit/internal/mutate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTerms(t *testing.T) {
	assert.Equal(t,
		[]string{"diabetes", "TB", "A15.2"},
		ParseTerms(" diabetes || TB||A15.2 "))
	assert.Nil(t, ParseTerms(" || || "))
	assert.Equal(t, []string{"single"}, ParseTerms("single"))
}

func TestReadTerms(t *testing.T) {
	in := strings.NewReader("Values\ndiabetes\n\n TB \n")
	terms, err := ReadTerms(in)
	require.NoError(t, err)
	assert.Equal(t, []string{"diabetes", "TB"}, terms)
}

func TestReadTerms_HeaderCaseInsensitive(t *testing.T) {
	terms, err := ReadTerms(strings.NewReader("values\nx\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, terms)
}

func TestReadTerms_MissingHeader(t *testing.T) {
	_, err := ReadTerms(strings.NewReader("Terms\nx\n"))
	assert.Error(t, err)
}

func TestReadTerms_EmptyInput(t *testing.T) {
	_, err := ReadTerms(strings.NewReader(""))
	assert.Error(t, err)
}

func TestReadFieldEdits(t *testing.T) {
	in := strings.NewReader("Mendel_ID,Values\nMID:1,\"A:1; B:2\"\nMID:2,C:3||D:4\n")
	edits, err := ReadFieldEdits(in)
	require.NoError(t, err)
	assert.Equal(t, []mutate.FieldEdit{
		{ID: "MID:1", Values: []string{"A:1", "B:2"}},
		{ID: "MID:2", Values: []string{"C:3", "D:4"}},
	}, edits)
}

func TestReadFieldEdits_MissingColumn(t *testing.T) {
	_, err := ReadFieldEdits(strings.NewReader("Mendel_ID\nMID:1\n"))
	assert.Error(t, err)

	_, err = ReadFieldEdits(strings.NewReader("Values\nA:1\n"))
	assert.Error(t, err)
}

func TestReadNewClasses(t *testing.T) {
	in := strings.NewReader(
		"Label,Parent,Mendel_ID,Codes,Synonyms\n" +
			"New Thing,MID:1,MID:3,C:1,NT; New thing\n")
	rows, err := ReadNewClasses(in)
	require.NoError(t, err)
	assert.Equal(t, []mutate.NewClass{{
		Label:    "New Thing",
		Parent:   "MID:1",
		ID:       "MID:3",
		Codes:    []string{"C:1"},
		Synonyms: []string{"NT", "New thing"},
	}}, rows)
}

func TestReadNewClasses_OptionalColumnsAbsent(t *testing.T) {
	rows, err := ReadNewClasses(strings.NewReader("Label\nBare\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Bare", rows[0].Label)
	assert.Empty(t, rows[0].Parent)
	assert.Empty(t, rows[0].Codes)
}

func TestReadNewClasses_LabelRequired(t *testing.T) {
	_, err := ReadNewClasses(strings.NewReader("Parent\nMID:1\n"))
	assert.Error(t, err)
}

func TestReadNewClasses_RaggedRow(t *testing.T) {
	rows, err := ReadNewClasses(strings.NewReader("Label,Parent\nShort\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Short", rows[0].Label)
	assert.Empty(t, rows[0].Parent)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, Table{
		Columns: []string{"Mendel_ID", "Class_Label"},
		Rows: [][]string{
			{"MID:1", "Alpha"},
			{"MID:2", "Beta, the second"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t,
		"Mendel_ID,Class_Label\nMID:1,Alpha\nMID:2,\"Beta, the second\"\n",
		buf.String())
}
