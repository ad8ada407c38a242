package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHeader = "Unique_ID;Study_Name;Venom_Family_Subtype;Venom_Family_Type;Hymenoptera_Group;Species;Species_ID;Uniprot_ID;DB;mature_seq;full_seq"

// testRow builds a dataset line with the given id and sequences.
func testRow(id, mature, full string) string {
	return strings.Join([]string{
		id, "Study1", "Melittin", "Peptide", "Bees", "Apis mellifera", "7460", "P01501", "UniProt", mature, full,
	}, ";")
}

func TestParserStripsBOM(t *testing.T) {
	input := "\ufeff" + testHeader + "\n" + testRow("X1", "PEP", "FULL") + "\n"

	p, err := NewParserFromReader(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, testHeader, p.Header())
}

func TestParserLineNumbersStartAfterHeader(t *testing.T) {
	input := testHeader + "\n" +
		testRow("X1", "PEP1", "FULL1") + "\n" +
		testRow("X2", "PEP2", "FULL2") + "\n"

	p, err := NewParserFromReader(strings.NewReader(input))
	require.NoError(t, err)

	row, err := p.Next()
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, 2, row.Line)
	assert.Equal(t, "X1", row.Record.UniqueID)
	assert.Equal(t, "PEP1", row.Record.MatureSeq)
	assert.Equal(t, "FULL1", row.Record.FullSeq)

	row, err = p.Next()
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, 3, row.Line)

	row, err = p.Next()
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestParserSkipsShortRows(t *testing.T) {
	input := testHeader + "\n" +
		"too;few;fields\n" +
		testRow("X2", "PEP2", "FULL2") + "\n"

	p, err := NewParserFromReader(strings.NewReader(input))
	require.NoError(t, err)

	row, err := p.Next()
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, "X2", row.Record.UniqueID)
	// The skipped row still advanced the physical line number.
	assert.Equal(t, 3, row.Line)
	assert.Equal(t, 1, p.Skipped())
}

func TestParserEmptyInput(t *testing.T) {
	_, err := NewParserFromReader(strings.NewReader(""))
	require.Error(t, err)

	var perr *ParseError
	assert.ErrorAs(t, err, &perr)
}

func TestParserCRLF(t *testing.T) {
	input := testHeader + "\r\n" + testRow("X1", "PEP", "") + "\r\n"

	p, err := NewParserFromReader(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, testHeader, p.Header())

	row, err := p.Next()
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, "PEP", row.Record.MatureSeq)
	assert.Equal(t, "", row.Record.FullSeq)
}

func TestRecordFieldsRoundTrip(t *testing.T) {
	raw := testRow("X1", "PEP", "FULL")
	rec := RecordFromFields(strings.Split(raw, Delimiter))

	assert.Equal(t, "X1", rec.UniqueID)
	assert.Equal(t, "Apis mellifera", rec.Species)
	assert.Equal(t, "P01501", rec.UniprotID)
	assert.Equal(t, raw, rec.Join())
}
