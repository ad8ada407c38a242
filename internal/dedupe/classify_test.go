package dedupe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndreasWz/hymenopteran-venom-protein-dataset-curation/internal/dataset"
)

const testHeader = "Unique_ID;Study_Name;Venom_Family_Subtype;Venom_Family_Type;Hymenoptera_Group;Species;Species_ID;Uniprot_ID;DB;mature_seq;full_seq"

func testRow(id, mature, full string) string {
	return strings.Join([]string{
		id, "Study1", "Melittin", "Peptide", "Bees", "Apis mellifera", "7460", "P01501", "UniProt", mature, full,
	}, ";")
}

func buildIndexes(t *testing.T, rows ...string) *Indexes {
	t.Helper()

	input := testHeader + "\n" + strings.Join(rows, "\n") + "\n"
	p, err := dataset.NewParserFromReader(strings.NewReader(input))
	require.NoError(t, err)

	ix, err := BuildIndexes(p)
	require.NoError(t, err)
	return ix
}

func TestClassify_BothDuplicatedGrouping(t *testing.T) {
	// Two records share both sequences; a third shares only the mature one.
	ix := buildIndexes(t,
		testRow("X1", "PEP1", "FULL1"),
		testRow("X2", "PEP1", "FULL1"),
		testRow("X3", "PEP1", "FULL2"),
	)

	c := Classify(ix)

	require.Len(t, c.Both, 1)
	assert.Equal(t, Pair{Mature: "PEP1", Full: "FULL1"}, c.Both[0].Pair)
	require.Len(t, c.Both[0].Entries, 2)
	assert.Equal(t, 2, c.Both[0].Entries[0].Line)
	assert.Equal(t, 3, c.Both[0].Entries[1].Line)

	// PEP1 is part of a both-duplicated pair, so it must not be reported
	// as mature-only even though X3 is not part of that pair.
	assert.Empty(t, c.MatureOnly)
	assert.Empty(t, c.FullOnly)
}

func TestClassify_MatureOnlyAndFullOnly(t *testing.T) {
	ix := buildIndexes(t,
		testRow("X1", "PEPA", "FULLA"),
		testRow("X2", "PEPA", "FULLB"),
		testRow("X3", "PEPB", "FULLC"),
		testRow("X4", "PEPC", "FULLC"),
	)

	c := Classify(ix)

	assert.Empty(t, c.Both)

	require.Len(t, c.MatureOnly, 1)
	assert.Equal(t, "PEPA", c.MatureOnly[0].Seq)
	require.Len(t, c.MatureOnly[0].Entries, 2)

	require.Len(t, c.FullOnly, 1)
	assert.Equal(t, "FULLC", c.FullOnly[0].Seq)
	require.Len(t, c.FullOnly[0].Entries, 2)
}

func TestClassify_PartitionCompleteness(t *testing.T) {
	ix := buildIndexes(t,
		testRow("X1", "PEP1", "FULL1"),
		testRow("X2", "PEP1", "FULL1"),
		testRow("X3", "PEP2", "FULL2"),
		testRow("X4", "PEP2", "FULL3"),
		testRow("X5", "PEP3", "FULL4"),
		testRow("X6", "PEP4", "FULL4"),
		testRow("X7", "PEP5", "FULL5"),
	)

	c := Classify(ix)

	// Collect category membership per sequence value.
	matureSeen := make(map[string]int)
	fullSeen := make(map[string]int)
	for _, pg := range c.Both {
		matureSeen[pg.Pair.Mature]++
		fullSeen[pg.Pair.Full]++
	}
	for _, g := range c.MatureOnly {
		matureSeen[g.Seq]++
	}
	for _, g := range c.FullOnly {
		fullSeen[g.Seq]++
	}

	// Every duplicated value is classified exactly once.
	for _, seq := range ix.Mature.Duplicates() {
		assert.Equal(t, 1, matureSeen[seq], "mature %s", seq)
	}
	for _, seq := range ix.Full.Duplicates() {
		assert.Equal(t, 1, fullSeen[seq], "full %s", seq)
	}

	// Unique values are never reported.
	assert.NotContains(t, matureSeen, "PEP5")
	assert.NotContains(t, fullSeen, "FULL5")
}

func TestBuildIndexes_IgnoresEmptySequences(t *testing.T) {
	ix := buildIndexes(t,
		testRow("X1", "", "FULL1"),
		testRow("X2", "", "FULL1"),
		testRow("X3", "   ", "FULL2"),
	)

	assert.Equal(t, 3, ix.Total)
	assert.Empty(t, ix.Mature.Duplicates())
	assert.Equal(t, []string{"FULL1"}, ix.Full.Duplicates())
}

func TestIndexInsertionOrder(t *testing.T) {
	ix := buildIndexes(t,
		testRow("X1", "PEPB", "F1"),
		testRow("X2", "PEPA", "F2"),
		testRow("X3", "PEPB", "F3"),
		testRow("X4", "PEPA", "F4"),
	)

	// Duplicates are reported in first-seen order, not sorted.
	assert.Equal(t, []string{"PEPB", "PEPA"}, ix.Mature.Duplicates())
}
