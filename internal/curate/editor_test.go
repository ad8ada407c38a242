package curate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndreasWz/hymenopteran-venom-protein-dataset-curation/internal/dataset"
	"github.com/AndreasWz/hymenopteran-venom-protein-dataset-curation/internal/predict"
)

func record(id, mature, full string) dataset.Record {
	return dataset.Record{UniqueID: id, MatureSeq: mature, FullSeq: full}
}

func TestTrimSignalPeptide_FullPresent(t *testing.T) {
	e := NewEditor(predict.CleavageSites{"X1": 3}, nil)

	rec, changed, entries := e.Edit(record("X1", "ABCDEFGH", "MKLABCDEFGH"))
	assert.True(t, changed)
	assert.Equal(t, "DEFGH", rec.MatureSeq)
	// An existing full sequence is never rewritten by the signal trim.
	assert.Equal(t, "MKLABCDEFGH", rec.FullSeq)
	assert.Contains(t, entries, "X1: signal peptide removed from mature_seq; full_seq untouched")
	assert.Contains(t, entries, "X1: old mature: ABCDEFGH")
	assert.Contains(t, entries, "X1: updated mature: DEFGH")
}

func TestTrimSignalPeptide_PromotesMissingFull(t *testing.T) {
	e := NewEditor(predict.CleavageSites{"X1": 3}, nil)

	rec, changed, entries := e.Edit(record("X1", "ABCDEFGH", ""))
	assert.True(t, changed)
	// The pre-trim mature sequence becomes the full sequence.
	assert.Equal(t, "ABCDEFGH", rec.FullSeq)
	assert.Equal(t, "DEFGH", rec.MatureSeq)
	assert.Contains(t, entries, "X1: no full_seq; promoted mature_seq to full_seq and updated mature_seq")
}

func TestTrimSignalPeptide_NoPrediction(t *testing.T) {
	e := NewEditor(predict.CleavageSites{}, nil)

	rec, changed, entries := e.Edit(record("X1", "ABCDEFGH", ""))
	assert.False(t, changed)
	assert.Equal(t, "ABCDEFGH", rec.MatureSeq)
	assert.Equal(t, "", rec.FullSeq)
	assert.Equal(t, []string{"X1: no signal peptide predicted; no changes made"}, entries)
}

func TestTrimSignalPeptide_OutOfBounds(t *testing.T) {
	e := NewEditor(predict.CleavageSites{"X1": 99}, nil)

	rec, changed, entries := e.Edit(record("X1", "ABCDEFGH", ""))
	assert.False(t, changed)
	assert.Equal(t, "ABCDEFGH", rec.MatureSeq)
	assert.Contains(t, entries, "X1: cleavage position 99 out of bounds; no changes made")
}

func TestExcisePropeptides_SingleSpan(t *testing.T) {
	e := NewEditor(nil, predict.Peptides{
		"X1": {{Start: 3, End: 6, Type: predict.TypePropeptide}},
	})

	rec, changed, entries := e.Edit(record("X1", "ABCDEFGHIJ", ""))
	assert.True(t, changed)
	assert.Equal(t, "ABGHIJ", rec.MatureSeq)
	// Promotion happens here too when the full sequence is absent.
	assert.Equal(t, "ABCDEFGHIJ", rec.FullSeq)
	assert.Contains(t, entries, "X1: mature sequence changed from ABCDEFGHIJ to ABGHIJ")
	assert.Contains(t, entries, "X1: full sequence was missing; set to original mature sequence ABCDEFGHIJ")
}

func TestExcisePropeptides_SequentialSpans(t *testing.T) {
	// Spans apply in predictor order against the current sequence: the
	// second span's coordinates are not re-offset after the first excision.
	e := NewEditor(nil, predict.Peptides{
		"X1": {
			{Start: 3, End: 6, Type: predict.TypePropeptide},
			{Start: 5, End: 8, Type: predict.TypePropeptide},
		},
	})

	rec, changed, _ := e.Edit(record("X1", "ABCDEFGHIJ", "FULL"))
	assert.True(t, changed)
	assert.Equal(t, "ABGH", rec.MatureSeq)
	assert.Equal(t, "FULL", rec.FullSeq)
}

func TestExcisePropeptides_NoSpans(t *testing.T) {
	e := NewEditor(nil, predict.Peptides{})

	rec, changed, entries := e.Edit(record("X1", "ABCDEFGH", "FULL"))
	assert.False(t, changed)
	assert.Equal(t, "ABCDEFGH", rec.MatureSeq)
	assert.Equal(t, []string{"X1: no changes"}, entries)
}

func TestEdit_BothStages(t *testing.T) {
	e := NewEditor(
		predict.CleavageSites{"X1": 2},
		predict.Peptides{"X1": {{Start: 1, End: 3, Type: predict.TypePropeptide}}},
	)

	// Signal trim first: ABCDEFGH -> CDEFGH (full promoted to ABCDEFGH),
	// then propeptide excision on the trimmed sequence: CDEFGH -> FGH.
	rec, changed, _ := e.Edit(record("X1", "ABCDEFGH", ""))
	assert.True(t, changed)
	assert.Equal(t, "FGH", rec.MatureSeq)
	assert.Equal(t, "ABCDEFGH", rec.FullSeq)
}

func TestEdit_Idempotent(t *testing.T) {
	e := NewEditor(predict.CleavageSites{"X1": 3}, nil)

	once, changed, _ := e.Edit(record("X1", "ABCDEFGH", ""))
	require.True(t, changed)

	// Re-running on the already-curated record trims again only if the
	// prediction still applies; here the full sequence is now set, so the
	// mature sequence shrinks but the full stays fixed.
	twice, _, _ := e.Edit(once)
	assert.Equal(t, "ABCDEFGH", twice.FullSeq)
}

func TestExciseSpan_Clamping(t *testing.T) {
	tests := []struct {
		name       string
		seq        string
		start, end int
		want       string
	}{
		{"interior", "ABCDEFGHIJ", 3, 6, "ABGHIJ"},
		{"prefix", "ABCDEFGHIJ", 1, 4, "EFGHIJ"},
		{"suffix", "ABCDEFGHIJ", 8, 10, "ABCDEFG"},
		{"end past length", "ABCDE", 3, 99, "AB"},
		{"start past length", "ABCDE", 9, 12, "ABCDE"},
		{"zero start", "ABCDE", 0, 2, "CDE"},
		{"negative end", "ABCDE", 2, -1, "AABCDE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exciseSpan(tt.seq, tt.start, tt.end))
		})
	}
}
