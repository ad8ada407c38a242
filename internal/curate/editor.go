// Package curate applies prediction-driven edits to dataset records:
// signal peptide trimming and propeptide excision, with promotion of the
// mature sequence to the full sequence when the latter is absent.
package curate

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/AndreasWz/hymenopteran-venom-protein-dataset-curation/internal/dataset"
	"github.com/AndreasWz/hymenopteran-venom-protein-dataset-curation/internal/predict"
)

// CleavageLookup resolves a record identifier to a signal peptide cleavage
// offset. The second return value is false when no prediction exists.
type CleavageLookup interface {
	CleavageSite(id string) (int, bool)
}

// PeptideLookup resolves a record identifier to its predicted propeptide
// spans, in the order the predictor supplied them.
type PeptideLookup interface {
	Propeptides(id string) []predict.Span
}

// Editor edits records using externally computed predictions. A nil lookup
// disables the corresponding stage.
type Editor struct {
	cleavage CleavageLookup
	peptides PeptideLookup
	logger   *zap.Logger
}

// NewEditor creates an editor with the given prediction lookups.
func NewEditor(cleavage CleavageLookup, peptides PeptideLookup) *Editor {
	return &Editor{
		cleavage: cleavage,
		peptides: peptides,
		logger:   zap.NewNop(),
	}
}

// SetLogger sets the logger for per-record diagnostics.
func (e *Editor) SetLogger(l *zap.Logger) {
	e.logger = l
}

// Edit runs the enabled stages on one record, in order: signal peptide trim,
// then propeptide excision. Returns the edited record, whether anything
// changed, and the human-readable change log entries for this record.
func (e *Editor) Edit(rec dataset.Record) (dataset.Record, bool, []string) {
	var entries []string
	changed := false

	if e.cleavage != nil {
		var stageChanged bool
		var stage []string
		rec, stageChanged, stage = e.trimSignalPeptide(rec)
		changed = changed || stageChanged
		entries = append(entries, stage...)
	}

	if e.peptides != nil {
		var stageChanged bool
		var stage []string
		rec, stageChanged, stage = e.excisePropeptides(rec)
		changed = changed || stageChanged
		entries = append(entries, stage...)
	}

	if len(entries) == 0 {
		entries = append(entries, fmt.Sprintf("%s: no changes", rec.UniqueID))
	}

	return rec, changed, entries
}

// trimSignalPeptide removes the predicted signal peptide prefix from the
// mature sequence. When the full sequence is absent it is first promoted to
// the pre-trim mature sequence.
func (e *Editor) trimSignalPeptide(rec dataset.Record) (dataset.Record, bool, []string) {
	id := rec.UniqueID

	pos, ok := e.cleavage.CleavageSite(id)
	if !ok {
		e.logger.Debug("no signal peptide prediction", zap.String("id", id))
		return rec, false, []string{fmt.Sprintf("%s: no signal peptide predicted; no changes made", id)}
	}

	if pos < 0 || pos > len(rec.MatureSeq) {
		e.logger.Warn("cleavage position out of bounds",
			zap.String("id", id),
			zap.Int("pos", pos),
			zap.Int("mature_len", len(rec.MatureSeq)))
		return rec, false, []string{fmt.Sprintf("%s: cleavage position %d out of bounds; no changes made", id, pos)}
	}

	old := rec.MatureSeq
	var entries []string

	if rec.FullSeq != "" {
		rec.MatureSeq = old[pos:]
		entries = append(entries,
			fmt.Sprintf("%s: signal peptide removed from mature_seq; full_seq untouched", id))
	} else {
		rec.FullSeq = old
		rec.MatureSeq = old[pos:]
		entries = append(entries,
			fmt.Sprintf("%s: no full_seq; promoted mature_seq to full_seq and updated mature_seq", id))
	}
	entries = append(entries,
		fmt.Sprintf("%s: old mature: %s", id, old),
		fmt.Sprintf("%s: updated mature: %s", id, rec.MatureSeq))

	return rec, true, entries
}

// excisePropeptides removes every predicted propeptide span from the mature
// sequence. Spans are applied in the order supplied, without re-offsetting
// after an earlier excision shifts indices. Entries are produced only when
// the sequence actually changed.
func (e *Editor) excisePropeptides(rec dataset.Record) (dataset.Record, bool, []string) {
	id := rec.UniqueID

	spans := e.peptides.Propeptides(id)
	if len(spans) == 0 {
		e.logger.Debug("no propeptide prediction", zap.String("id", id))
		return rec, false, nil
	}

	old := rec.MatureSeq
	seq := old
	for _, sp := range spans {
		seq = exciseSpan(seq, sp.Start, sp.End)
	}

	if seq == old {
		return rec, false, nil
	}

	rec.MatureSeq = seq
	entries := []string{
		fmt.Sprintf("%s: mature sequence changed from %s to %s", id, old, seq),
	}

	if rec.FullSeq == "" {
		rec.FullSeq = old
		entries = append(entries,
			fmt.Sprintf("%s: full sequence was missing; set to original mature sequence %s", id, old))
	}

	return rec, true, entries
}

// exciseSpan removes [start-1, end) from seq, with start 1-based inclusive
// and end exclusive. Indices outside the sequence are clamped the way
// slicing in the upstream predictor tooling behaves.
func exciseSpan(seq string, start, end int) string {
	lo := start - 1
	if lo < 0 {
		lo = 0
	}
	if lo > len(seq) {
		lo = len(seq)
	}
	if end < 0 {
		end = 0
	}
	if end > len(seq) {
		end = len(seq)
	}
	return seq[:lo] + seq[end:]
}
