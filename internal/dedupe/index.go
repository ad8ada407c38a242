// Package dedupe detects exact duplicate sequences in the dataset and
// classifies them into disjoint groups for the duplicate report.
package dedupe

import (
	"strings"

	"github.com/AndreasWz/hymenopteran-venom-protein-dataset-curation/internal/dataset"
)

// Entry is one occurrence of a sequence value in the dataset.
type Entry struct {
	Line   int
	Raw    string
	Record dataset.Record
}

// Index maps a sequence string to every entry that carries it, preserving
// the order in which sequence values were first seen.
type Index struct {
	entries map[string][]Entry
	order   []string
}

// NewIndex creates an empty sequence index.
func NewIndex() *Index {
	return &Index{entries: make(map[string][]Entry)}
}

// Add records an occurrence of seq. Empty sequences must be filtered out
// by the caller before indexing.
func (x *Index) Add(seq string, e Entry) {
	if _, ok := x.entries[seq]; !ok {
		x.order = append(x.order, seq)
	}
	x.entries[seq] = append(x.entries[seq], e)
}

// Entries returns all occurrences of seq.
func (x *Index) Entries(seq string) []Entry {
	return x.entries[seq]
}

// Duplicates returns, in insertion order, every sequence value with two or
// more occurrences. A value seen only once is not a duplicate.
func (x *Index) Duplicates() []string {
	var dupes []string
	for _, seq := range x.order {
		if len(x.entries[seq]) > 1 {
			dupes = append(dupes, seq)
		}
	}
	return dupes
}

// Indexes holds the two independent sequence indices plus scan statistics.
type Indexes struct {
	Mature *Index
	Full   *Index
	Total  int
}

// BuildIndexes streams the dataset once and indexes every non-empty mature
// and full sequence. A record may appear in both indices.
func BuildIndexes(p *dataset.Parser) (*Indexes, error) {
	ix := &Indexes{
		Mature: NewIndex(),
		Full:   NewIndex(),
	}

	for {
		row, err := p.Next()
		if err != nil {
			return nil, err
		}
		if row == nil {
			break
		}
		ix.Total++

		e := Entry{Line: row.Line, Raw: row.Raw, Record: row.Record}
		if strings.TrimSpace(row.Record.MatureSeq) != "" {
			ix.Mature.Add(row.Record.MatureSeq, e)
		}
		if strings.TrimSpace(row.Record.FullSeq) != "" {
			ix.Full.Add(row.Record.FullSeq, e)
		}
	}

	return ix, nil
}
