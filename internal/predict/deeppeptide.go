package predict

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// TypePropeptide is the span type consumed by propeptide excision.
const TypePropeptide = "Propeptide"

// Span is one predicted peptide region. Start is 1-based inclusive, End is
// exclusive after conversion to 0-based indexing.
type Span struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Type  string `json:"type"`
}

// Peptides maps Unique_ID to its predicted peptide spans, in the order the
// predictor supplied them.
type Peptides map[string][]Span

// Propeptides returns the spans typed "Propeptide" for the identifier,
// preserving supplied order.
func (p Peptides) Propeptides(id string) []Span {
	var spans []Span
	for _, sp := range p[id] {
		if sp.Type == TypePropeptide {
			spans = append(spans, sp)
		}
	}
	return spans
}

type deepPeptideFile struct {
	Predictions map[string]deepPeptideEntry `json:"PREDICTIONS"`
}

type deepPeptideEntry struct {
	Peptides []Span `json:"peptides"`
}

// ParseDeepPeptide reads a DeepPeptide JSON result. Prediction keys carry a
// FASTA-style ">" prefix which is stripped so lookups use the bare Unique_ID.
func ParseDeepPeptide(r io.Reader) (Peptides, error) {
	var file deepPeptideFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode deeppeptide output: %w", err)
	}

	peptides := make(Peptides)
	for key, entry := range file.Predictions {
		if len(entry.Peptides) == 0 {
			continue
		}
		id := strings.TrimPrefix(key, ">")
		peptides[id] = entry.Peptides
	}

	return peptides, nil
}

// LoadDeepPeptide parses a DeepPeptide JSON file from disk.
func LoadDeepPeptide(path string) (Peptides, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open deeppeptide output: %w", err)
	}
	defer f.Close()

	return ParseDeepPeptide(f)
}
