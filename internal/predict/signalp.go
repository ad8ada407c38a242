// Package predict parses external peptide-prediction results (SignalP 6.0
// and DeepPeptide JSON output) into identifier-keyed lookups.
package predict

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Prediction value required for an entry to be consumed.
const signalPeptidePrediction = "Signal Peptide (Sec/SPI)"

// CleavageSites maps Unique_ID to the predicted signal peptide cleavage
// offset (number of leading residues to remove from the mature sequence).
type CleavageSites map[string]int

// CleavageSite returns the cleavage offset for the given identifier.
func (c CleavageSites) CleavageSite(id string) (int, bool) {
	pos, ok := c[id]
	return pos, ok
}

type signalPFile struct {
	Sequences map[string]signalPEntry `json:"SEQUENCES"`
}

type signalPEntry struct {
	Prediction string `json:"Prediction"`
	CSPos      string `json:"CS_pos"`
}

// ParseSignalP reads a SignalP 6.0 JSON result. Only entries predicted as
// "Signal Peptide (Sec/SPI)" with a parseable cleavage position are kept;
// entries with a missing or malformed CS_pos are skipped.
func ParseSignalP(r io.Reader) (CleavageSites, error) {
	var file signalPFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode signalp output: %w", err)
	}

	sites := make(CleavageSites)
	for id, entry := range file.Sequences {
		if entry.Prediction != signalPeptidePrediction {
			continue
		}
		pos, ok := parseCleavagePos(entry.CSPos)
		if !ok {
			continue
		}
		sites[id] = pos
	}

	return sites, nil
}

// LoadSignalP parses a SignalP 6.0 JSON file from disk.
func LoadSignalP(path string) (CleavageSites, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open signalp output: %w", err)
	}
	defer f.Close()

	return ParseSignalP(f)
}

// parseCleavagePos extracts the cleavage site end position from a CS_pos
// description such as "Cleavage site between pos. 22 and 23. Probability: 0.98".
func parseCleavagePos(csPos string) (int, bool) {
	_, rest, found := strings.Cut(csPos, "between pos. ")
	if !found {
		return 0, false
	}
	rest, _, _ = strings.Cut(rest, " and")
	rest, _, _ = strings.Cut(rest, ".")

	pos, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil {
		return 0, false
	}
	return pos, true
}
