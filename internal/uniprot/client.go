// Package uniprot fetches protein sequences from the UniProt REST API to
// fill in dataset records that carry an accession but no sequence.
package uniprot

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/AndreasWz/hymenopteran-venom-protein-dataset-curation/internal/dataset"
)

// DefaultBaseURL is the UniProtKB REST endpoint.
const DefaultBaseURL = "https://rest.uniprot.org/uniprotkb"

// Client fetches sequences from UniProt.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client for the public UniProt endpoint.
func NewClient() *Client {
	return &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     zap.NewNop(),
	}
}

// SetBaseURL overrides the endpoint, mainly for tests.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = strings.TrimRight(url, "/")
}

// SetLogger sets the logger for fetch diagnostics.
func (c *Client) SetLogger(l *zap.Logger) {
	c.logger = l
}

// FetchSequence retrieves the FASTA entry for a UniProt accession and
// returns the bare sequence with the header and line breaks stripped.
func (c *Client) FetchSequence(accession string) (string, error) {
	url := fmt.Sprintf("%s/%s.fasta", c.baseURL, accession)

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return "", fmt.Errorf("fetch uniprot sequence %s: %w", accession, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch uniprot sequence %s: HTTP %s", accession, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read uniprot response %s: %w", accession, err)
	}

	var sb strings.Builder
	for _, line := range strings.Split(string(body), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, ">") {
			continue
		}
		sb.WriteString(line)
	}

	seq := sb.String()
	if seq == "" {
		return "", fmt.Errorf("fetch uniprot sequence %s: empty sequence", accession)
	}
	return seq, nil
}

// Stats summarizes one fetch pass.
type Stats struct {
	Processed int
	Missing   int
	Fetched   int
}

// FillMissingSequences streams the dataset and, for every record where both
// sequences are empty but a UniProt accession is present, fetches the
// precursor sequence and writes it into full_seq only; mature_seq stays
// empty. Only those records are emitted. Fetch failures are logged and the
// record is written unchanged.
func (c *Client) FillMissingSequences(p *dataset.Parser, w *dataset.Writer) (Stats, error) {
	var stats Stats

	if err := w.WriteHeader(); err != nil {
		return stats, fmt.Errorf("write header: %w", err)
	}

	for {
		row, err := p.Next()
		if err != nil {
			return stats, err
		}
		if row == nil {
			break
		}
		stats.Processed++

		rec := row.Record
		if strings.TrimSpace(rec.MatureSeq) != "" || strings.TrimSpace(rec.FullSeq) != "" {
			continue
		}

		accession := strings.TrimSpace(rec.UniprotID)
		if accession == "" {
			continue
		}
		stats.Missing++

		seq, err := c.FetchSequence(accession)
		if err != nil {
			c.logger.Warn("could not fetch sequence",
				zap.String("uniprot_id", accession),
				zap.Int("line", row.Line),
				zap.Error(err))
		} else {
			rec.FullSeq = seq
			stats.Fetched++
			c.logger.Info("fetched sequence",
				zap.String("uniprot_id", accession),
				zap.Int("length", len(seq)))
		}

		if err := w.WriteRecord(rec); err != nil {
			return stats, fmt.Errorf("write record: %w", err)
		}
	}

	return stats, w.Flush()
}
