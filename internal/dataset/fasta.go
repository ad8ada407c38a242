package dataset

import (
	"bufio"
	"fmt"
	"io"
)

// WriteFASTA streams records from the parser and writes one FASTA entry per
// record with a non-empty mature sequence, using the Unique_ID as header.
// Returns the number of entries written.
func WriteFASTA(p *Parser, w io.Writer) (int, error) {
	bw := bufio.NewWriter(w)
	count := 0

	for {
		row, err := p.Next()
		if err != nil {
			return count, err
		}
		if row == nil {
			break
		}

		if row.Record.MatureSeq == "" {
			continue
		}

		if _, err := fmt.Fprintf(bw, ">%s\n%s\n", row.Record.UniqueID, row.Record.MatureSeq); err != nil {
			return count, fmt.Errorf("write fasta entry: %w", err)
		}
		count++
	}

	return count, bw.Flush()
}
