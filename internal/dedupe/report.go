package dedupe

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// WriteReport writes the duplicate report with its fixed section order:
// header with metadata, summary counts, both-duplicated groups, mature-only
// groups, full-only groups. Groups appear in index insertion order.
func WriteReport(w io.Writer, c *Classification, now time.Time) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Duplicate Sequences Report\n")
	fmt.Fprintf(bw, "Generated: %s\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(bw, "%s\n\n", strings.Repeat("=", 50))

	fmt.Fprintf(bw, "Summary Statistics:\n")
	fmt.Fprintf(bw, "Total sequences processed: %d\n", c.Total)
	fmt.Fprintf(bw, "Duplicate mature sequences found: %d\n", c.MatureDupe)
	fmt.Fprintf(bw, "Duplicate full sequences found: %d\n", c.FullDupe)
	fmt.Fprintf(bw, "Entries with both sequences duplicated: %d\n\n", len(c.Both))

	fmt.Fprintf(bw, "Entries with Both Sequences Duplicated:\n%s\n\n", strings.Repeat("=", 40))
	for _, pg := range c.Both {
		fmt.Fprintf(bw, "Mature Sequence (%d bp): %s\n", len(pg.Pair.Mature), pg.Pair.Mature)
		fmt.Fprintf(bw, "Full Sequence (%d bp): %s\n", len(pg.Pair.Full), pg.Pair.Full)
		writeEntries(bw, pg.Entries)
	}

	fmt.Fprintf(bw, "\nDuplicates in Mature Sequences Only:\n%s\n\n", strings.Repeat("=", 35))
	for _, g := range c.MatureOnly {
		fmt.Fprintf(bw, "Sequence (%d bp): %s\n", len(g.Seq), g.Seq)
		writeEntries(bw, g.Entries)
	}

	fmt.Fprintf(bw, "\nDuplicates in Full Sequences Only:\n%s\n\n", strings.Repeat("=", 35))
	for _, g := range c.FullOnly {
		fmt.Fprintf(bw, "Sequence (%d bp): %s\n", len(g.Seq), g.Seq)
		writeEntries(bw, g.Entries)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write duplicate report: %w", err)
	}
	return nil
}

func writeEntries(w io.Writer, entries []Entry) {
	fmt.Fprintf(w, "Found in %d entries:\n", len(entries))
	for _, e := range entries {
		fmt.Fprintf(w, "Line %d: %s\n", e.Line, e.Raw)
	}
	fmt.Fprintln(w)
}
