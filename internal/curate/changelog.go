package curate

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// ChangeLog accumulates human-readable audit entries for one pipeline run.
// It is append-only with a single writer and is flushed once at the end.
type ChangeLog struct {
	entries []string
}

// NewChangeLog returns an empty change log.
func NewChangeLog() *ChangeLog {
	return &ChangeLog{}
}

// Add appends entries to the log.
func (c *ChangeLog) Add(entries ...string) {
	c.entries = append(c.entries, entries...)
}

// Len returns the number of accumulated entries.
func (c *ChangeLog) Len() int {
	return len(c.entries)
}

// Entries returns the accumulated entries in append order.
func (c *ChangeLog) Entries() []string {
	return c.entries
}

// Flush writes all entries, one per line.
func (c *ChangeLog) Flush(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, e := range c.entries {
		if _, err := bw.WriteString(e + "\n"); err != nil {
			return fmt.Errorf("write change log: %w", err)
		}
	}
	return bw.Flush()
}

// FlushFile writes all entries to the given path.
func (c *ChangeLog) FlushFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create change log: %w", err)
	}
	defer f.Close()

	return c.Flush(f)
}
