// Package filter applies annotation-log decisions to the dataset stream.
package filter

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/AndreasWz/hymenopteran-venom-protein-dataset-curation/internal/annotlog"
)

// Stats summarizes one filter pass.
type Stats struct {
	Kept    int
	Removed int
}

// Apply streams the dataset and writes every line that survives the
// annotation-log decisions. Line numbering starts at 1 and includes the
// header, matching the review log's references. Lines not mentioned in any
// set are kept: absence of annotation is not a removal signal.
func Apply(r io.Reader, w io.Writer, sets *annotlog.Sets, treatUncertainAsKeep bool) (Stats, error) {
	var stats Stats

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	bw := bufio.NewWriter(w)

	line := 0
	for scanner.Scan() {
		line++
		switch {
		case sets.Keep[line], treatUncertainAsKeep && sets.Uncertain[line]:
			if _, err := bw.WriteString(scanner.Text() + "\n"); err != nil {
				return stats, fmt.Errorf("write filtered dataset: %w", err)
			}
			stats.Kept++
		case sets.Remove[line], !treatUncertainAsKeep && sets.Uncertain[line]:
			stats.Removed++
		default:
			if _, err := bw.WriteString(scanner.Text() + "\n"); err != nil {
				return stats, fmt.Errorf("write filtered dataset: %w", err)
			}
			stats.Kept++
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("read dataset: %w", err)
	}

	return stats, bw.Flush()
}

// ApplyFile runs Apply between two files, creating the output.
func ApplyFile(inputPath, outputPath string, sets *annotlog.Sets, treatUncertainAsKeep bool) (Stats, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return Stats{}, fmt.Errorf("open dataset: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return Stats{}, fmt.Errorf("create filtered dataset: %w", err)
	}
	defer out.Close()

	return Apply(in, out, sets, treatUncertainAsKeep)
}
