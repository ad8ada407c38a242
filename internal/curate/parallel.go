package curate

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/AndreasWz/hymenopteran-venom-protein-dataset-curation/internal/dataset"
)

// WorkItem holds a parsed record ready for editing.
type WorkItem struct {
	Seq    int
	Line   int
	Record dataset.Record
}

// WorkResult holds the edit output for a single record.
type WorkResult struct {
	Seq     int
	Line    int
	Record  dataset.Record
	Changed bool
	Log     []string
}

// ParallelEdit edits work items using a pool of workers. Each record's edit
// is independent, so records can be transformed concurrently; results are
// sent in arrival order. Use OrderedCollect to consume them in sequence
// order so outputs and audit entries keep the original line order.
// If workers is 0, runtime.NumCPU() is used.
func (e *Editor) ParallelEdit(items <-chan WorkItem, workers int) <-chan WorkResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make(chan WorkResult, 2*workers)

	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		go func() {
			defer wg.Done()
			for item := range items {
				rec, changed, entries := e.Edit(item.Record)
				results <- WorkResult{
					Seq:     item.Seq,
					Line:    item.Line,
					Record:  rec,
					Changed: changed,
					Log:     entries,
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

// OrderedCollect calls fn for each result in sequence-number order,
// buffering out-of-order results until the next expected sequence number
// arrives. Blocks until the results channel is closed.
func OrderedCollect(results <-chan WorkResult, fn func(WorkResult) error) error {
	pending := make(map[int]WorkResult)
	nextSeq := 0

	for r := range results {
		pending[r.Seq] = r

		for {
			rr, ok := pending[nextSeq]
			if !ok {
				break
			}
			delete(pending, nextSeq)
			nextSeq++
			if err := fn(rr); err != nil {
				// Drain remaining results to unblock workers.
				for range results {
				}
				return err
			}
		}
	}

	return nil
}

// EditAll streams the dataset through the editor and writes the curated
// records and change log entries in original line order.
func (e *Editor) EditAll(p *dataset.Parser, w *dataset.Writer, log *ChangeLog, workers int) error {
	items := make(chan WorkItem, 2*runtime.NumCPU())
	var parseErr error

	go func() {
		defer close(items)
		seq := 0
		for {
			row, err := p.Next()
			if err != nil {
				parseErr = fmt.Errorf("read record: %w", err)
				return
			}
			if row == nil {
				return
			}
			items <- WorkItem{Seq: seq, Line: row.Line, Record: row.Record}
			seq++
		}
	}()

	results := e.ParallelEdit(items, workers)

	if err := OrderedCollect(results, func(r WorkResult) error {
		if err := w.WriteRecord(r.Record); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
		log.Add(r.Log...)
		return nil
	}); err != nil {
		return err
	}

	if parseErr != nil {
		return parseErr
	}

	return w.Flush()
}
