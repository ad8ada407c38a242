package dedupe

// Pair is the grouping key for records whose mature and full sequences are
// both duplicated.
type Pair struct {
	Mature string
	Full   string
}

// PairGroup lists every record attached to one both-duplicated pair.
type PairGroup struct {
	Pair    Pair
	Entries []Entry
}

// Group lists every record sharing one duplicated sequence value.
type Group struct {
	Seq     string
	Entries []Entry
}

// Classification partitions all duplicated sequence values into three
// mutually exclusive categories.
type Classification struct {
	Total      int
	MatureDupe int
	FullDupe   int

	Both       []PairGroup
	MatureOnly []Group
	FullOnly   []Group
}

// Classify computes the duplicate partition from the two indices.
//
// A (mature, full) pair is both-duplicated when the mature value has two or
// more occurrences and the full value read from the same record does too.
// Mature-only and full-only groups are computed by subtracting the pair
// component values, so a sequence that appears in any both-duplicated pair
// is fully excluded from its single-key category.
func Classify(ix *Indexes) *Classification {
	c := &Classification{Total: ix.Total}

	matureDupes := ix.Mature.Duplicates()
	fullDupes := ix.Full.Duplicates()
	c.MatureDupe = len(matureDupes)
	c.FullDupe = len(fullDupes)

	fullDupeSet := make(map[string]bool, len(fullDupes))
	for _, seq := range fullDupes {
		fullDupeSet[seq] = true
	}

	pairIdx := make(map[Pair]int)
	for _, mature := range matureDupes {
		for _, e := range ix.Mature.Entries(mature) {
			full := e.Record.FullSeq
			if !fullDupeSet[full] {
				continue
			}
			p := Pair{Mature: mature, Full: full}
			i, ok := pairIdx[p]
			if !ok {
				i = len(c.Both)
				pairIdx[p] = i
				c.Both = append(c.Both, PairGroup{Pair: p})
			}
			c.Both[i].Entries = append(c.Both[i].Entries, e)
		}
	}

	bothMature := make(map[string]bool, len(c.Both))
	bothFull := make(map[string]bool, len(c.Both))
	for _, pg := range c.Both {
		bothMature[pg.Pair.Mature] = true
		bothFull[pg.Pair.Full] = true
	}

	for _, seq := range matureDupes {
		if bothMature[seq] {
			continue
		}
		c.MatureOnly = append(c.MatureOnly, Group{Seq: seq, Entries: ix.Mature.Entries(seq)})
	}
	for _, seq := range fullDupes {
		if bothFull[seq] {
			continue
		}
		c.FullOnly = append(c.FullOnly, Group{Seq: seq, Entries: ix.Full.Entries(seq)})
	}

	return c
}
