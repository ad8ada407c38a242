package duckdb

import (
	"fmt"

	"github.com/AndreasWz/hymenopteran-venom-protein-dataset-curation/internal/predict"
)

// LoadCleavageSites replaces the stored signal peptide predictions.
// Reloading is idempotent: existing rows are cleared first.
func (s *Store) LoadCleavageSites(sites predict.CleavageSites) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin cleavage load: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM cleavage_sites`); err != nil {
		return fmt.Errorf("clear cleavage sites: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO cleavage_sites (unique_id, cut_pos) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare cleavage insert: %w", err)
	}
	defer stmt.Close()

	for id, pos := range sites {
		if _, err := stmt.Exec(id, pos); err != nil {
			return fmt.Errorf("insert cleavage site %s: %w", id, err)
		}
	}

	return tx.Commit()
}

// LoadPeptides replaces the stored peptide span predictions, preserving the
// supplied span order per identifier via the ordinal column.
func (s *Store) LoadPeptides(peptides predict.Peptides) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin peptide load: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM peptides`); err != nil {
		return fmt.Errorf("clear peptides: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO peptides (unique_id, ordinal, start_pos, end_pos, peptide_type) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare peptide insert: %w", err)
	}
	defer stmt.Close()

	for id, spans := range peptides {
		for i, sp := range spans {
			if _, err := stmt.Exec(id, i, sp.Start, sp.End, sp.Type); err != nil {
				return fmt.Errorf("insert peptide span %s[%d]: %w", id, i, err)
			}
		}
	}

	return tx.Commit()
}

// CleavageSite returns the stored cleavage offset for the identifier.
// Satisfies curate.CleavageLookup.
func (s *Store) CleavageSite(id string) (int, bool) {
	var pos int
	err := s.db.QueryRow(`SELECT cut_pos FROM cleavage_sites WHERE unique_id = ?`, id).Scan(&pos)
	if err != nil {
		return 0, false
	}
	return pos, true
}

// Propeptides returns the stored spans typed "Propeptide" for the
// identifier, in supplied order. Satisfies curate.PeptideLookup.
func (s *Store) Propeptides(id string) []predict.Span {
	rows, err := s.db.Query(
		`SELECT start_pos, end_pos, peptide_type FROM peptides WHERE unique_id = ? AND peptide_type = ? ORDER BY ordinal`,
		id, predict.TypePropeptide)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var spans []predict.Span
	for rows.Next() {
		var sp predict.Span
		if err := rows.Scan(&sp.Start, &sp.End, &sp.Type); err != nil {
			return nil
		}
		spans = append(spans, sp)
	}
	if rows.Err() != nil {
		return nil
	}
	return spans
}

// CleavageCount returns the number of stored cleavage sites.
func (s *Store) CleavageCount() (int64, error) {
	var n int64
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM cleavage_sites`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count cleavage sites: %w", err)
	}
	return n, nil
}

// PeptideCount returns the number of stored peptide spans.
func (s *Store) PeptideCount() (int64, error) {
	var n int64
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM peptides`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count peptides: %w", err)
	}
	return n, nil
}
