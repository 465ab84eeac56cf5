package tables

import (
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Provider supplies the raw rows of a named rate table in source order.
type Provider interface {
	Rows(table string) ([]Row, error)
}

// SQLStore reads rate tables out of the relational store. Table names are
// validated against the known master list; values are read back as text so
// that the Row contract matches the CSV path exactly.
type SQLStore struct {
	DB *sql.DB
}

func (s *SQLStore) Rows(table string) ([]Row, error) {
	if !KnownTable(table) {
		return nil, fmt.Errorf("unknown rate table %q", table)
	}

	rows, err := s.DB.Query(`SELECT * FROM ` + quoteIdent(table))
	if err != nil {
		return nil, fmt.Errorf("query table %s: %w", table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns of %s: %w", table, err)
	}

	out := make([]Row, 0)
	for rows.Next() {
		vals := make([]sql.NullString, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row of %s: %w", table, err)
		}
		row := make(Row, len(cols))
		for i, c := range cols {
			if c == "id" {
				continue
			}
			row[c] = vals[i].String
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", table, err)
	}
	return out, nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// CSVDir reads rate tables from delimited-text exports, one <table>.csv per
// table. The first line is the header; header names are kept verbatim.
type CSVDir struct {
	Dir string
}

func (c *CSVDir) Rows(table string) ([]Row, error) {
	f, err := os.Open(filepath.Join(c.Dir, table+".csv"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("csv for table %s not found: %w", table, err)
		}
		return nil, fmt.Errorf("open csv for %s: %w", table, err)
	}
	defer f.Close()

	rd := csv.NewReader(f)
	rd.FieldsPerRecord = -1
	records, err := rd.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv for %s: %w", table, err)
	}
	if len(records) == 0 {
		return []Row{}, nil
	}

	hdr := records[0]
	for i := range hdr {
		hdr[i] = strings.TrimSpace(hdr[i])
	}

	out := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(Row, len(hdr))
		for i, h := range hdr {
			if h == "" {
				continue
			}
			if i < len(rec) {
				row[h] = strings.TrimSpace(rec[i])
			} else {
				row[h] = ""
			}
		}
		out = append(out, row)
	}
	return out, nil
}

// Fallback tries each provider in order, moving on when one errors or yields
// an empty table. This mirrors the API-then-CSV loading order of the
// estimator front end.
type Fallback struct {
	Providers []Provider
}

func (f *Fallback) Rows(table string) ([]Row, error) {
	var lastErr error
	for _, p := range f.Providers {
		rows, err := p.Rows(table)
		if err != nil {
			lastErr = err
			continue
		}
		if len(rows) > 0 {
			return rows, nil
		}
	}
	if lastErr != nil {
		return nil, fmt.Errorf("all providers failed for %s: %w", table, lastErr)
	}
	return []Row{}, nil
}
