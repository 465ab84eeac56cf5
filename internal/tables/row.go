package tables

import (
	"strconv"
	"strings"
)

// Row is one raw record from the data provider: column name to string value.
// Column names are preserved verbatim from the source tables (including
// spacing, e.g. "BOX TYPE" or "Holding Capacity") because every schema
// mapping matches on the literal header.
type Row map[string]string

// Str returns the trimmed value of the first column that is present and
// non-empty.
func (r Row) Str(cols ...string) string {
	for _, c := range cols {
		if v, ok := r[c]; ok {
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		}
	}
	return ""
}

// Float parses the first present column as a float, returning 0 when the
// value is missing or not numeric. Rate tables routinely carry blanks; the
// degrade-to-zero policy starts here.
func (r Row) Float(cols ...string) float64 {
	v, err := strconv.ParseFloat(r.Str(cols...), 64)
	if err != nil {
		return 0
	}
	return v
}

// Int parses the first present column as an integer, returning 0 on failure.
func (r Row) Int(cols ...string) int {
	v, err := strconv.Atoi(r.Str(cols...))
	if err != nil {
		return int(r.Float(cols...))
	}
	return v
}

// Flag interprets the berth-master style capability markers. The source data
// mixes "yes", "Y", "true" and "1".
func (r Row) Flag(cols ...string) bool {
	switch strings.ToLower(r.Str(cols...)) {
	case "yes", "y", "true", "1":
		return true
	}
	return false
}
