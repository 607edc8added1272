// Package locations wraps the external canonical-name table that maps raw
// restaurant names from the export to their cleaned display names.
package locations

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"deliverect/internal/ingest"
	"deliverect/internal/util"
)

const (
	rawNameColumn     = "Location"
	cleanedNameColumn = "Cleaned Name"
)

// Table is an exact-match index over the canonical-name file. Lookups fold
// umlauts first because the table is keyed on folded names. Misses are
// counted per raw name so the run can report its data-quality gaps.
type Table struct {
	byRaw  map[string]string
	misses map[string]int
}

// Load reads the delimited canonical-name file at path.
func Load(path string) (*Table, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read locations table: %w", err)
	}
	rows, err := ingest.ParseCSV(blob)
	if err != nil {
		return nil, fmt.Errorf("parse locations table %s: %w", path, err)
	}

	t := &Table{byRaw: map[string]string{}, misses: map[string]int{}}
	for _, row := range rows {
		raw := strings.TrimSpace(row[rawNameColumn])
		cleaned := strings.TrimSpace(row[cleanedNameColumn])
		if raw == "" || cleaned == "" {
			continue
		}
		t.byRaw[util.FoldUmlauts(raw)] = cleaned
	}
	if len(t.byRaw) == 0 {
		return nil, fmt.Errorf("locations table %s has no usable rows", path)
	}
	return t, nil
}

// Resolve maps a raw location name to its canonical display name. An
// unmapped name is returned folded-but-unresolved with ok=false and counted.
func (t *Table) Resolve(raw string) (string, bool) {
	folded := util.FoldUmlauts(strings.TrimSpace(raw))
	if cleaned, ok := t.byRaw[folded]; ok {
		return cleaned, true
	}
	t.misses[folded]++
	return folded, false
}

// Size reports the number of mapped names.
func (t *Table) Size() int {
	return len(t.byRaw)
}

// Unresolved lists the distinct raw names that failed to resolve, most
// frequent first.
func (t *Table) Unresolved() []string {
	out := make([]string, 0, len(t.misses))
	for name := range t.misses {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool {
		if t.misses[out[i]] != t.misses[out[j]] {
			return t.misses[out[i]] > t.misses[out[j]]
		}
		return out[i] < out[j]
	})
	return out
}

// UnresolvedCount reports the total number of lookups that missed.
func (t *Table) UnresolvedCount() int {
	total := 0
	for _, n := range t.misses {
		total += n
	}
	return total
}
