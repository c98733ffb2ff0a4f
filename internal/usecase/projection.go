package usecase

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"

	"QuoteBoard/internal/domain/models"
)

// project filters the snapshot by the case-folded search term, then sorts by
// the configured key. The snapshot itself is never reordered; filtering
// always produces a fresh slice.
func project(snapshot []models.QuoteRecord, term string, cfg models.SortConfig, col *collate.Collator) []models.QuoteRecord {
	rows := filterQuotes(snapshot, term)
	if cfg.Key == models.SortNone {
		return rows
	}
	sortQuotes(rows, cfg, col)
	return rows
}

// filterQuotes keeps records whose symbol or name contains term,
// case-insensitively. An empty term matches everything.
func filterQuotes(snapshot []models.QuoteRecord, term string) []models.QuoteRecord {
	needle := strings.ToLower(term)
	rows := make([]models.QuoteRecord, 0, len(snapshot))
	for _, q := range snapshot {
		if strings.Contains(strings.ToLower(q.Symbol), needle) ||
			strings.Contains(strings.ToLower(q.Name), needle) {
			rows = append(rows, q)
		}
	}
	return rows
}

// sortQuotes sorts rows in place. Descending inverts the comparison rather
// than reversing the output, so ties keep the same relative order as the
// ascending result.
func sortQuotes(rows []models.QuoteRecord, cfg models.SortConfig, col *collate.Collator) {
	cmp := comparator(cfg.Key, col)
	desc := cfg.Direction == models.Descending
	sort.SliceStable(rows, func(i, j int) bool {
		c := cmp(rows[i], rows[j])
		if desc {
			return c > 0
		}
		return c < 0
	})
}

func comparator(key models.SortKey, col *collate.Collator) func(a, b models.QuoteRecord) int {
	switch key {
	case models.SortSymbol:
		return func(a, b models.QuoteRecord) int { return col.CompareString(a.Symbol, b.Symbol) }
	case models.SortName:
		return func(a, b models.QuoteRecord) int { return col.CompareString(a.Name, b.Name) }
	case models.SortPrice:
		return func(a, b models.QuoteRecord) int { return compareFloat(a.Price, b.Price) }
	case models.SortChange:
		return func(a, b models.QuoteRecord) int { return compareFloat(a.Change, b.Change) }
	case models.SortChangePercent:
		return func(a, b models.QuoteRecord) int { return compareFloat(a.ChangePercent, b.ChangePercent) }
	default:
		return func(a, b models.QuoteRecord) int { return 0 }
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
