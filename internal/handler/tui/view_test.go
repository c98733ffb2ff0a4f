package tui

import (
	"strings"
	"testing"

	"QuoteBoard/internal/domain/models"
)

func TestRowTextFormatsSignedDeltas(t *testing.T) {
	row := rowText(models.QuoteRecord{
		Symbol: "AAPL", Name: "Apple Inc.", Price: 178.72, Change: 1.2, ChangePercent: 0.68,
	})
	if !strings.Contains(row, "AAPL") || !strings.Contains(row, "Apple Inc.") {
		t.Fatalf("missing identity columns: %q", row)
	}
	if !strings.Contains(row, "+1.20") || !strings.Contains(row, "+0.68%") {
		t.Fatalf("positive deltas not signed: %q", row)
	}

	row = rowText(models.QuoteRecord{Symbol: "MSFT", Name: "Microsoft Corp.", Price: 417.88, Change: -2.1, ChangePercent: -0.5})
	if !strings.Contains(row, "-2.10") || !strings.Contains(row, "-0.50%") {
		t.Fatalf("negative deltas wrong: %q", row)
	}
}

func TestRowTextTruncatesLongNames(t *testing.T) {
	row := rowText(models.QuoteRecord{
		Symbol: "LONG", Name: "An Extremely Long Company Name Incorporated", Price: 1,
	})
	if strings.Contains(row, "Incorporated") {
		t.Fatalf("name not truncated: %q", row)
	}
}

func TestSortIndicator(t *testing.T) {
	cfg := models.SortConfig{Key: models.SortPrice, Direction: models.Ascending}
	if got := sortIndicator(cfg, models.SortPrice); got != " ▲" {
		t.Fatalf("expected ascending marker, got %q", got)
	}
	cfg.Direction = models.Descending
	if got := sortIndicator(cfg, models.SortPrice); got != " ▼" {
		t.Fatalf("expected descending marker, got %q", got)
	}
	if got := sortIndicator(cfg, models.SortName); got != "" {
		t.Fatalf("expected no marker for inactive column, got %q", got)
	}
}

func TestHeaderTextShowsActiveColumn(t *testing.T) {
	h := headerText(models.SortConfig{Key: models.SortChangePercent, Direction: models.Descending})
	if !strings.Contains(h, "[5]Change% ▼") {
		t.Fatalf("active column marker missing: %q", h)
	}
}
