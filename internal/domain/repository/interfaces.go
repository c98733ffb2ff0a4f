package repository

import (
	"context"

	"QuoteBoard/internal/domain/models"
)

type QuoteSource interface {
	// FetchSnapshot produces a complete, fresh snapshot of quotes. It may
	// return *models.FetchError on the simulated failure path.
	FetchSnapshot(ctx context.Context) ([]models.QuoteRecord, error)
}

type Metrics interface {
	RecordFetch(outcome string)
	RecordFetchDuration(seconds float64)
	RecordLastPrice(symbol string, price float64)
	RecordProjectionSize(rows int)
}
