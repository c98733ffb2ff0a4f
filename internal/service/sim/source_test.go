package sim

import (
	"context"
	"errors"
	"testing"
	"time"

	"QuoteBoard/internal/domain/models"
)

// fixedRand cycles through a fixed sequence of values.
type fixedRand struct {
	vals []float64
	i    int
}

func (r *fixedRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func TestFetchSnapshotSuccess(t *testing.T) {
	s := New(
		WithLatency(0, 0),
		WithFailureRate(0),
		WithRand(&fixedRand{vals: []float64{0.5}}),
	)

	snap, err := s.FetchSnapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap) != 10 {
		t.Fatalf("expected 10 records, got %d", len(snap))
	}

	// rand fixed at 0.5 centers every uniform delta on zero
	base := defaultBase()
	for i, q := range snap {
		if q.Symbol != base[i].Symbol || q.Name != base[i].Name {
			t.Fatalf("record %d: got %s/%s, want %s/%s", i, q.Symbol, q.Name, base[i].Symbol, base[i].Name)
		}
		if q.Price != round2(base[i].Price) {
			t.Fatalf("record %d: price %v, want %v", i, q.Price, round2(base[i].Price))
		}
		if q.Change != 0 || q.ChangePercent != 0 {
			t.Fatalf("record %d: expected zero deltas, got %v / %v", i, q.Change, q.ChangePercent)
		}
	}
}

func TestFetchSnapshotFailure(t *testing.T) {
	s := New(
		WithLatency(0, 0),
		WithFailureRate(0.10),
		WithRand(&fixedRand{vals: []float64{0.05}}),
	)

	snap, err := s.FetchSnapshot(context.Background())
	if err == nil {
		t.Fatal("expected simulated failure")
	}
	if snap != nil {
		t.Fatalf("expected nil snapshot on failure, got %d records", len(snap))
	}

	var fe *models.FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *models.FetchError, got %T", err)
	}
	if fe.Message != ErrMessage {
		t.Fatalf("unexpected message %q", fe.Message)
	}
}

func TestFetchSnapshotRounding(t *testing.T) {
	third := 1.0 / 3.0
	s := New(
		WithLatency(0, 0),
		WithFailureRate(0),
		WithRand(&fixedRand{vals: []float64{third}}),
		WithBase([]BaseQuote{{Symbol: "ACME", Name: "Acme Corp.", Price: 100}}),
	)

	snap, err := s.FetchSnapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap) != 1 {
		t.Fatalf("expected 1 record, got %d", len(snap))
	}

	q := snap[0]
	// uniform(-0.05, 0.05) at 1/3 = -0.0166..; 100 * 0.98333.. rounds to 98.33
	if q.Price != 98.33 {
		t.Fatalf("price %v, want 98.33", q.Price)
	}
	// uniform(-10, 10) at 1/3 = -3.333.. rounds to -3.33
	if q.Change != -3.33 {
		t.Fatalf("change %v, want -3.33", q.Change)
	}
	// uniform(-5, 5) at 1/3 = -1.666.. rounds to -1.67
	if q.ChangePercent != -1.67 {
		t.Fatalf("changePercent %v, want -1.67", q.ChangePercent)
	}
}

func TestBaseListInvariantAcrossFetches(t *testing.T) {
	s := New(
		WithLatency(0, 0),
		WithFailureRate(0),
		WithRand(&fixedRand{vals: []float64{0.1, 0.7, 0.3, 0.9}}),
	)

	first, err := s.FetchSnapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := s.FetchSnapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range first {
		if first[i].Symbol != second[i].Symbol || first[i].Name != second[i].Name {
			t.Fatalf("symbol/name pair drifted at %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestFetchSnapshotCancelled(t *testing.T) {
	s := New(
		WithLatency(time.Hour, time.Hour),
		WithRand(&fixedRand{vals: []float64{0.5}}),
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() {
		_, err := s.FetchSnapshot(ctx)
		done <- err
	}()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("fetch did not abort on cancellation")
	}
}
