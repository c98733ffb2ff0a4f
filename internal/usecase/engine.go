package usecase

import (
	"context"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"QuoteBoard/internal/domain/models"
	"QuoteBoard/internal/domain/repository"
	"QuoteBoard/internal/service/cache"
	"QuoteBoard/pkg/logger"
)

// Fetch outcomes recorded to metrics.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeStale   = "stale"
)

// Option configures an Engine.
type Option func(*Engine)

// WithMetrics sets the metrics recorder.
func WithMetrics(m repository.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// Engine owns the dashboard's ViewState and is its only sanctioned mutator.
// All reads and writes go through the engine's mutex, so results of an async
// fetch are applied in one critical section: no reader observes a new
// snapshot alongside a stale error.
//
// Overlapping refreshes are resolved by sequence tagging: every fetch carries
// the sequence number issued at its start, and a completion whose sequence no
// longer matches the latest issued one is discarded. The last refresh issued
// wins regardless of resolution order.
type Engine struct {
	source  repository.QuoteSource
	metrics repository.Metrics
	log     *logger.Logger

	mu       sync.Mutex
	state    models.ViewState
	issued   uint64 // sequence of the most recently issued fetch
	snapSeq  uint64 // bumps every time a fetch result is applied
	collator *collate.Collator
	memo     *cache.ProjectionCache

	updates chan struct{}
}

// New creates an Engine in the uninitialized state.
func New(source repository.QuoteSource, opts ...Option) *Engine {
	e := &Engine{
		source:   source,
		collator: collate.New(language.English),
		memo:     cache.NewProjectionCache(),
		updates:  make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Initialize performs the first load. The full-page loading flag is set while
// the fetch is in flight; Refresh and Retry drive the non-blocking refreshing
// flag instead.
func (e *Engine) Initialize(ctx context.Context) {
	seq := e.begin(true)
	go e.run(ctx, seq)
}

// Refresh re-fetches the snapshot. It may be called while a previous refresh
// is still pending; stale completions are discarded.
func (e *Engine) Refresh(ctx context.Context) {
	seq := e.begin(false)
	go e.run(ctx, seq)
}

// Retry is the error-path alias of Refresh.
func (e *Engine) Retry(ctx context.Context) {
	e.Refresh(ctx)
}

// SetSearchTerm replaces the search term unconditionally. Snapshot, loading
// and error state are untouched.
func (e *Engine) SetSearchTerm(term string) {
	e.mu.Lock()
	e.state.SearchTerm = term
	e.mu.Unlock()
	e.notify()
}

// SetSortKey toggles direction when key is already active, otherwise selects
// key ascending.
func (e *Engine) SetSortKey(key models.SortKey) {
	e.mu.Lock()
	if e.state.Sort.Key == key {
		if e.state.Sort.Direction == models.Ascending {
			e.state.Sort.Direction = models.Descending
		} else {
			e.state.Sort.Direction = models.Ascending
		}
	} else {
		e.state.Sort = models.SortConfig{Key: key, Direction: models.Ascending}
	}
	e.mu.Unlock()
	e.notify()
}

// State returns a copy of the current ViewState. The snapshot slice is shared
// and must be treated as read-only.
func (e *Engine) State() models.ViewState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Projection derives the filtered, sorted view of the snapshot. It never
// mutates state and is memoized on the exact (snapshot, term, sort) triple.
func (e *Engine) Projection() []models.QuoteRecord {
	e.mu.Lock()
	defer e.mu.Unlock()

	key := cache.ProjectionKey{SnapshotSeq: e.snapSeq, Term: e.state.SearchTerm, Sort: e.state.Sort}
	if rows, ok := e.memo.Get(key); ok {
		return rows
	}

	rows := project(e.state.Snapshot, e.state.SearchTerm, e.state.Sort, e.collator)
	e.memo.Put(key, rows)
	if e.metrics != nil {
		e.metrics.RecordProjectionSize(len(rows))
	}
	return rows
}

// Updates signals after every state mutation so a renderer can redraw.
// Notifications coalesce; mutators never block on a slow consumer.
func (e *Engine) Updates() <-chan struct{} {
	return e.updates
}

func (e *Engine) begin(initial bool) uint64 {
	e.mu.Lock()
	e.issued++
	seq := e.issued
	if initial {
		e.state.Loading = true
		e.state.Err = ""
		e.state.Snapshot = nil
	} else {
		e.state.Refreshing = true
	}
	e.mu.Unlock()
	e.notify()
	return seq
}

func (e *Engine) run(ctx context.Context, seq uint64) {
	start := time.Now()
	snap, err := e.source.FetchSnapshot(ctx)
	e.apply(seq, snap, err, time.Since(start))
}

func (e *Engine) apply(seq uint64, snap []models.QuoteRecord, err error, took time.Duration) {
	e.mu.Lock()
	if seq != e.issued {
		e.mu.Unlock()
		if e.metrics != nil {
			e.metrics.RecordFetch(OutcomeStale)
		}
		if e.log != nil {
			e.log.Debug("stale fetch discarded", logger.Uint64("seq", seq))
		}
		return
	}

	if err != nil {
		e.state.Snapshot = nil
		e.state.Err = err.Error()
	} else {
		e.state.Snapshot = snap
		e.state.Err = ""
	}
	e.state.Loading = false
	e.state.Refreshing = false
	e.snapSeq++
	e.mu.Unlock()

	if e.metrics != nil {
		e.metrics.RecordFetchDuration(took.Seconds())
		if err != nil {
			e.metrics.RecordFetch(OutcomeFailure)
		} else {
			e.metrics.RecordFetch(OutcomeSuccess)
			for _, q := range snap {
				e.metrics.RecordLastPrice(q.Symbol, q.Price)
			}
		}
	}
	if e.log != nil {
		if err != nil {
			e.log.Warn("fetch failed", logger.Error(err), logger.Duration("took", took))
		} else {
			e.log.Debug("snapshot applied", logger.Int("quotes", len(snap)), logger.Duration("took", took))
		}
	}
	e.notify()
}

func (e *Engine) notify() {
	select {
	case e.updates <- struct{}{}:
	default:
	}
}
