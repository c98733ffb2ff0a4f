package sim

import (
	"context"
	"math"
	"math/rand"
	"time"

	"QuoteBoard/internal/domain/models"
	"QuoteBoard/pkg/logger"
)

// ErrMessage is the static human-readable message carried by the simulated
// failure path.
const ErrMessage = "failed to fetch quotes: network unavailable"

// Perturbation bounds. Price moves up to +/-5% of the base price; change and
// change-percent are drawn fresh on every fetch, independent of prior results.
const (
	priceJitterPct = 0.05
	changeSpan     = 10.0
	changePctSpan  = 5.0
)

// Rand is the randomness the simulator consumes. Satisfied by *rand.Rand;
// tests inject a fixed sequence.
type Rand interface {
	Float64() float64
}

// BaseQuote is one entry of the invariant base list.
type BaseQuote struct {
	Symbol string
	Name   string
	Price  float64
}

func defaultBase() []BaseQuote {
	return []BaseQuote{
		{Symbol: "AAPL", Name: "Apple Inc.", Price: 178.72},
		{Symbol: "MSFT", Name: "Microsoft Corp.", Price: 417.88},
		{Symbol: "GOOGL", Name: "Alphabet Inc.", Price: 163.42},
		{Symbol: "AMZN", Name: "Amazon.com Inc.", Price: 186.51},
		{Symbol: "NVDA", Name: "NVIDIA Corp.", Price: 875.28},
		{Symbol: "META", Name: "Meta Platforms Inc.", Price: 485.58},
		{Symbol: "TSLA", Name: "Tesla Inc.", Price: 177.46},
		{Symbol: "JPM", Name: "JPMorgan Chase & Co.", Price: 198.47},
		{Symbol: "V", Name: "Visa Inc.", Price: 279.09},
		{Symbol: "JNJ", Name: "Johnson & Johnson", Price: 147.52},
	}
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithLatency sets the artificial delay range applied before resolving.
func WithLatency(min, max time.Duration) Option {
	return func(s *Simulator) {
		s.latencyMin = min
		s.latencyMax = max
	}
}

// WithFailureRate sets the probability in [0,1] of a simulated fetch failure.
func WithFailureRate(p float64) Option {
	return func(s *Simulator) {
		s.failureRate = p
	}
}

// WithRand injects the randomness source.
func WithRand(r Rand) Option {
	return func(s *Simulator) {
		s.rand = r
	}
}

// WithBase replaces the built-in base list.
func WithBase(base []BaseQuote) Option {
	return func(s *Simulator) {
		s.base = base
	}
}

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) Option {
	return func(s *Simulator) {
		s.log = l
	}
}

// Simulator produces randomized quote snapshots with injected latency and
// failure. It holds no mutable state between calls beyond the generator.
type Simulator struct {
	base        []BaseQuote
	latencyMin  time.Duration
	latencyMax  time.Duration
	failureRate float64
	rand        Rand
	log         *logger.Logger
}

// New creates a Simulator with the default ten-symbol base list, a 10%
// failure rate, and 300-900ms latency.
func New(opts ...Option) *Simulator {
	s := &Simulator{
		base:        defaultBase(),
		latencyMin:  300 * time.Millisecond,
		latencyMax:  900 * time.Millisecond,
		failureRate: 0.10,
		rand:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FetchSnapshot resolves after the latency delay to either a freshly perturbed
// snapshot or a *models.FetchError. Each invocation derives from the base
// list, never prior results.
func (s *Simulator) FetchSnapshot(ctx context.Context) ([]models.QuoteRecord, error) {
	if err := s.sleep(ctx); err != nil {
		return nil, err
	}

	if s.rand.Float64() < s.failureRate {
		if s.log != nil {
			s.log.Debug("simulated fetch failure")
		}
		return nil, &models.FetchError{Message: ErrMessage}
	}

	out := make([]models.QuoteRecord, 0, len(s.base))
	for _, b := range s.base {
		price := round2(b.Price * (1 + s.uniform(-priceJitterPct, priceJitterPct)))
		out = append(out, models.QuoteRecord{
			Symbol:        b.Symbol,
			Name:          b.Name,
			Price:         math.Max(0, price),
			Change:        round2(s.uniform(-changeSpan, changeSpan)),
			ChangePercent: round2(s.uniform(-changePctSpan, changePctSpan)),
		})
	}

	if s.log != nil {
		s.log.Debug("snapshot generated", logger.Int("quotes", len(out)))
	}
	return out, nil
}

// sleep waits out the simulated network delay, aborting on ctx cancellation.
func (s *Simulator) sleep(ctx context.Context) error {
	d := s.latencyMin
	if s.latencyMax > s.latencyMin {
		d += time.Duration(s.rand.Float64() * float64(s.latencyMax-s.latencyMin))
	}
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Simulator) uniform(lo, hi float64) float64 {
	return lo + s.rand.Float64()*(hi-lo)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
