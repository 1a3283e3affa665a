// Package monitor runs the recurring price poller: on a UTC cron schedule it
// fetches the Pyth price for each configured mint and hands every sample to
// a sink callback. Samples are delivered exactly as observed; there are no
// retries at this layer.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/solkit-labs/solkit/kit"
)

var standardCronParser = cron.NewParser(
	cron.Minute |
		cron.Hour |
		cron.Dom |
		cron.Month |
		cron.Dow,
)

// ParseSchedule parses a standard 5-field cron expression. Expressions are
// evaluated in UTC; timezone prefixes are rejected.
func ParseSchedule(expr string) (cron.Schedule, error) {
	clean := strings.TrimSpace(expr)
	if clean == "" {
		return nil, errors.New("monitor: cron expression is required")
	}

	upper := strings.ToUpper(clean)
	if strings.Contains(upper, "CRON_TZ=") || strings.Contains(upper, "TZ=") {
		return nil, errors.New("monitor: cron expression must be UTC-only (timezone prefixes are not allowed)")
	}

	schedule, err := standardCronParser.Parse(clean)
	if err != nil {
		return nil, fmt.Errorf("monitor: invalid cron expression: %w", err)
	}
	return schedule, nil
}

// Sample is one observed price for one mint. Err is set when the lookup
// failed; Price is only meaningful when Err is nil.
type Sample struct {
	Mint  string
	Price float64
	At    time.Time
	Err   error
}

// Sink receives every sample the poller produces.
type Sink func(Sample)

// Config configures a price monitor.
type Config struct {
	Oracle   kit.Oracle
	Schedule string
	Mints    []string
	Sink     Sink
	Now      func() time.Time
	Logger   *slog.Logger
}

// Monitor polls prices on a cron schedule.
type Monitor struct {
	oracle   kit.Oracle
	schedule cron.Schedule
	mints    []kit.PublicKey
	raw      []string
	sink     Sink
	now      func() time.Time
	logger   *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// New validates cfg and builds a monitor. Mint addresses are parsed once
// here so a bad configuration fails at startup, not mid-schedule.
func New(cfg Config) (*Monitor, error) {
	if cfg.Oracle == nil {
		return nil, errors.New("monitor: oracle is nil")
	}
	if cfg.Sink == nil {
		return nil, errors.New("monitor: sink is nil")
	}
	if len(cfg.Mints) == 0 {
		return nil, errors.New("monitor: at least one mint is required")
	}
	schedule, err := ParseSchedule(cfg.Schedule)
	if err != nil {
		return nil, err
	}
	mints := make([]kit.PublicKey, 0, len(cfg.Mints))
	for _, raw := range cfg.Mints {
		mint, err := kit.ParseAddress(raw)
		if err != nil {
			return nil, fmt.Errorf("monitor: mint %q: %w", raw, err)
		}
		mints = append(mints, mint)
	}
	if cfg.Now == nil {
		cfg.Now = func() time.Time { return time.Now().UTC() }
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Monitor{
		oracle:   cfg.Oracle,
		schedule: schedule,
		mints:    mints,
		raw:      cfg.Mints,
		sink:     cfg.Sink,
		now:      cfg.Now,
		logger:   cfg.Logger,
	}, nil
}

// Start begins background polling. Calling Start on a running monitor is a
// no-op.
func (m *Monitor) Start() {
	m.mu.Lock()
	if m.cancel != nil {
		m.mu.Unlock()
		return
	}
	loopCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	m.cancel = cancel
	m.done = done
	m.mu.Unlock()

	go func() {
		defer close(done)
		for {
			now := m.now().UTC()
			next := m.schedule.Next(now)
			timer := time.NewTimer(next.Sub(now))
			select {
			case <-loopCtx.Done():
				timer.Stop()
				return
			case <-timer.C:
				m.RunOnce(loopCtx)
			}
		}
	}()
}

// Stop halts background polling and waits for the loop to exit.
func (m *Monitor) Stop(ctx context.Context) error {
	m.mu.Lock()
	cancel := m.cancel
	done := m.done
	m.cancel = nil
	m.done = nil
	m.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunOnce polls every configured mint once, delivering one sample per mint.
func (m *Monitor) RunOnce(ctx context.Context) {
	for i, mint := range m.mints {
		price, err := m.oracle.PythPrice(ctx, mint)
		sample := Sample{
			Mint:  m.raw[i],
			Price: price,
			At:    m.now().UTC(),
			Err:   err,
		}
		if err != nil {
			m.logger.Warn("price lookup failed", "mint", sample.Mint, "error", err)
		}
		m.sink(sample)
	}
}

// NextRun returns the next scheduled poll time after now, in UTC.
func (m *Monitor) NextRun(now time.Time) time.Time {
	return m.schedule.Next(now.UTC())
}
