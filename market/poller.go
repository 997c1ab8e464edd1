package market

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Sample is one price observation. Err is set when the feed failed.
type Sample struct {
	Symbol string
	Price  float64
	At     time.Time
	Err    error
}

// SampleMsg wraps a Sample for delivery through a Bubble Tea program.
type SampleMsg Sample

// Poller samples a Feed on a fixed interval and hands the most recent sample
// to a single consumer. Unread samples are replaced, never queued.
type Poller struct {
	feed     Feed
	symbol   string
	interval time.Duration
	log      *slog.Logger
	now      func() time.Time

	out      chan Sample
	done     chan struct{}
	doneOnce sync.Once
}

func NewPoller(feed Feed, symbol string, interval time.Duration, log *slog.Logger) *Poller {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Poller{
		feed:     feed,
		symbol:   symbol,
		interval: interval,
		log:      log.With(slog.String("component", "market")),
		now:      time.Now,
		out:      make(chan Sample, 1),
		done:     make(chan struct{}),
	}
}

// Symbol returns the polled symbol.
func (p *Poller) Symbol() string { return p.symbol }

// Run samples immediately and then once per interval until ctx is done.
// It returns nil when ctx is cancelled. Pending WaitCmd commands return once
// Run has exited.
func (p *Poller) Run(ctx context.Context) error {
	t := time.NewTicker(p.interval)
	defer t.Stop()
	defer p.doneOnce.Do(func() { close(p.done) })

	p.sample(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			p.sample(ctx)
		}
	}
}

func (p *Poller) sample(ctx context.Context) {
	price, err := p.feed.Price(ctx, p.symbol)
	if err != nil && ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		return
	}
	s := Sample{Symbol: p.symbol, Price: price, At: p.now(), Err: err}
	if err != nil {
		p.log.Warn("price sample failed", slog.String("symbol", p.symbol), slog.Any("error", err))
	} else {
		p.log.Debug("price sample", slog.String("symbol", p.symbol), slog.Float64("price", price))
	}
	p.publish(s)
}

// publish replaces any unread sample with s. Only the Run goroutine sends.
func (p *Poller) publish(s Sample) {
	for {
		select {
		case p.out <- s:
			return
		default:
		}
		select {
		case <-p.out:
		default:
		}
	}
}

// Samples returns the channel samples are delivered on.
func (p *Poller) Samples() <-chan Sample { return p.out }

// Latest drains the channel without blocking and returns the newest sample.
func (p *Poller) Latest() (Sample, bool) {
	var (
		s  Sample
		ok bool
	)
	for {
		select {
		case next := <-p.out:
			s, ok = next, true
		default:
			return s, ok
		}
	}
}

// Done is closed when Run returns.
func (p *Poller) Done() <-chan struct{} { return p.done }

// WaitCmd returns a command that blocks until the next sample and delivers it
// as a SampleMsg. Re-issue it after each SampleMsg to keep receiving. After
// Run has returned the command yields nil.
func (p *Poller) WaitCmd() tea.Cmd {
	return func() tea.Msg {
		select {
		case s := <-p.out:
			return SampleMsg(s)
		case <-p.done:
			return nil
		}
	}
}
