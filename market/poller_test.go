package market

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFeed struct {
	mu     sync.Mutex
	prices []float64
	err    error
	calls  int
}

func (f *stubFeed) Price(ctx context.Context, symbol string) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	if len(f.prices) == 0 {
		return 0, errors.New("no prices")
	}
	p := f.prices[0]
	if len(f.prices) > 1 {
		f.prices = f.prices[1:]
	}
	return p, nil
}

func TestPoller_PublishKeepsLatest(t *testing.T) {
	p := NewPoller(&stubFeed{}, "ETHUSDT", time.Second, nil)

	p.publish(Sample{Price: 1})
	p.publish(Sample{Price: 2})
	p.publish(Sample{Price: 3})

	s, ok := p.Latest()
	require.True(t, ok)
	assert.Equal(t, 3.0, s.Price)

	_, ok = p.Latest()
	assert.False(t, ok, "channel must be drained")
}

func TestPoller_SampleRecordsFeedResult(t *testing.T) {
	at := time.Unix(1_700_000_000, 0)
	feed := &stubFeed{prices: []float64{3100.5}}
	p := NewPoller(feed, "ETHUSDT", time.Second, nil)
	p.now = func() time.Time { return at }

	p.sample(context.Background())
	s, ok := p.Latest()
	require.True(t, ok)
	assert.Equal(t, Sample{Symbol: "ETHUSDT", Price: 3100.5, At: at}, s)

	feed.err = errors.New("boom")
	p.sample(context.Background())
	s, ok = p.Latest()
	require.True(t, ok)
	assert.EqualError(t, s.Err, "boom")
}

func TestPoller_RunSamplesUntilCancelled(t *testing.T) {
	feed := &stubFeed{prices: []float64{10, 11, 12}}
	p := NewPoller(feed, "ETHUSDT", 5*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	first := <-p.Samples()
	assert.Equal(t, 10.0, first.Price)

	msg := p.WaitCmd()()
	sm, ok := msg.(SampleMsg)
	require.True(t, ok)
	assert.NoError(t, sm.Err)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestPoller_DefaultsInterval(t *testing.T) {
	p := NewPoller(&stubFeed{}, "BTCUSDT", 0, nil)
	assert.Equal(t, 2*time.Second, p.interval)
	assert.Equal(t, "BTCUSDT", p.Symbol())
}

func TestPoller_WaitCmdReturnsAfterRun(t *testing.T) {
	p := NewPoller(&stubFeed{prices: []float64{10}}, "ETHUSDT", time.Hour, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, p.Run(ctx))
	p.Latest()

	got := make(chan any, 1)
	go func() { got <- p.WaitCmd()() }()
	select {
	case msg := <-got:
		assert.Nil(t, msg)
	case <-time.After(time.Second):
		t.Fatal("WaitCmd still blocked after Run returned")
	}
	select {
	case <-p.Done():
	default:
		t.Fatal("Done not closed after Run returned")
	}
}
