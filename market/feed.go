// Package market samples live prices from an exchange on a fixed interval.
package market

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// DefaultEndpoint is the public Binance REST endpoint.
const DefaultEndpoint = "https://api.binance.com"

var ErrStatus = errors.New("market: unexpected response status")

// Feed returns the current price of a symbol.
type Feed interface {
	Price(ctx context.Context, symbol string) (float64, error)
}

// BinanceFeed queries the Binance ticker price endpoint.
type BinanceFeed struct {
	endpoint  string
	userAgent string
	client    *http.Client
	limiter   *rate.Limiter
}

// FeedOption configures a BinanceFeed.
type FeedOption func(*BinanceFeed)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) FeedOption {
	return func(f *BinanceFeed) { f.client = c }
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) FeedOption {
	return func(f *BinanceFeed) { f.userAgent = ua }
}

// WithRateLimit caps requests per second. Zero or negative disables limiting.
func WithRateLimit(perSecond float64) FeedOption {
	return func(f *BinanceFeed) {
		if perSecond <= 0 {
			f.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		f.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

func NewBinanceFeed(endpoint string, opts ...FeedOption) *BinanceFeed {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	f := &BinanceFeed{
		endpoint: strings.TrimRight(endpoint, "/"),
		client:   &http.Client{Timeout: 10 * time.Second},
		limiter:  rate.NewLimiter(rate.Limit(5), 1),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

type tickerPrice struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

func (f *BinanceFeed) Price(ctx context.Context, symbol string) (float64, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	u := f.endpoint + "/api/v3/ticker/price?symbol=" + url.QueryEscape(strings.ToUpper(symbol))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, fmt.Errorf("market: building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("market: requesting %s: %w", symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("%w %d: %s", ErrStatus, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var tp tickerPrice
	if err := json.NewDecoder(resp.Body).Decode(&tp); err != nil {
		return 0, fmt.Errorf("market: decoding ticker: %w", err)
	}
	p, err := strconv.ParseFloat(tp.Price, 64)
	if err != nil {
		return 0, fmt.Errorf("market: parsing price %q: %w", tp.Price, err)
	}
	return p, nil
}
