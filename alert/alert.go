// Package alert turns price movements relative to configured zones into
// user-facing alerts.
package alert

import (
	"fmt"
	"time"

	"github.com/iw2rmb/zoneterm/zone"
)

// Side is the suggested position for an alert.
type Side int

const (
	Buy Side = iota + 1
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	default:
		return "?"
	}
}

// Alert records a zone entry.
type Alert struct {
	Created time.Time
	Price   zone.PriceLevel
	Side    Side
	Zone    zone.Zone
}

// Elapsed returns how long ago the alert fired, truncated to seconds.
func (a Alert) Elapsed(now time.Time) time.Duration {
	d := now.Sub(a.Created)
	if d < 0 {
		return 0
	}
	return d.Truncate(time.Second)
}

// Text renders a single-line description of the alert.
func (a Alert) Text() string {
	return fmt.Sprintf("%s @ %s entered %s", a.Side, a.Price, a.Zone)
}

// Strategy analyzes a price sample and returns the alerts it triggers.
type Strategy interface {
	Analyze(price zone.PriceLevel, now time.Time) []Alert
}
