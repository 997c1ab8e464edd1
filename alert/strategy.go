package alert

import (
	"time"

	"github.com/iw2rmb/zoneterm/zone"
)

var _ Strategy = (*ZoneStrategy)(nil)

// ZoneStrategy alerts when the price moves into a zone.
//
// Entering a zone from above suggests a bounce off support (Buy); entering from
// below suggests rejection at resistance (Sell). The first sample only
// establishes the reference price.
type ZoneStrategy struct {
	zones *zone.Manager

	last   zone.PriceLevel
	primed bool
}

func NewZoneStrategy(m *zone.Manager) *ZoneStrategy {
	return &ZoneStrategy{zones: m}
}

func (s *ZoneStrategy) Analyze(price zone.PriceLevel, now time.Time) []Alert {
	s.zones.Update(price)
	if !s.primed {
		s.last = price
		s.primed = true
		return nil
	}
	prev := s.last
	s.last = price

	var out []Alert
	for _, z := range s.zones.Inside() {
		if z.Contains(prev) {
			continue
		}
		side := Sell
		if prev > z.High {
			side = Buy
		}
		out = append(out, Alert{Created: now, Price: price, Side: side, Zone: z})
	}
	return out
}
