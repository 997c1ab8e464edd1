package zone

import (
	"fmt"
	"strconv"
)

// PriceLevel is a market price.
type PriceLevel float64

func (p PriceLevel) String() string {
	return strconv.FormatFloat(float64(p), 'f', -1, 64)
}

// Priority is the credibility of a zone.
type Priority int

const (
	High Priority = iota + 1
	Medium
	Low
)

func (p Priority) String() string {
	switch p {
	case High:
		return "high"
	case Medium:
		return "medium"
	case Low:
		return "low"
	default:
		return fmt.Sprintf("Priority(%d)", int(p))
	}
}

// Valid reports whether p is one of High, Medium or Low.
func (p Priority) Valid() bool { return p >= High && p <= Low }

// Zone is a price band [Low, High].
type Zone struct {
	High     PriceLevel
	Low      PriceLevel
	Priority Priority
}

// New returns a zone with High >= Low.
func New(high, low PriceLevel, prio Priority) Zone {
	if high < low {
		high, low = low, high
	}
	return Zone{High: high, Low: low, Priority: prio}
}

// Contains reports whether p lies inside the zone, bounds included.
func (z Zone) Contains(p PriceLevel) bool { return p >= z.Low && p <= z.High }

// Mid returns the midpoint of the band.
func (z Zone) Mid() PriceLevel { return (z.High + z.Low) / 2 }

// Width returns High - Low.
func (z Zone) Width() PriceLevel { return z.High - z.Low }

func (z Zone) String() string {
	return fmt.Sprintf("%s-%s (%s)", z.Low, z.High, z.Priority)
}
