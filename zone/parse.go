package zone

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

var (
	ErrEmpty  = errors.New("zone: empty input")
	ErrFormat = errors.New("zone: expected \"<price> <price> [high|medium|low]\"")
	ErrPrice  = errors.New("zone: invalid price")
)

var priorityNames = map[string]Priority{
	"high":   High,
	"h":      High,
	"1":      High,
	"medium": Medium,
	"med":    Medium,
	"m":      Medium,
	"2":      Medium,
	"low":    Low,
	"l":      Low,
	"3":      Low,
}

// Parse reads a zone from a committed input line.
//
// Accepted forms:
//
//	42000 41500
//	41500-42000 high
//	42,000 41,500 l
//
// Prices may use ',' or '_' as thousands separators. The priority defaults to
// Medium. The bounds may be given in either order.
func Parse(text string) (Zone, error) {
	fields := strings.FieldsFunc(strings.TrimSpace(text), func(r rune) bool {
		return unicode.IsSpace(r) || r == ';'
	})
	if len(fields) == 0 {
		return Zone{}, ErrEmpty
	}

	// "41500-42000" is one field; split it on the range dash.
	if lo, hi, ok := splitRange(fields[0]); ok {
		fields = append([]string{lo, hi}, fields[1:]...)
	}
	if len(fields) < 2 || len(fields) > 3 {
		return Zone{}, fmt.Errorf("%w: got %d fields", ErrFormat, len(fields))
	}

	a, err := parsePrice(fields[0])
	if err != nil {
		return Zone{}, err
	}
	b, err := parsePrice(fields[1])
	if err != nil {
		return Zone{}, err
	}

	prio := Medium
	if len(fields) == 3 {
		p, ok := priorityNames[strings.ToLower(fields[2])]
		if !ok {
			return Zone{}, fmt.Errorf("%w: unknown priority %q", ErrFormat, fields[2])
		}
		prio = p
	}

	return New(a, b, prio), nil
}

func splitRange(field string) (lo, hi string, ok bool) {
	// Start at 1 so a leading sign is not a range; a dash after an exponent
	// marker belongs to the number ("1e-5").
	for i := 1; i < len(field); i++ {
		if field[i] != '-' || field[i-1] == 'e' || field[i-1] == 'E' {
			continue
		}
		return field[:i], field[i+1:], true
	}
	return "", "", false
}

func parsePrice(s string) (PriceLevel, error) {
	clean := strings.NewReplacer(",", "", "_", "").Replace(s)
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrPrice, s)
	}
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w %q: must be positive", ErrPrice, s)
	}
	return PriceLevel(v), nil
}
