package zone

import "slices"

// Manager owns the configured zones and the zones nearest to the last price
// passed to Update.
type Manager struct {
	zones []Zone

	price   PriceLevel
	priced  bool
	up      int // index of the closest zone entirely above price, -1 if none
	down    int // index of the closest zone entirely below price, -1 if none
	inside  []int
	version uint64
}

func FromZones(zones []Zone) *Manager {
	m := &Manager{
		zones: slices.Clone(zones),
		up:    -1,
		down:  -1,
	}
	return m
}

// Zones returns a copy of the configured zones.
func (m *Manager) Zones() []Zone { return slices.Clone(m.zones) }

func (m *Manager) Len() int { return len(m.zones) }

// Version increments whenever the zone set changes.
func (m *Manager) Version() uint64 { return m.version }

// Add appends z and re-evaluates the last price.
func (m *Manager) Add(z Zone) {
	m.zones = append(m.zones, z)
	m.version++
	m.recompute()
}

// Remove deletes the zone at index i. It reports false if i is out of range.
func (m *Manager) Remove(i int) bool {
	if i < 0 || i >= len(m.zones) {
		return false
	}
	m.zones = slices.Delete(m.zones, i, i+1)
	m.version++
	m.recompute()
	return true
}

// Update records price as the comparison price and recomputes the nearest
// zones around it.
func (m *Manager) Update(price PriceLevel) {
	m.price = price
	m.priced = true
	m.recompute()
}

// Price returns the last price passed to Update.
func (m *Manager) Price() (PriceLevel, bool) { return m.price, m.priced }

// UpClosest returns the zone whose Low is the smallest one above the price.
func (m *Manager) UpClosest() (Zone, bool) {
	if m.up < 0 {
		return Zone{}, false
	}
	return m.zones[m.up], true
}

// DownClosest returns the zone whose High is the largest one below the price.
func (m *Manager) DownClosest() (Zone, bool) {
	if m.down < 0 {
		return Zone{}, false
	}
	return m.zones[m.down], true
}

// Inside returns the zones that contain the price.
func (m *Manager) Inside() []Zone {
	out := make([]Zone, 0, len(m.inside))
	for _, i := range m.inside {
		out = append(out, m.zones[i])
	}
	return out
}

func (m *Manager) recompute() {
	m.up, m.down = -1, -1
	m.inside = m.inside[:0]
	if !m.priced {
		return
	}

	for i, z := range m.zones {
		switch {
		case z.Contains(m.price):
			m.inside = append(m.inside, i)
		case z.Low > m.price:
			if m.up < 0 || z.Low < m.zones[m.up].Low ||
				(z.Low == m.zones[m.up].Low && z.Priority < m.zones[m.up].Priority) {
				m.up = i
			}
		case z.High < m.price:
			if m.down < 0 || z.High > m.zones[m.down].High ||
				(z.High == m.zones[m.down].High && z.Priority < m.zones[m.down].Priority) {
				m.down = i
			}
		}
	}
}
