package zone

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Zone
	}{
		{name: "two prices", in: "42000 41500", want: Zone{High: 42000, Low: 41500, Priority: Medium}},
		{name: "reversed", in: "41500 42000", want: Zone{High: 42000, Low: 41500, Priority: Medium}},
		{name: "dash range", in: "41500-42000 high", want: Zone{High: 42000, Low: 41500, Priority: High}},
		{name: "thousands", in: " 42,000  41,500 l ", want: Zone{High: 42000, Low: 41500, Priority: Low}},
		{name: "decimals", in: "1.25 1.2 M", want: Zone{High: 1.25, Low: 1.2, Priority: Medium}},
		{name: "numeric priority", in: "10 9 1", want: Zone{High: 10, Low: 9, Priority: High}},
		{name: "single price", in: "100 100", want: Zone{High: 100, Low: 100, Priority: Medium}},
		{name: "exponent", in: "1e-5 2", want: Zone{High: 2, Low: 1e-5, Priority: Medium}},
		{name: "exponent range", in: "1e-5-2E-5 h", want: Zone{High: 2e-5, Low: 1e-5, Priority: High}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.in)
			if err != nil {
				t.Fatalf("Parse(%q): unexpected error %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("Parse(%q): got %+v, want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{in: "", want: ErrEmpty},
		{in: "   ", want: ErrEmpty},
		{in: "42000", want: ErrFormat},
		{in: "1 2 3 4", want: ErrFormat},
		{in: "1 2 urgent", want: ErrFormat},
		{in: "abc 2", want: ErrPrice},
		{in: "-5 2", want: ErrPrice},
		{in: "0 2", want: ErrPrice},
		{in: "NaN 2", want: ErrPrice},
		{in: "Inf 2", want: ErrPrice},
	}

	for _, tc := range cases {
		_, err := Parse(tc.in)
		if !errors.Is(err, tc.want) {
			t.Fatalf("Parse(%q): got error %v, want %v", tc.in, err, tc.want)
		}
	}
}

func TestZone_NewNormalizesAndContains(t *testing.T) {
	z := New(10, 20, High)
	if z.High != 20 || z.Low != 10 {
		t.Fatalf("bounds: got %v..%v, want 10..20", z.Low, z.High)
	}
	if !z.Contains(10) || !z.Contains(20) || !z.Contains(15) {
		t.Fatalf("expected bounds to be inclusive")
	}
	if z.Contains(9.99) || z.Contains(20.01) {
		t.Fatalf("expected prices outside the band to be excluded")
	}
	if got := z.Mid(); got != 15 {
		t.Fatalf("mid: got %v, want 15", got)
	}
	if got := z.Width(); got != 10 {
		t.Fatalf("width: got %v, want 10", got)
	}
	if got, want := z.String(), "10-20 (high)"; got != want {
		t.Fatalf("string: got %q, want %q", got, want)
	}
}

func TestManager_UpdateFindsClosestZones(t *testing.T) {
	m := FromZones([]Zone{
		New(100, 90, Low),
		New(130, 120, Medium),
		New(115, 110, High),
		New(80, 70, High),
		New(95, 85, Medium),
	})

	if _, ok := m.UpClosest(); ok {
		t.Fatalf("expected no closest zone before the first price")
	}

	m.Update(105)
	up, ok := m.UpClosest()
	if !ok || up != New(115, 110, High) {
		t.Fatalf("up closest: got %+v (%v), want 110-115", up, ok)
	}
	down, ok := m.DownClosest()
	if !ok || down != New(100, 90, Low) {
		t.Fatalf("down closest: got %+v (%v), want 90-100", down, ok)
	}
	if got := m.Inside(); len(got) != 0 {
		t.Fatalf("inside: got %v, want none", got)
	}

	m.Update(92)
	if got := m.Inside(); len(got) != 2 {
		t.Fatalf("inside at 92: got %v, want two zones", got)
	}
	down, ok = m.DownClosest()
	if !ok || down != New(80, 70, High) {
		t.Fatalf("down closest at 92: got %+v (%v), want 70-80", down, ok)
	}

	m.Update(200)
	if _, ok := m.UpClosest(); ok {
		t.Fatalf("expected nothing above 200")
	}
	if p, ok := m.Price(); !ok || p != 200 {
		t.Fatalf("price: got %v (%v), want 200", p, ok)
	}
}

func TestManager_AddRemoveRecompute(t *testing.T) {
	m := FromZones(nil)
	m.Update(50)

	m.Add(New(60, 55, Medium))
	up, ok := m.UpClosest()
	if !ok || up.Low != 55 {
		t.Fatalf("up after add: got %+v (%v)", up, ok)
	}
	if m.Version() != 1 || m.Len() != 1 {
		t.Fatalf("version/len: got %d/%d, want 1/1", m.Version(), m.Len())
	}

	// Equal distance: higher priority wins.
	m.Add(New(58, 55, High))
	up, _ = m.UpClosest()
	if up.Priority != High {
		t.Fatalf("tie-break: got %v, want high", up.Priority)
	}

	if !m.Remove(1) {
		t.Fatalf("expected remove to succeed")
	}
	if m.Remove(5) {
		t.Fatalf("expected out-of-range remove to fail")
	}
	up, _ = m.UpClosest()
	if up != New(60, 55, Medium) {
		t.Fatalf("up after remove: got %+v", up)
	}

	zs := m.Zones()
	zs[0].High = 1
	if m.Zones()[0].High != 60 {
		t.Fatalf("Zones must return a copy")
	}
}
