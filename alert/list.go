package alert

// List keeps the most recent alerts, newest first.
type List struct {
	items []Alert
	cap   int
}

func NewList(capacity int) *List {
	if capacity <= 0 {
		capacity = 50
	}
	return &List{cap: capacity}
}

// Push prepends alerts in order, so the last one becomes the newest.
func (l *List) Push(alerts ...Alert) {
	for _, a := range alerts {
		l.items = append([]Alert{a}, l.items...)
	}
	if len(l.items) > l.cap {
		l.items = l.items[:l.cap]
	}
}

// Items returns the alerts newest first. The slice must not be modified.
func (l *List) Items() []Alert { return l.items }

func (l *List) Len() int { return len(l.items) }

// Latest returns the newest alert.
func (l *List) Latest() (Alert, bool) {
	if len(l.items) == 0 {
		return Alert{}, false
	}
	return l.items[0], true
}
