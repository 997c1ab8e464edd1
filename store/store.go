// Package store persists the zone configuration as JSON.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/iw2rmb/zoneterm/zone"
)

// DefaultFile is the save file used when no path is configured.
const DefaultFile = "bot_data.json"

var (
	ErrNotFound = errors.New("store: save file does not exist")
	ErrInvalid  = errors.New("store: save file is not valid")
)

// Data is the on-disk document.
type Data struct {
	Zones []ZoneData `json:"zones"`
}

// ZoneData is the persisted form of a zone.
type ZoneData struct {
	Priority PriorityData `json:"priority"`
	High     float64      `json:"high"`
	Low      float64      `json:"low"`
}

// PriorityData serializes a zone priority by name ("High", "Medium", "Low").
type PriorityData zone.Priority

var priorityByName = map[string]zone.Priority{
	"High":   zone.High,
	"Medium": zone.Medium,
	"Low":    zone.Low,
}

func (p PriorityData) MarshalJSON() ([]byte, error) {
	for name, prio := range priorityByName {
		if prio == zone.Priority(p) {
			return json.Marshal(name)
		}
	}
	return nil, fmt.Errorf("store: unknown priority %d", int(p))
}

func (p *PriorityData) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err == nil {
		prio, ok := priorityByName[name]
		if !ok {
			return fmt.Errorf("unknown priority %q", name)
		}
		*p = PriorityData(prio)
		return nil
	}

	// Numeric discriminants (1 = High ... 3 = Low) are accepted as well.
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("priority must be a name or number: %s", b)
	}
	if !zone.Priority(n).Valid() {
		return fmt.Errorf("unknown priority %d", n)
	}
	*p = PriorityData(n)
	return nil
}

// FromZones converts zones into their persisted form.
func FromZones(zones []zone.Zone) Data {
	d := Data{Zones: make([]ZoneData, 0, len(zones))}
	for _, z := range zones {
		d.Zones = append(d.Zones, ZoneData{
			Priority: PriorityData(z.Priority),
			High:     float64(z.High),
			Low:      float64(z.Low),
		})
	}
	return d
}

// ZoneList converts persisted zones back to the domain model.
func (d Data) ZoneList() []zone.Zone {
	out := make([]zone.Zone, 0, len(d.Zones))
	for _, zd := range d.Zones {
		out = append(out, zone.New(zone.PriceLevel(zd.High), zone.PriceLevel(zd.Low), zone.Priority(zd.Priority)))
	}
	return out
}

// Load reads the save file at path.
func Load(path string) (Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Data{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Data{}, fmt.Errorf("store: reading %s: %w", path, err)
	}

	var d Data
	if err := json.Unmarshal(b, &d); err != nil {
		return Data{}, fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
	}
	return d, nil
}

// New creates an empty save file at path and returns its data.
func New(path string) (Data, error) {
	d := Data{Zones: []ZoneData{}}
	if err := Save(path, d); err != nil {
		return Data{}, err
	}
	return d, nil
}

// LoadOrCreate loads path, creating an empty save file when it is missing.
// created reports whether a new file was written.
func LoadOrCreate(path string) (d Data, created bool, err error) {
	d, err = Load(path)
	if err == nil {
		return d, false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Data{}, false, err
	}
	d, err = New(path)
	return d, err == nil, err
}

// Save writes d to path, replacing the previous file atomically.
func Save(path string, d Data) error {
	if d.Zones == nil {
		d.Zones = []ZoneData{}
	}
	b, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encoding: %w", err)
	}
	b = append(b, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("store: creating %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("store: creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("store: writing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("store: closing %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("store: replacing %s: %w", path, err)
	}
	return nil
}
