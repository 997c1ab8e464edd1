package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/zoneterm/zone"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", DefaultFile)
	zones := []zone.Zone{
		zone.New(42000, 41500, zone.High),
		zone.New(1.5, 1.25, zone.Low),
	}

	require.NoError(t, Save(path, FromZones(zones)))

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, zones, d.ZoneList())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestSave_WritesPriorityNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, Save(path, FromZones([]zone.Zone{zone.New(2, 1, zone.Medium)})))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"zones":[{"priority":"Medium","high":2,"low":1}]}`, string(b))
}

func TestLoad_AcceptsNumericPriority(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(`{"zones":[{"priority":3,"high":10,"low":12}]}`), 0o644))

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []zone.Zone{{High: 12, Low: 10, Priority: zone.Low}}, d.ZoneList())
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.json"))
	require.ErrorIs(t, err, ErrNotFound)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err = Load(bad)
	require.ErrorIs(t, err, ErrInvalid)

	unknown := filepath.Join(dir, "unknown.json")
	require.NoError(t, os.WriteFile(unknown, []byte(`{"zones":[{"priority":"Urgent","high":1,"low":0}]}`), 0o644))
	_, err = Load(unknown)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestLoadOrCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)

	d, created, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Empty(t, d.Zones)

	require.NoError(t, Save(path, FromZones([]zone.Zone{zone.New(5, 4, zone.High)})))

	d, created, err = LoadOrCreate(path)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Len(t, d.Zones, 1)
}

func TestPriorityData_MarshalUnknown(t *testing.T) {
	_, err := PriorityData(9).MarshalJSON()
	assert.Error(t, err)
}
