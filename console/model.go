package console

import (
	"log/slog"
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/zoneterm/alert"
	"github.com/iw2rmb/zoneterm/lineinput"
	"github.com/iw2rmb/zoneterm/market"
	"github.com/iw2rmb/zoneterm/store"
	"github.com/iw2rmb/zoneterm/zone"
)

// Mode is the console input mode.
type Mode int

const (
	ModeControl Mode = iota
	ModeEditing
)

func (m Mode) String() string {
	if m == ModeEditing {
		return "EDIT"
	}
	return "CONTROL"
}

// Config configures the console Model.
type Config struct {
	Symbol   string
	SaveFile string
	Zones    []zone.Zone

	// AnalyzeEvery runs the strategy on every Nth price sample. Default: 1.
	AnalyzeEvery  int
	AlertCapacity int

	// NextSample returns a command delivering the next market.SampleMsg.
	// It is re-issued after every sample. Nil disables live prices.
	NextSample func() tea.Cmd

	// Save persists zones. Default: store.Save.
	Save func(path string, d store.Data) error

	Style  Styles
	KeyMap KeyMap
	Logger *slog.Logger
	Now    func() time.Time
}

// Model is the Bubble Tea model for the whole terminal UI.
type Model struct {
	cfg Config
	log *slog.Logger

	mode      Mode
	input     *lineinput.Engine
	inputKeys lineinput.KeyMap
	help      help.Model

	zones    *zone.Manager
	strategy alert.Strategy
	alerts   *alert.List
	selected int

	// Scrollable bodies of the Zones and Alerts panels.
	zoneView  viewport.Model
	alertView viewport.Model

	price   market.Sample
	priced  bool
	samples int

	status    string
	statusErr bool

	width, height int
	quitting      bool
}

func New(cfg Config) Model {
	if cfg.AnalyzeEvery < 1 {
		cfg.AnalyzeEvery = 1
	}
	if cfg.Save == nil {
		cfg.Save = store.Save
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	cfg.KeyMap = normalizeKeyMap(cfg.KeyMap)
	cfg.Style = normalizeStyles(cfg.Style)
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	zm := zone.FromZones(cfg.Zones)
	m := Model{
		cfg:       cfg,
		log:       log.With(slog.String("component", "console")),
		mode:      ModeControl,
		input:     lineinput.New(),
		inputKeys: lineinput.DefaultKeyMap(),
		help:      help.New(),
		zones:     zm,
		strategy:  alert.NewZoneStrategy(zm),
		alerts:    alert.NewList(cfg.AlertCapacity),
		zoneView:  viewport.New(0, 0),
		alertView: viewport.New(0, 0),
	}
	m.syncPanels()
	return m
}

func (m Model) Init() tea.Cmd {
	if m.cfg.NextSample == nil {
		return nil
	}
	return m.cfg.NextSample()
}

// Mode returns the current input mode.
func (m Model) Mode() Mode { return m.mode }

// Input exposes the line engine for read-only inspection.
func (m Model) Input() *lineinput.Engine { return m.input }

// Zones returns the configured zones.
func (m Model) Zones() []zone.Zone { return m.zones.Zones() }

// Alerts returns the alerts newest first.
func (m Model) Alerts() []alert.Alert { return m.alerts.Items() }

// Status returns the status line text and whether it reports an error.
func (m Model) Status() (string, bool) { return m.status, m.statusErr }

// Quitting reports whether the user asked to exit.
func (m Model) Quitting() bool { return m.quitting }

func normalizeKeyMap(km KeyMap) KeyMap {
	if reflect.DeepEqual(km, KeyMap{}) {
		return DefaultKeyMap()
	}
	return km
}

func normalizeStyles(st Styles) Styles {
	if reflect.DeepEqual(st, Styles{}) {
		return DefaultStyles(nil)
	}
	return st
}
