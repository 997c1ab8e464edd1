package console

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/zoneterm/lineinput"
	"github.com/iw2rmb/zoneterm/market"
	"github.com/iw2rmb/zoneterm/store"
	"github.com/iw2rmb/zoneterm/zone"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncPanels()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case market.SampleMsg:
		m.processSample(market.Sample(msg))
		if m.cfg.NextSample == nil {
			return m, nil
		}
		return m, m.cfg.NextSample()
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.mode == ModeEditing {
			return m.processEditing(msg)
		}
		return m.processControls(msg)
	}
	return m, nil
}

func (m Model) processEditing(msg tea.KeyMsg) (Model, tea.Cmd) {
	for _, k := range lineinput.KeysFromMsg(m.inputKeys, msg) {
		sig, ok := m.input.ProcessKey(k)
		if !ok {
			continue
		}
		switch sig.Kind {
		case lineinput.Commit:
			m.commit(sig.Text)
		case lineinput.Cancel:
			m.mode = ModeControl
			m.setStatus("")
		}
		// Remaining runes of a paste are dropped once the session ends.
		break
	}
	m.log.Debug("input", slog.String("state", m.input.String()))
	return m, nil
}

func (m *Model) commit(text string) {
	if strings.TrimSpace(text) == "" {
		m.mode = ModeControl
		m.setStatus("")
		return
	}

	z, err := zone.Parse(text)
	if err != nil {
		// Stay in editing mode so the zone can be retyped.
		m.setError(err)
		m.log.Info("zone rejected", slog.String("input", text), slog.Any("error", err))
		return
	}

	m.zones.Add(z)
	m.selected = m.zones.Len() - 1
	m.mode = ModeControl
	m.log.Info("zone added", slog.String("zone", z.String()))
	if err := m.persist(); err != nil {
		return
	}
	m.setStatus("added " + z.String())
}

func (m Model) processControls(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, km.Edit):
		m.mode = ModeEditing
		m.input.Reset()
		m.setStatus("")
	case key.Matches(msg, km.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, km.Down):
		if m.selected < m.zones.Len()-1 {
			m.selected++
		}
	case key.Matches(msg, km.Delete):
		m.deleteSelected()
	case key.Matches(msg, km.AlertsUp):
		m.alertView.SetYOffset(m.alertView.YOffset - m.alertView.Height)
	case key.Matches(msg, km.AlertsDown):
		m.alertView.SetYOffset(m.alertView.YOffset + m.alertView.Height)
	case key.Matches(msg, km.Save):
		if err := m.persist(); err == nil {
			m.setStatus(fmt.Sprintf("saved %d zones", m.zones.Len()))
		}
	case key.Matches(msg, km.ToggleHelp):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) deleteSelected() {
	zs := m.zones.Zones()
	if m.selected < 0 || m.selected >= len(zs) {
		return
	}
	removed := zs[m.selected]
	m.zones.Remove(m.selected)
	if m.selected >= m.zones.Len() && m.selected > 0 {
		m.selected--
	}
	m.log.Info("zone removed", slog.String("zone", removed.String()))
	if err := m.persist(); err != nil {
		return
	}
	m.setStatus("removed " + removed.String())
}

func (m *Model) persist() error {
	if m.cfg.SaveFile == "" {
		return nil
	}
	err := m.cfg.Save(m.cfg.SaveFile, store.FromZones(m.zones.Zones()))
	if err != nil {
		m.setError(fmt.Errorf("saving zones: %w", err))
		m.log.Error("save failed", slog.String("path", m.cfg.SaveFile), slog.Any("error", err))
	}
	return err
}

func (m *Model) processSample(s market.Sample) {
	if s.Err != nil {
		m.setError(fmt.Errorf("price feed: %w", s.Err))
		return
	}
	if m.statusErr && strings.HasPrefix(m.status, "price feed:") {
		m.setStatus("")
	}

	m.price = s
	m.priced = true
	m.samples++
	p := zone.PriceLevel(s.Price)

	if m.samples%m.cfg.AnalyzeEvery != 0 {
		m.zones.Update(p)
		return
	}
	alerts := m.strategy.Analyze(p, m.cfg.Now())
	for _, a := range alerts {
		m.log.Info("zone alert", slog.String("side", a.Side.String()),
			slog.Float64("price", float64(a.Price)), slog.String("zone", a.Zone.String()))
	}
	m.alerts.Push(alerts...)
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
}
