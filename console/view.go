package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/zoneterm/alert"
	"github.com/iw2rmb/zoneterm/internal/textwidth"
	"github.com/iw2rmb/zoneterm/zone"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	inputPrompt      = "zone> "
	inputPlaceholder = "press i to add a zone, e.g. 42000 41500 high"
)

// layout is the outer size of every panel for the current window and state.
type layout struct {
	width     int
	leftW     int
	rightW    int
	bodyH     int
	commandsH int
	nearestH  int
}

func (m Model) layout() layout {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	l := layout{width: w, nearestH: 5}

	// Live price and input panels are 4 rows each; the status line takes one.
	bodyH := h - 8
	if m.status != "" {
		bodyH--
	}
	if bodyH < 6 {
		bodyH = 6
	}
	l.bodyH = bodyH

	l.leftW = w * 30 / 100
	if l.leftW < 24 {
		l.leftW = 24
	}
	l.rightW = w - l.leftW
	if l.rightW < 20 {
		l.rightW = 20
	}

	l.commandsH = lipgloss.Height(m.helpView()) + 3
	if l.commandsH > bodyH-3 {
		l.commandsH = bodyH - 3
	}
	return l
}

func (m Model) helpView() string {
	if m.mode == ModeEditing {
		return m.help.View(m.inputKeys)
	}
	return m.help.View(m.cfg.KeyMap)
}

// syncPanels sizes the panel viewports, refreshes their content and keeps the
// selected zone on screen.
func (m *Model) syncPanels() {
	l := m.layout()
	frameW := m.cfg.Style.Panel.GetHorizontalFrameSize()
	frameH := m.cfg.Style.Panel.GetVerticalFrameSize()

	m.help.Width = l.leftW - frameW

	// One row of each panel holds its title.
	m.zoneView.Width = max(l.leftW-frameW, 1)
	m.zoneView.Height = max(l.bodyH-l.commandsH-frameH-1, 1)
	m.zoneView.SetContent(m.renderZones())
	m.followSelection()

	m.alertView.Width = max(l.rightW-frameW, 1)
	m.alertView.Height = max(l.bodyH-l.nearestH-frameH-1, 1)
	m.alertView.SetContent(m.renderAlerts())
	m.alertView.SetYOffset(m.alertView.YOffset)
}

func (m *Model) followSelection() {
	h := m.zoneView.Height
	if h <= 0 {
		return
	}
	y := m.zoneView.YOffset
	if m.selected < y {
		m.zoneView.SetYOffset(m.selected)
		return
	}
	if m.selected >= y+h {
		m.zoneView.SetYOffset(m.selected - h + 1)
		return
	}
	// Re-clamp after zones were removed from the bottom.
	m.zoneView.SetYOffset(y)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	l := m.layout()

	top := m.renderLivePrice(l.width)
	bottom := m.renderInput(l.width)
	if status := m.renderStatus(l.width); status != "" {
		bottom = lipgloss.JoinVertical(lipgloss.Left, bottom, status)
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.panel("Commands", m.helpView(), l.leftW, l.commandsH),
		m.panel("Zones", m.zoneView.View(), l.leftW, l.bodyH-l.commandsH),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.panel("Alerts", m.alertView.View(), l.rightW, l.bodyH-l.nearestH),
		m.panel("Nearest", m.renderNearest(), l.rightW, l.nearestH),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	return lipgloss.JoinVertical(lipgloss.Left, top, body, bottom)
}

// panel draws a bordered box of outer size w x h.
func (m Model) panel(title, body string, w, h int) string {
	st := m.cfg.Style.Panel
	innerW := w - st.GetHorizontalFrameSize()
	innerH := h - st.GetVerticalFrameSize()
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}
	content := m.cfg.Style.Title.Render(title)
	if body != "" {
		content += "\n" + body
	}
	return st.
		Width(innerW + st.GetHorizontalPadding()).
		Height(innerH).
		MaxHeight(h).
		Render(content)
}

func (m Model) renderLivePrice(w int) string {
	st := m.cfg.Style
	price := "--"
	if m.priced {
		price = strconv.FormatFloat(m.price.Price, 'f', -1, 64)
	}
	mode := st.ModeNormal.Render(m.mode.String())
	if m.mode == ModeEditing {
		mode = st.ModeEdit.Render(m.mode.String())
	}
	line := st.Symbol.Render(m.cfg.Symbol) + ": " + st.Price.Render(price)
	if m.priced {
		line += st.Muted.Render("  " + m.price.At.Format("15:04:05"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, m.panel("Live Price", line, w-lipgloss.Width(mode)-1, 4), " ", mode)
}

func (m Model) renderZones() string {
	zs := m.zones.Zones()
	if len(zs) == 0 {
		return m.cfg.Style.Muted.Render("no zones")
	}
	st := m.cfg.Style
	price, priced := m.zones.Price()

	lines := make([]string, 0, len(zs))
	for i, z := range zs {
		marker, mst := " ", st.Muted
		if priced {
			switch {
			case z.Contains(price):
				marker, mst = "●", st.Inside
			case z.Low > price:
				marker, mst = "▲", st.Above
			default:
				marker, mst = "▼", st.Below
			}
		}
		row := fmt.Sprintf("%s %s", mst.Render(marker), z)
		if i == m.selected && m.mode == ModeControl {
			row = st.Selected.Render(fmt.Sprintf("%s %s", marker, z))
		}
		lines = append(lines, row)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderAlerts() string {
	items := m.alerts.Items()
	if len(items) == 0 {
		return m.cfg.Style.Muted.Render("no alerts yet")
	}
	now := m.cfg.Now()
	lines := make([]string, 0, len(items))
	for _, a := range items {
		side := m.cfg.Style.Sell.Render(a.Side.String())
		if a.Side == alert.Buy {
			side = m.cfg.Style.Buy.Render(a.Side.String())
		}
		ago := m.cfg.Style.Muted.Render(fmt.Sprintf("%6s ago", a.Elapsed(now)))
		lines = append(lines, fmt.Sprintf("%s %s @ %s in %s", ago, side, a.Price, a.Zone))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderNearest() string {
	price, ok := m.zones.Price()
	if !ok {
		return m.cfg.Style.Muted.Render("waiting for price")
	}
	st := m.cfg.Style
	up := st.Muted.Render("above: none")
	if z, ok := m.zones.UpClosest(); ok {
		up = st.Above.Render(fmt.Sprintf("above: %s  +%s", z, distance(z.Low, price)))
	}
	down := st.Muted.Render("below: none")
	if z, ok := m.zones.DownClosest(); ok {
		down = st.Below.Render(fmt.Sprintf("below: %s  -%s", z, distance(price, z.High)))
	}
	if inside := m.zones.Inside(); len(inside) > 0 {
		down += "  " + st.Inside.Render(fmt.Sprintf("inside %d", len(inside)))
	}
	return up + "\n" + down
}

func distance(a, b zone.PriceLevel) string {
	return strconv.FormatFloat(float64(a-b), 'f', 2, 64)
}

func (m Model) renderInput(w int) string {
	st := m.cfg.Style
	inner := w - st.Panel.GetHorizontalFrameSize() - textwidth.Width(inputPrompt)
	prompt := st.Prompt.Render(inputPrompt)

	if m.mode != ModeEditing {
		return m.panel("Input", prompt+st.Muted.Render(inputPlaceholder), w, 4)
	}

	visible, caret := textwidth.Window(m.input.Text(), m.input.CursorIndex(), inner)
	var b strings.Builder
	col, placed := 0, false
	for _, r := range visible {
		if !placed && col == caret {
			b.WriteString(st.Cursor.Render(string(r)))
			placed = true
		} else {
			b.WriteRune(r)
		}
		col += textwidth.RuneWidth(r)
	}
	if !placed {
		b.WriteString(st.Cursor.Render(" "))
	}
	return m.panel("Input", prompt+b.String(), w, 4)
}

func (m Model) renderStatus(w int) string {
	if m.status == "" {
		return ""
	}
	st := m.cfg.Style.Status
	if m.statusErr {
		st = m.cfg.Style.Error
	}
	return st.MaxWidth(w).Render(m.status)
}
