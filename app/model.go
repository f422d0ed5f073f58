package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avern/tabline/core"
	"github.com/avern/tabline/core/widgets"
	"github.com/avern/tabline/internal/config"
	"github.com/avern/tabline/internal/session"
)

// Model is the demo host around the tab widget: one controller, the
// layout-appropriate header widget, the pager, and a sqlite-backed
// session so the open tabs survive restarts.
type Model struct {
	cfg   config.Config
	ctrl  *core.Controller
	keys  *core.KeyRegistry
	store *session.Store

	axis widgets.Axis
	edge widgets.Edge

	strip    *widgets.Strip
	rail     *widgets.Rail
	pager    *widgets.Pager
	flash    widgets.Flash
	switcher *core.Switcher

	width     int
	height    int
	status    string
	statusErr bool
	scratch   int
	quitting  bool
}

func New(cfg config.Config, tabs []core.Entry, activeIndex int, store *session.Store) Model {
	ctrl := core.NewController(tabs, cfg.Tabs.MoveToPolicy())
	if activeIndex > 0 {
		ctrl.SelectByTap(activeIndex)
	}
	m := Model{
		cfg:     cfg,
		ctrl:    ctrl,
		keys:    core.NewKeyRegistry(DefaultBindings()),
		store:   store,
		axis:    cfg.Tabs.LayoutAxis(),
		edge:    cfg.Tabs.LayoutEdge(),
		strip:   widgets.NewStrip(),
		rail:    widgets.NewRail(20),
		pager:   widgets.NewPager(cfg.Tabs.ShowArrows),
		status:  "Ready",
		scratch: countScratch(tabs),
		width:   100,
		height:  32,
	}
	// Clearing the session only makes sense with a store to clear.
	if store != nil {
		m.keys.Register(core.KeyBinding{
			Keys:        []string{"ctrl+r"},
			Action:      "reset-session",
			Description: "reset",
			Scopes:      []string{scopeTabs},
		})
	}
	m.layout()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) ActiveScope() string {
	if m.switcher != nil {
		return scopeSwitcher
	}
	return scopeTabs
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

// layout distributes the window between the header widget, the pager,
// and the two bottom bars.
func (m *Model) layout() {
	bodyHeight := m.height - 2
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	switch m.axis {
	case widgets.AxisRail:
		m.rail.SetSize(m.railWidth(), bodyHeight)
		m.pager.SetSize(max(8, m.width-m.railWidth()), bodyHeight)
	default:
		m.strip.SetWidth(max(1, m.width))
		m.pager.SetSize(max(8, m.width), max(4, bodyHeight-1))
	}
}

func (m Model) railWidth() int {
	w := m.width / 4
	if w < 14 {
		w = 14
	}
	if w > 28 {
		w = 28
	}
	return w
}

// bodyHeight is the rows above the status and footer bars.
func (m Model) bodyHeight() int {
	h := m.height - 2
	if h < 1 {
		h = 1
	}
	return h
}

func countScratch(tabs []core.Entry) int {
	n := 0
	for _, t := range tabs {
		var k int
		if _, err := fmt.Sscanf(t.Title, "Scratch %d", &k); err == nil && k > n {
			n = k
		}
	}
	return n
}

// persistTabsCmd snapshots the open tab set into the session store.
func (m Model) persistTabsCmd() tea.Cmd {
	if m.store == nil {
		return nil
	}
	rows := SessionRows(m.ctrl.Tabs())
	store := m.store
	return func() tea.Msg {
		if err := store.SaveTabs(context.Background(), rows); err != nil {
			return core.StatusMsg{Text: "save session: " + err.Error(), IsErr: true}
		}
		return nil
	}
}

func (m Model) persistActiveCmd() tea.Cmd {
	if m.store == nil {
		return nil
	}
	entry, ok := m.ctrl.Active()
	if !ok {
		return nil
	}
	store := m.store
	return func() tea.Msg {
		if err := store.SetActive(context.Background(), entry.ID); err != nil {
			return core.StatusMsg{Text: "save session: " + err.Error(), IsErr: true}
		}
		return nil
	}
}
