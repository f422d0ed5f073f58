package app

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avern/tabline/core"
	"github.com/avern/tabline/core/widgets"
	"github.com/avern/tabline/internal/config"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil
	case core.StatusMsg:
		if msg.IsErr {
			m.status = msg.Text
			m.statusErr = true
		} else {
			m.SetStatus(msg.Text)
		}
		return m, nil
	case core.SelectionChangedMsg:
		m.flash.Ignite(msg.Index, time.Now())
		if entry, ok := m.ctrl.Active(); ok {
			m.SetStatus("Switched to " + entry.Title)
		}
		return m, tea.Batch(widgets.FlashTick(), m.persistActiveCmd())
	case core.HandleReplacedMsg:
		m.switcher = nil
		m.SetStatus(fmt.Sprintf("%d tabs open", msg.Handle.Count))
		return m, tea.Batch(m.persistTabsCmd(), m.persistActiveCmd())
	case core.HandleAttachedMsg:
		if msg.Generation != m.ctrl.Handle().Generation {
			return m, nil
		}
		m.flash.Ignite(msg.Target, time.Now())
		return m, widgets.FlashTick()
	case widgets.FlashTickMsg:
		if m.flash.Active(msg.Time) {
			return m, widgets.FlashTick()
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.switcher != nil {
		result := m.switcher.HandleKey(msg.String())
		switch result.Action {
		case core.SwitcherActionSelected:
			m.switcher = nil
			m.SetStatus("Switched to " + result.Title)
			return m, m.ctrl.SelectByTap(result.Index)
		case core.SwitcherActionCancelled:
			m.switcher = nil
			return m, nil
		}
		return m, nil
	}

	scope := m.ActiveScope()
	switch {
	case m.keys.IsAction(msg, "quit", scope):
		m.quitting = true
		return m, tea.Quit
	case m.keys.IsAction(msg, "step-forward", scope):
		return m, m.ctrl.Step(core.StepForward)
	case m.keys.IsAction(msg, "step-backward", scope):
		return m, m.ctrl.Step(core.StepBackward)
	case m.keys.IsAction(msg, "add-tab", scope):
		return m.addTab()
	case m.keys.IsAction(msg, "close-tab", scope):
		return m.closeActiveTab()
	case m.keys.IsAction(msg, "open-switcher", scope):
		m.switcher = core.NewSwitcher(m.ctrl.Tabs())
		return m, nil
	case m.keys.IsAction(msg, "toggle-axis", scope):
		return m.toggleAxis()
	case m.keys.IsAction(msg, "reset-session", scope):
		return m.resetSession()
	}

	if k := msg.String(); len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
		return m, m.ctrl.SelectByTap(int(k[0]-'1'))
	}
	return m, nil
}

func (m Model) addTab() (tea.Model, tea.Cmd) {
	m.scratch++
	tabs := append([]core.Entry(nil), m.ctrl.Tabs()...)
	tabs = append(tabs, NewScratchTab(m.scratch, len(tabs)))
	return m, m.ctrl.Reconcile(tabs)
}

func (m Model) closeActiveTab() (tea.Model, tea.Cmd) {
	if m.ctrl.Len() == 0 {
		return m, nil
	}
	selected := m.ctrl.Selected()
	tabs := make([]core.Entry, 0, m.ctrl.Len()-1)
	for i, t := range m.ctrl.Tabs() {
		if i == selected {
			continue
		}
		t.Position = len(tabs)
		tabs = append(tabs, t)
	}
	return m, m.ctrl.Reconcile(tabs)
}

// toggleAxis flips between the row strip and the vertical rail and
// persists the choice so the next run starts in the same layout.
func (m Model) toggleAxis() (tea.Model, tea.Cmd) {
	if m.axis == widgets.AxisRail {
		m.axis = widgets.AxisRow
		m.edge = widgets.EdgeTop
		m.cfg.Tabs.Axis = "row"
		m.cfg.Tabs.Edge = "top"
	} else {
		m.axis = widgets.AxisRail
		m.edge = widgets.EdgeLeft
		m.cfg.Tabs.Axis = "rail"
		m.cfg.Tabs.Edge = "left"
	}
	m.layout()
	m.SetStatus("Layout: " + m.cfg.Tabs.Axis)
	cfg := m.cfg
	return m, func() tea.Msg {
		if err := config.Save(cfg); err != nil {
			return core.StatusMsg{Text: "save config: " + err.Error(), IsErr: true}
		}
		return nil
	}
}

// resetSession drops the persisted session and reconciles back to the
// default tab set.
func (m Model) resetSession() (tea.Model, tea.Cmd) {
	m.scratch = 0
	cmds := []tea.Cmd{m.ctrl.Reconcile(DefaultTabs())}
	if m.store != nil {
		store := m.store
		cmds = append(cmds, func() tea.Msg {
			if err := store.Clear(context.Background()); err != nil {
				return core.StatusMsg{Text: "clear session: " + err.Error(), IsErr: true}
			}
			return core.StatusMsg{Text: "Session cleared"}
		})
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.switcher != nil {
		return m, nil
	}

	x, y := msg.X, msg.Y
	bodyHeight := m.bodyHeight()
	if y >= bodyHeight {
		return m, nil
	}

	if m.axis == widgets.AxisRail {
		railWidth := m.railWidth()
		if m.edge == widgets.EdgeRight {
			if x >= m.width-railWidth {
				return m, m.rail.Click(y, m.ctrl)
			}
			return m, m.pager.Click(x, y, m.ctrl)
		}
		if x < railWidth {
			return m, m.rail.Click(y, m.ctrl)
		}
		return m, m.pager.Click(x-railWidth, y, m.ctrl)
	}

	stripRow := 0
	pagerTop := 1
	if m.edge == widgets.EdgeBottom {
		stripRow = bodyHeight - 1
		pagerTop = 0
	}
	if y == stripRow {
		return m, m.strip.Click(x, m.ctrl)
	}
	return m, m.pager.Click(x, y-pagerTop, m.ctrl)
}
