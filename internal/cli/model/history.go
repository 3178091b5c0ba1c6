// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/navkit/internal/cli/styles"
	"github.com/bnema/navkit/internal/domain/entity"
)

// visitItem adapts a visit to the bubbles list item interface.
type visitItem struct {
	visit *entity.Visit
}

func (i visitItem) Title() string { return i.visit.URI }

func (i visitItem) Description() string {
	return fmt.Sprintf("%d visits · last seen %s", i.visit.Count, humanizeSince(i.visit.LastSeen))
}

func (i visitItem) FilterValue() string { return i.visit.URI }

// historyKeyMap defines extra key bindings for the history browser.
type historyKeyMap struct {
	Quit key.Binding
}

// HistoryModel is the Bubble Tea model for the interactive visit browser.
type HistoryModel struct {
	list  list.Model
	keys  historyKeyMap
	theme *styles.Theme

	// Selected is set when the user picks an entry before quitting.
	Selected string
}

// NewHistoryModel creates a visit browser over the given entries.
func NewHistoryModel(theme *styles.Theme, visits []*entity.Visit) HistoryModel {
	items := make([]list.Item, 0, len(visits))
	for _, v := range visits {
		items = append(items, visitItem{visit: v})
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = theme.ListItemSelected
	delegate.Styles.SelectedDesc = theme.ListItemSelected.Foreground(theme.Muted)

	l := list.New(items, delegate, 0, 0)
	l.Title = "Visited locations"
	l.Styles.Title = theme.Title

	return HistoryModel{
		list: l,
		keys: historyKeyMap{
			Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		},
		theme: theme,
	}
}

func (m HistoryModel) Init() tea.Cmd {
	return nil
}

func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		// Let the list's filter input consume keys first.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case msg.String() == "enter":
			if item, ok := m.list.SelectedItem().(visitItem); ok {
				m.Selected = item.visit.URI
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m HistoryModel) View() string {
	return m.list.View()
}

func humanizeSince(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
