package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/taskdeck/internal/cli/formatter"
	"github.com/taskdeck/taskdeck/internal/query"
)

// boardKeyMap defines the key bindings of the interactive board.
type boardKeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Up     key.Binding
	Down   key.Binding
	Filter key.Binding
	Clear  key.Binding
	Quit   key.Binding
}

func defaultBoardKeyMap() boardKeyMap {
	return boardKeyMap{
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev column")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next column")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev task")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next task")),
		Filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Clear:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// boardModel is the interactive Kanban board. It requeries the engine on
// every search keystroke; the underlying task list never changes while the
// board is open.
type boardModel struct {
	ws   *workspace
	spec query.Spec
	keys boardKeyMap

	groups []query.TaskGroup
	err    error

	column    int
	cursor    int
	searching bool
	search    textinput.Model
	width     int
}

func newBoardModel(ws *workspace, spec query.Spec) *boardModel {
	search := textinput.New()
	search.Placeholder = "search tasks"
	search.Prompt = "/ "
	search.CharLimit = 80

	m := &boardModel{
		ws:     ws,
		spec:   spec,
		keys:   defaultBoardKeyMap(),
		search: search,
		width:  120,
	}
	m.requery()
	return m
}

func (m *boardModel) Init() tea.Cmd { return nil }

// requery reruns the grouped query with the current search text applied on
// top of the base spec.
func (m *boardModel) requery() {
	spec := m.spec
	if text := m.search.Value(); text != "" {
		spec.Search = text
	}
	m.groups, m.err = m.ws.Engine.GroupTasks(m.ws.Tasks, spec)
	m.clampCursor()
}

func (m *boardModel) clampCursor() {
	if len(m.groups) == 0 {
		m.column, m.cursor = 0, 0
		return
	}
	if m.column >= len(m.groups) {
		m.column = len(m.groups) - 1
	}
	if n := len(m.groups[m.column].Tasks); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			switch {
			case msg.Type == tea.KeyEnter:
				m.searching = false
				m.search.Blur()
				return m, nil
			case key.Matches(msg, m.keys.Clear):
				m.searching = false
				m.search.Blur()
				m.search.SetValue("")
				m.requery()
				return m, nil
			}
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.requery()
			return m, cmd
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Filter):
			m.searching = true
			return m, m.search.Focus()
		case key.Matches(msg, m.keys.Clear):
			m.search.SetValue("")
			m.requery()
			return m, nil
		case key.Matches(msg, m.keys.Left):
			if m.column > 0 {
				m.column--
				m.cursor = 0
			}
			return m, nil
		case key.Matches(msg, m.keys.Right):
			if m.column < len(m.groups)-1 {
				m.column++
				m.cursor = 0
			}
			return m, nil
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if len(m.groups) > 0 && m.cursor < len(m.groups[m.column].Tasks)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	return m, nil
}

func (m *boardModel) View() string {
	if m.err != nil {
		return formatter.StyleRed.Render("error: "+m.err.Error()) + "\n"
	}

	colWidth := 28
	if len(m.groups) > 0 && m.width/len(m.groups) > colWidth {
		colWidth = m.width / len(m.groups)
	}

	columns := make([]string, 0, len(m.groups))
	for i, g := range m.groups {
		cursor := -1
		if i == m.column && !m.searching {
			cursor = m.cursor
		}
		columns = append(columns, renderColumn(m.ws, g, colWidth, cursor))
	}
	board := lipgloss.JoinHorizontal(lipgloss.Top, columns...)

	var footer string
	if m.searching {
		footer = m.search.View()
	} else {
		help := []string{
			m.keys.Left.Help().Key + "/" + m.keys.Right.Help().Key + " move",
			m.keys.Filter.Help().Key + " " + m.keys.Filter.Help().Desc,
			m.keys.Quit.Help().Key + " " + m.keys.Quit.Help().Desc,
		}
		if m.search.Value() != "" {
			help = append([]string{"filter: " + m.search.Value()}, help...)
		}
		footer = formatter.Dim(strings.Join(help, "  ·  "))
	}

	return board + "\n" + footer + "\n"
}
