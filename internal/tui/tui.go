// Package tui is the interactive list: it turns key presses into commands and
// redraws whenever the store announces a change.
package tui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todo/internal/app"
	"github.com/idilsaglam/todo/internal/command"
	"github.com/idilsaglam/todo/internal/config"
	"github.com/idilsaglam/todo/internal/model"
)

// row adapts model.Item to bubbles/list.Item
type row struct {
	text string
}

func (r row) FilterValue() string { return r.text }

// Custom delegate to control how rows render (single line)
type rowDelegate struct{}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, _ := item.(row)
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+bulletStyle.Render(bullet)+" "+r.text)
}

// inputField exposes the shared text input to the dispatcher.
type inputField struct {
	ti *textinput.Model
}

func (f inputField) Value() string { return f.ti.Value() }
func (f inputField) Clear()        { f.ti.SetValue("") }

// renderer is the store observer that rebuilds the visible rows.
type renderer struct {
	source interface{ Items() model.Snapshot }
	rows   []list.Item
	stale  bool
}

func (r *renderer) Notify() error {
	items := r.source.Items().Items()
	rows := make([]list.Item, 0, len(items))
	for _, it := range items {
		rows = append(rows, row{text: it.Text})
	}
	r.rows = rows
	r.stale = true
	return nil
}

var (
	addBind    = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	deleteBind = key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "delete"))
	undoBind   = key.NewBinding(key.WithKeys("u", "ctrl+z"), key.WithHelp("u", "undo"))
	quitBind   = key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit"))
)

// Model is the bubbletea model for the list screen.
type Model struct {
	app    *app.App
	list   list.Model
	ti     *textinput.Model
	render *renderer

	adding bool
	status string
	err    error

	width, height int
}

func newTextInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New item..."
	ti.CharLimit = 200
	return ti
}

func newModel(a *app.App, ti *textinput.Model) Model {
	r := &renderer{source: a.Store}
	_ = r.Notify()
	a.Store.AddObserver(r)

	l := list.New(r.rows, rowDelegate{}, 0, 0)
	r.stale = false
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.SetStatusBarItemName("item", "items")
	// d and u belong to delete and undo
	l.KeyMap.NextPage.SetKeys("right", "l", "pgdown", "f")
	l.KeyMap.PrevPage.SetKeys("left", "h", "pgup", "b")
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{addBind, deleteBind, undoBind} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{addBind, deleteBind, undoBind} }

	m := Model{app: a, list: l, ti: ti, render: r, width: 80, height: 24}
	m.list.Title = m.header()
	return m
}

// Run opens the list described by cfg and blocks until the user quits.
func Run(cfg config.Config, logger *slog.Logger) error {
	ti := newTextInput()
	a, err := app.New(cfg, inputField{ti: &ti}, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	p := tea.NewProgram(newModel(a, &ti), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}

// Err is the failure that ended the session, if any.
func (m Model) Err() error { return m.err }

func (m Model) header() string {
	return fmt.Sprintf("%s   %s %d",
		titleStyle.Render("Todos"),
		accentStyle.Render("Total"), m.app.Store.Len(),
	)
}

// execute runs cmd and pulls the re-rendered rows into the list.
// Command failures end the session.
func (m Model) execute(cmd command.Command) (Model, tea.Cmd) {
	if err := m.app.Execute(cmd); err != nil {
		m.err = err
		return m, tea.Quit
	}
	var cmds []tea.Cmd
	if m.render.stale {
		cmds = append(cmds, m.list.SetItems(m.render.rows))
		m.render.stale = false
		m.list.Title = m.header()
	}
	return m, tea.Batch(cmds...)
}

// Update and View implement Bubble Tea's Model
func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}

	// add mode
	if m.adding {
		var cmd tea.Cmd
		if x, ok := msg.(tea.KeyMsg); ok {
			switch x.String() {
			case "enter":
				typed := strings.TrimSpace(m.ti.Value())
				next, addCmd := m.execute(command.Add())
				switch {
				case next.err != nil:
					return next, addCmd
				case typed == "":
					next.status = "Text cannot be empty"
				case next.ti.Value() != "":
					next.status = fmt.Sprintf("%q is already in the list", typed)
				default:
					next.status = ""
					next.adding = false
					next.ti.Blur()
					next.resize()
				}
				return next, addCmd
			case "esc":
				m.adding = false
				m.status = ""
				m.ti.SetValue("")
				m.ti.Blur()
				m.resize()
				return m, nil
			}
		}
		*m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	if x, ok := msg.(tea.KeyMsg); ok {
		m.status = ""
		switch {
		case key.Matches(x, quitBind):
			return m, tea.Quit
		case key.Matches(x, addBind):
			m.adding = true
			m.ti.SetValue("")
			m.resize()
			return m, m.ti.Focus()
		case key.Matches(x, deleteBind):
			if r, ok := m.list.SelectedItem().(row); ok {
				return m.execute(command.Delete(r.text))
			}
			return m, nil
		case key.Matches(x, undoBind):
			if !m.app.History.CanStepBack() {
				m.status = "Nothing to undo"
				return m, nil
			}
			return m.execute(command.Undo())
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) resize() {
	listHeight := m.height - 4
	if m.adding {
		listHeight -= 3
	}
	if m.status != "" {
		listHeight--
	}
	m.list.SetSize(max(m.width-4, 10), max(listHeight, 3))
}

func (m Model) View() string {
	content := m.list.View()
	if m.adding {
		bar := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
		content += "\n" + bar.Render("Add new item  "+mutedStyle.Render("enter save · esc cancel")+"\n"+m.ti.View())
	}
	if m.status != "" {
		content += "\n" + errorStyle.Render(m.status)
	}
	if m.err != nil {
		content += "\n" + errorStyle.Render(m.err.Error())
	}
	return panelString(content)
}
