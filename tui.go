package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// keyMap defines keybindings for the explorer. Everything else is typed
// into the command prompt.
type keyMap struct {
	Run     key.Binding
	Help    key.Binding
	Suspend key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Run: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run command"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "toggle help"),
		),
		Suspend: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("ctrl+z", "suspend"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Run, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Run, k.Help},
		{k.Suspend, k.Quit},
	}
}

type model struct {
	vs       *ViewState
	filename string

	input textinput.Model
	keys  keyMap
	help  help.Model

	width    int
	height   int
	renderer *lipgloss.Renderer

	// Last command outcome shown under the table.
	status    string
	statusErr bool

	// Transient head view from "show N"; cleared by the next command.
	head *Dataset

	noColor       bool
	typeColors    map[DataType]lipgloss.Color
	dimTypeColors map[DataType]lipgloss.Color
	nullColor     lipgloss.Color
}

func newModel(vs *ViewState, config *Config, filename string, noColor bool) model {
	input := textinput.New()
	input.Focus()
	input.Prompt = ">> "
	input.Placeholder = "type a command, e.g. filter Age>=30 (help for a list)"

	typeColors, dimTypeColors, nullColor := applyConfigColors(config)

	return model{
		vs:            vs,
		filename:      filename,
		input:         input,
		keys:          defaultKeyMap(),
		help:          help.New(),
		width:         80,
		height:        24,
		renderer:      lipgloss.NewRenderer(os.Stdout),
		status:        "Loaded. Type 'help'.",
		noColor:       noColor,
		typeColors:    typeColors,
		dimTypeColors: dimTypeColors,
		nullColor:     nullColor,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Suspend):
			return m, tea.Suspend
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Run):
			line := m.input.Value()
			m.input.Reset()
			return m.dispatch(line)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) dispatch(line string) (tea.Model, tea.Cmd) {
	m.head = nil
	resp, err := execCommand(m.vs, line)
	if err != nil {
		m.status = err.Error()
		m.statusErr = true
		return m, nil
	}
	if resp.quit {
		return m, tea.Quit
	}
	m.status = resp.message
	m.statusErr = false
	m.head = resp.head
	return m, nil
}

func (m model) View() string {
	display := m.vs.ExportPage()
	if m.head != nil {
		display = *m.head
	}

	var b strings.Builder
	b.WriteString(m.renderTable(display))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	if m.status != "" {
		if m.statusErr {
			errStyle := m.renderer.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
			b.WriteString(errStyle.Render(m.status))
		} else {
			b.WriteString(m.status)
		}
		b.WriteString("\n")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m model) statusLine() string {
	p := m.vs.Pager()
	status := fmt.Sprintf("%s | Page %d/%d | Rows: %d | Page size: %d",
		m.filename, p.Page(), p.TotalPages(), m.vs.Current().Len(), p.Size())
	if n := len(m.vs.Filters()); n > 0 {
		status += fmt.Sprintf(" [FILTERED: %d filters]", n)
	}
	return status
}

func (m model) renderTable(ds Dataset) string {
	if len(ds.Schema) == 0 {
		return "No data to display"
	}

	baseStyle := m.renderer.NewStyle().Padding(0, 1)
	headerStyle := baseStyle.Foreground(lipgloss.Color("252")).Bold(true)

	rows := make([][]string, len(ds.Records))
	for i, rec := range ds.Records {
		row := make([]string, len(rec))
		for j, v := range rec {
			row[j] = v.String()
		}
		rows[i] = row
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(m.renderer.NewStyle().Foreground(lipgloss.Color("238"))).
		Headers(ds.Schema.Names()...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if m.noColor {
				return baseStyle
			}
			if row < len(ds.Records) && col < len(ds.Records[row]) && ds.Records[row][col].IsNull() {
				return baseStyle.Foreground(m.nullColor)
			}
			colType := TypeString
			if col < len(ds.Schema) {
				colType = ds.Schema[col].Type
			}
			if row%2 == 0 {
				return baseStyle.Foreground(m.dimTypeColors[colType])
			}
			return baseStyle.Foreground(m.typeColors[colType])
		})

	return t.String()
}
