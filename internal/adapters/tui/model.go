// Package tui provides the terminal user interface implementation
// using the Bubbletea framework.
package tui

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/tomato/internal/config"
	"github.com/xvierd/tomato/internal/domain"
)

// Controller is the part of the timer service the screen drives.
type Controller interface {
	State() domain.TimerState
	Toggle() (domain.TimerState, error)
	Reset() domain.TimerState
	Foreground() domain.TimerState
	Background() domain.TimerState
	EditDuration(m domain.Mode, text string) domain.TimerState
	CommitDuration(m domain.Mode, text string) domain.TimerState
}

// resolveTheme fills any empty string fields in the given ThemeConfig with defaults.
// If theme is nil, returns the full default theme.
func resolveTheme(theme *config.ThemeConfig) config.ThemeConfig {
	defaults := config.DefaultThemeConfig()
	if theme == nil {
		return defaults
	}
	resolved := *theme
	rv := reflect.ValueOf(&resolved).Elem()
	dv := reflect.ValueOf(defaults)
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.String && f.String() == "" {
			f.SetString(dv.Field(i).String())
		}
	}
	return resolved
}

// tickMsg is sent on every timer tick.
type tickMsg time.Time

// field indexes the duration inputs.
type field int

const (
	fieldNone field = iota - 1
	fieldWork
	fieldBreak
)

func (f field) mode() domain.Mode {
	if f == fieldBreak {
		return domain.ModeBreak
	}
	return domain.ModeWork
}

// Model represents the TUI state.
type Model struct {
	ctl      Controller
	state    domain.TimerState
	theme    config.ThemeConfig
	progress progress.Model
	inputs   [2]textinput.Model
	editing  field
	lastErr  error
	width    int
	height   int
}

// NewModel creates a new TUI model.
func NewModel(ctl Controller, theme *config.ThemeConfig) Model {
	m := Model{
		ctl:      ctl,
		state:    ctl.State(),
		theme:    resolveTheme(theme),
		progress: progress.New(progress.WithDefaultGradient()),
		editing:  fieldNone,
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.CharLimit = 4
		ti.Width = 4
		ti.Prompt = ""
		ti.Placeholder = strconv.Itoa(domain.BlankDurationMinutes)
		m.inputs[i] = ti
	}
	m.syncInputs()
	return m
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// syncInputs shows the stored durations in every field not being edited.
func (m *Model) syncInputs() {
	values := [2]int{m.state.WorkMinutes, m.state.BreakMinutes}
	for i := range m.inputs {
		if field(i) == m.editing {
			continue
		}
		m.inputs[i].SetValue(strconv.Itoa(values[i]))
	}
}

func (m *Model) setState(s domain.TimerState) {
	m.state = s
	m.syncInputs()
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing != fieldNone {
			return m.updateEditing(msg)
		}
		return m.updateKeys(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = max(min(msg.Width-4, 60), 10)

	case tickMsg:
		m.setState(m.ctl.State())
		return m, tickCmd()

	case tea.FocusMsg, tea.ResumeMsg:
		m.setState(m.ctl.Foreground())

	case tea.BlurMsg:
		m.setState(m.ctl.Background())
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.lastErr = nil

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "ctrl+z":
		m.setState(m.ctl.Background())
		return m, tea.Suspend
	case " ", "s":
		state, err := m.ctl.Toggle()
		m.lastErr = err
		m.setState(state)
	case "r":
		m.setState(m.ctl.Reset())
	case "w":
		return m, m.focus(fieldWork)
	case "b":
		return m, m.focus(fieldBreak)
	}
	return m, nil
}

func (m *Model) focus(f field) tea.Cmd {
	m.editing = f
	in := &m.inputs[f]
	in.CursorEnd()
	return in.Focus()
}

// updateEditing routes keys to the focused duration field. Every change is
// applied at once; leaving the field commits it.
func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.editing
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter", "esc", "tab":
		text := m.inputs[f].Value()
		m.inputs[f].Blur()
		m.editing = fieldNone
		m.setState(m.ctl.CommitDuration(f.mode(), text))
		return m, nil
	}

	before := m.inputs[f].Value()
	var cmd tea.Cmd
	m.inputs[f], cmd = m.inputs[f].Update(msg)
	if after := m.inputs[f].Value(); after != before {
		m.setState(m.ctl.EditDuration(f.mode(), after))
	}
	return m, cmd
}

// modeColor returns the color for the current mode, accounting for pause state.
func (m Model) modeColor() lipgloss.Color {
	if m.state.IsPaused() {
		return lipgloss.Color(m.theme.ColorPaused)
	}
	if m.state.Mode == domain.ModeBreak {
		return lipgloss.Color(m.theme.ColorBreak)
	}
	return lipgloss.Color(m.theme.ColorWork)
}

func (m Model) progressBar() progress.Model {
	var pbar progress.Model
	switch {
	case m.state.IsPaused():
		pbar = progress.New(progress.WithGradient(m.theme.PausedGradientStart, m.theme.PausedGradientEnd))
	case m.state.Mode == domain.ModeBreak:
		pbar = progress.New(progress.WithGradient(m.theme.BreakGradientStart, m.theme.BreakGradientEnd))
	default:
		pbar = progress.New(progress.WithGradient(m.theme.WorkGradientStart, m.theme.WorkGradientEnd))
	}
	pbar.Width = m.progress.Width
	return pbar
}

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	color := m.modeColor()
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle)).MarginBottom(1)
	modeStyle := lipgloss.NewStyle().Bold(true).Foreground(color)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	var sections []string
	sections = append(sections, titleStyle.Render(fmt.Sprintf("%s tomato", m.theme.IconApp)))
	sections = append(sections, modeStyle.Render(m.state.Mode.Label()))
	sections = append(sections, "")
	sections = append(sections, RenderBigTime(m.state.SecondsLeft, color, m.width, m.state.IsPaused()))

	if m.state.IsPaused() {
		pauseBadge := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color(m.theme.ColorPaused)).
			Padding(0, 1).
			Render(fmt.Sprintf("%s PAUSED", m.theme.IconPaused))
		sections = append(sections, "")
		sections = append(sections, pauseBadge)
	}

	sections = append(sections, "")
	sections = append(sections, m.progressBar().ViewAs(m.state.Progress()))

	sections = append(sections, "")
	sections = append(sections, m.viewInputs())

	if m.lastErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C"))
		sections = append(sections, "")
		sections = append(sections, errStyle.Render(m.lastErr.Error()))
	}

	sections = append(sections, "")
	if m.editing != fieldNone {
		sections = append(sections, helpStyle.Render("enter/esc done"))
	} else {
		action := "start"
		if m.state.Active {
			action = "pause"
		} else if m.state.IsPaused() {
			action = "resume"
		}
		sections = append(sections, helpStyle.Render(fmt.Sprintf("[space] %s  [r]eset  [w]ork  [b]reak  [q]uit", action)))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) viewInputs() string {
	label := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	active := box.BorderForeground(m.modeColor())

	cell := func(name string, f field) string {
		b := box
		if m.editing == f {
			b = active
		}
		return lipgloss.JoinHorizontal(lipgloss.Center,
			label.Render(name+" "),
			b.Render(m.inputs[f].View()),
			label.Render(" min"),
		)
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		cell("Work", fieldWork),
		"    ",
		cell("Break", fieldBreak),
	)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
