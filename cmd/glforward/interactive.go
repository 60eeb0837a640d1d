package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wippyai/glforward/abi"
	"github.com/wippyai/glforward/backend/trace"
	"github.com/wippyai/glforward/catalog"
	"github.com/wippyai/glforward/dispatch"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	unwiredStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#777777"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// listHeight is the number of operations shown at once.
const listHeight = 18

type opInfo struct {
	entry catalog.Entry
	wired bool
}

type modelState int

const (
	stateSelectOp modelState = iota
	stateFilter
	stateInputArgs
	stateShowResult
)

type interactiveModel struct {
	err      error
	app      *app
	result   string
	ops      []opInfo
	visible  []int // indexes into ops matching the filter
	filter   textinput.Model
	inputs   []textinput.Model
	selected int // index into visible
	focusIdx int
	calls    int
	state    modelState
}

type callResultMsg struct {
	err    error
	result string
}

func newInteractiveModel(a *app) *interactiveModel {
	m := &interactiveModel{app: a, state: stateSelectOp}
	for _, ns := range catalog.Namespaces {
		for _, e := range a.cat.Entries(ns) {
			_, status := a.table.Resolve(e.Opcode)
			m.ops = append(m.ops, opInfo{entry: e, wired: status == dispatch.Resolved})
		}
	}
	m.filter = textinput.New()
	m.filter.Prompt = "/"
	m.filter.Placeholder = "name"
	m.filter.Width = 30
	m.applyFilter()
	return m
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) applyFilter() {
	q := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	m.visible = m.visible[:0]
	for i, op := range m.ops {
		if q == "" || strings.Contains(strings.ToLower(op.entry.Name), q) {
			m.visible = append(m.visible, i)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = max(len(m.visible)-1, 0)
	}
}

func (m *interactiveModel) current() (opInfo, bool) {
	if len(m.visible) == 0 {
		return opInfo{}, false
	}
	return m.ops[m.visible[m.selected]], true
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateFilter {
			switch msg.String() {
			case "enter", "esc":
				m.filter.Blur()
				m.state = stateSelectOp
				return m, nil
			case "ctrl+c":
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			m.applyFilter()
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputArgs {
				return m, tea.Quit
			}

		case "/":
			if m.state == stateSelectOp {
				m.state = stateFilter
				return m, m.filter.Focus()
			}

		case "up", "k":
			if m.state == stateSelectOp && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectOp && m.selected < len(m.visible)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectOp:
				if _, ok := m.current(); !ok {
					return m, nil
				}
				m.prepareInputs()
				if len(m.inputs) == 0 {
					return m, m.callOp
				}
				m.state = stateInputArgs
				return m, nil

			case stateInputArgs:
				return m, m.callOp

			case stateShowResult:
				m.state = stateSelectOp
				m.result = ""
				m.err = nil
			}

		case "tab":
			if m.state == stateInputArgs && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateInputArgs:
				m.state = stateSelectOp
				m.inputs = nil
			case stateShowResult:
				m.state = stateSelectOp
				m.result = ""
				m.err = nil
			}
		}

	case callResultMsg:
		m.calls++
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputArgs {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) prepareInputs() {
	op, _ := m.current()
	m.inputs = make([]textinput.Model, len(op.entry.Params))
	for i, p := range op.entry.Params {
		ti := textinput.New()
		ti.Placeholder = p.Kind.String()
		ti.Prompt = p.Name + ": "
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

// callOp parses the inputs and sends the selected operation.
func (m *interactiveModel) callOp() tea.Msg {
	op, _ := m.current()
	e := op.entry
	args := make([]any, len(m.inputs))
	for i, input := range m.inputs {
		v, err := parseArg(e.Params[i].Kind, input.Value())
		if err != nil {
			return callResultMsg{err: fmt.Errorf("%s: %w", e.Params[i].Name, err)}
		}
		args[i] = v
	}
	words, err := e.Signature().Encode(args...)
	if err != nil {
		return callResultMsg{err: err}
	}

	v, err := m.app.client().Call(e.Op, args...)
	if err != nil {
		return callResultMsg{err: err}
	}
	result := trace.Format(e, words)
	if e.Result != abi.Void {
		w, _ := abi.Widen(e.Result, v)
		result += " = " + trace.FormatValue(e.Result, w)
	}
	return callResultMsg{result: result}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("glforward"))
	fmt.Fprintf(&b, " %s backend, %d calls\n\n", m.app.cfg.Backend.Name, m.calls)

	switch m.state {
	case stateSelectOp, stateFilter:
		if m.state == stateFilter || m.filter.Value() != "" {
			b.WriteString(m.filter.View())
			b.WriteString("\n\n")
		}
		start := max(0, min(m.selected-listHeight/2, len(m.visible)-listHeight))
		end := min(start+listHeight, len(m.visible))
		for i := start; i < end; i++ {
			line := m.formatOp(m.ops[m.visible[i]])
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		if len(m.visible) == 0 {
			b.WriteString(helpStyle.Render("  no operation matches"))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • / filter • enter call • q quit"))

	case stateInputArgs:
		op, _ := m.current()
		fmt.Fprintf(&b, "Calling %s\n\n", funcStyle.Render(op.entry.Name))
		for i, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString(" ")
			b.WriteString(typeStyle.Render(op.entry.Params[i].Kind.String()))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter call • esc back"))

	case stateShowResult:
		op, _ := m.current()
		fmt.Fprintf(&b, "Result of %s:\n\n", funcStyle.Render(op.entry.Name))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatOp(op opInfo) string {
	e := op.entry
	var params []string
	for _, p := range e.Params {
		params = append(params, p.Name+": "+typeStyle.Render(p.Kind.String()))
	}
	result := ""
	if e.Result != abi.Void {
		result = " -> " + typeStyle.Render(e.Result.String())
	}
	name := funcStyle.Render(e.Name)
	if !op.wired {
		name = unwiredStyle.Render(e.Name)
	}
	return fmt.Sprintf("%5d %s(%s)%s", e.Opcode, name, strings.Join(params, ", "), result)
}

func runInteractive(a *app) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive mode needs a terminal")
	}
	p := tea.NewProgram(newInteractiveModel(a), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
