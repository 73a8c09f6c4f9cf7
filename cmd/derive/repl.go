package main

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/midbel/cli"
	"github.com/midbel/derive/symbolic"
)

const maxHistory = 10

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	inputStyle  = lipgloss.NewStyle().Faint(true)
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

type ReplCommand struct {
	Variable string
}

func (c ReplCommand) Run(args []string) error {
	set := cli.NewFlagSet("repl")
	set.StringVar(&c.Variable, "v", defaultVariable, "differentiate with respect to variable")
	if err := set.Parse(args); err != nil {
		return err
	}
	_, err := tea.NewProgram(newShell(c.Variable)).Run()
	return err
}

type entry struct {
	Variable string
	Input    string
	Output   string
	Failed   bool
}

type shell struct {
	input    textinput.Model
	variable string
	history  []entry
}

func newShell(variable string) shell {
	in := textinput.New()
	in.Placeholder = "x^2 + sin(x)"
	in.CharLimit = 256
	s := shell{
		input:    in,
		variable: variable,
	}
	s.setPrompt()
	return s
}

func (s shell) Init() tea.Cmd {
	return s.input.Focus()
}

func (s shell) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return s, tea.Quit
		case "enter":
			return s.submit()
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s shell) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(s.input.Value())
	s.input.Reset()
	switch {
	case line == "":
		return s, nil
	case line == ":quit" || line == ":q":
		return s, tea.Quit
	case strings.HasPrefix(line, ":var"):
		s.changeVariable(strings.TrimSpace(strings.TrimPrefix(line, ":var")))
		return s, nil
	}
	e := entry{
		Variable: s.variable,
		Input:    line,
	}
	res, err := symbolic.Differentiate(line, s.variable)
	if err != nil {
		e.Output, e.Failed = err.Error(), true
	} else {
		e.Output = res
	}
	s.push(e)
	return s, nil
}

func (s *shell) changeVariable(name string) {
	if err := symbolic.CheckVariable(name); err != nil {
		s.push(entry{
			Input:  ":var " + name,
			Output: err.Error(),
			Failed: true,
		})
		return
	}
	s.variable = name
	s.setPrompt()
}

func (s *shell) push(e entry) {
	s.history = append(s.history, e)
	if n := len(s.history); n > maxHistory {
		s.history = s.history[n-maxHistory:]
	}
}

func (s *shell) setPrompt() {
	s.input.Prompt = promptStyle.Render(fmt.Sprintf("d/d%s> ", s.variable))
}

func (s shell) View() tea.View {
	var str strings.Builder
	for _, e := range s.history {
		if e.Variable != "" {
			str.WriteString(inputStyle.Render(fmt.Sprintf("d/d%s %s", e.Variable, e.Input)))
		} else {
			str.WriteString(inputStyle.Render(e.Input))
		}
		str.WriteString("\n")
		if e.Failed {
			str.WriteString(errorStyle.Render(e.Output))
		} else {
			str.WriteString(resultStyle.Render("= " + e.Output))
		}
		str.WriteString("\n")
	}
	str.WriteString(s.input.View())
	str.WriteString("\n")
	str.WriteString(helpStyle.Render(":var <name> change variable, :quit or esc to exit"))
	str.WriteString("\n")
	return tea.NewView(str.String())
}
