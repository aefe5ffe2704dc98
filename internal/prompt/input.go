package prompt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCancelled is returned when the user aborts a prompt with ctrl+c or esc.
var ErrCancelled = errors.New("prompt cancelled")

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type inputModel struct {
	label     string
	input     textinput.Model
	validate  func(string) error
	err       error
	value     string
	cancelled bool
}

func newInputModel(label, placeholder string, validate func(string) error) inputModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.Focus()
	return inputModel{label: label, input: ti, validate: validate}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			value := strings.TrimSpace(m.input.Value())
			if m.validate != nil {
				if err := m.validate(value); err != nil {
					m.err = err
					return m, nil
				}
			}
			m.value = value
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	s := labelStyle.Render(m.label) + "\n" + m.input.View() + "\n"
	if m.err != nil {
		s += errorStyle.Render(m.err.Error()) + "\n"
	}
	return s
}

func run(m inputModel) (string, error) {
	p := tea.NewProgram(m)
	result, err := p.Run()
	if err != nil {
		return "", err
	}
	final := result.(inputModel)
	if final.cancelled {
		return "", ErrCancelled
	}
	return final.value, nil
}

// Ask reads a single line of text. The answer is trimmed and may be empty.
func Ask(label, placeholder string) (string, error) {
	return run(newInputModel(label, placeholder, nil))
}

// AskInt reads a positive integer. An empty answer selects placeholder
// when it is itself a number.
func AskInt(label, placeholder string) (int, error) {
	value, err := run(newInputModel(label, placeholder, intValidator(placeholder)))
	if err != nil {
		return 0, err
	}
	return parseInt(value, placeholder)
}

func intValidator(placeholder string) func(string) error {
	return func(s string) error {
		_, err := parseInt(s, placeholder)
		return err
	}
}

func parseInt(s, placeholder string) (int, error) {
	if s == "" {
		s = placeholder
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("введите целое число: %q", s)
	}
	if n < 1 {
		return 0, fmt.Errorf("число должно быть больше нуля: %d", n)
	}
	return n, nil
}
