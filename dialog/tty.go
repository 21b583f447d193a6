package dialog

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/wasm-proxy/errors"
)

var (
	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#87CEEB"))

	answerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// tty runs one small bubbletea program per prompt.
type tty struct {
	in  io.Reader
	out io.Writer
}

func newTTY(in io.Reader, out io.Writer) *tty {
	return &tty{in: in, out: out}
}

func (t *tty) Print(msg string) error {
	_, err := fmt.Fprintln(t.out, msg)
	return err
}

func (t *tty) Input(prompt string, dep int, check func(string) error) (string, error) {
	ti := textinput.New()
	ti.Prompt = indent(dep) + "> "
	ti.Width = 40
	ti.Focus()
	m, err := t.run(&inputModel{input: ti, prompt: prompt, dep: dep, check: check})
	if err != nil {
		return "", err
	}
	return m.(*inputModel).input.Value(), nil
}

func (t *tty) Select(prompt string, options []string, dep int) (int, error) {
	if len(options) == 0 {
		return 0, errors.InvalidInput(errors.PhaseDialog, "select without options")
	}
	m, err := t.run(&selectModel{prompt: prompt, options: options, dep: dep})
	if err != nil {
		return 0, err
	}
	return m.(*selectModel).cursor, nil
}

type promptModel interface {
	tea.Model
	aborted() bool
}

func (t *tty) run(m promptModel) (tea.Model, error) {
	final, err := tea.NewProgram(m, tea.WithInput(t.in), tea.WithOutput(t.out)).Run()
	if err != nil {
		return nil, errors.Wrap(errors.PhaseDialog, errors.KindExhausted, err, "running prompt")
	}
	if final.(promptModel).aborted() {
		return nil, errors.New(errors.PhaseDialog, errors.KindExhausted).Detail("prompt cancelled").Build()
	}
	return final, nil
}

type inputModel struct {
	err    error
	check  func(string) error
	prompt string
	input  textinput.Model
	dep    int
	done   bool
	quit   bool
}

func (m *inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.quit = true
			return m, tea.Quit
		case "enter":
			if m.err = m.check(m.input.Value()); m.err == nil {
				m.done = true
				return m, tea.Quit
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *inputModel) View() string {
	pad := indent(m.dep)
	if m.done {
		return pad + promptStyle.Render(m.prompt) + " " + answerStyle.Render(m.input.Value()) + "\n"
	}
	var b strings.Builder
	b.WriteString(pad + promptStyle.Render(m.prompt) + "\n")
	b.WriteString(m.input.View() + "\n")
	if m.err != nil {
		b.WriteString(pad + errorStyle.Render(m.err.Error()) + "\n")
	}
	b.WriteString(pad + helpStyle.Render("enter accept • esc cancel") + "\n")
	return b.String()
}

func (m *inputModel) aborted() bool { return m.quit }

type selectModel struct {
	prompt  string
	options []string
	cursor  int
	dep     int
	done    bool
	quit    bool
}

func (m *selectModel) Init() tea.Cmd { return nil }

func (m *selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "esc":
		m.quit = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case "enter":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *selectModel) View() string {
	pad := indent(m.dep)
	if m.done {
		return pad + promptStyle.Render(m.prompt) + " " + answerStyle.Render(m.options[m.cursor]) + "\n"
	}
	var b strings.Builder
	b.WriteString(pad + promptStyle.Render(m.prompt) + "\n")
	for i, o := range m.options {
		if i == m.cursor {
			b.WriteString(pad + selectedStyle.Render("> "+o) + "\n")
		} else {
			b.WriteString(pad + "  " + o + "\n")
		}
	}
	b.WriteString(pad + helpStyle.Render("↑/↓ select • enter accept • esc cancel") + "\n")
	return b.String()
}

func (m *selectModel) aborted() bool { return m.quit }
