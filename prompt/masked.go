package prompt

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// readMasked collects one line in raw mode, echoing mask per keystroke.
func readMasked(in io.Reader, out io.Writer, mask rune) (string, error) {
	ti := textinput.New()
	ti.Prompt = ""
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = mask
	ti.Focus()

	p := tea.NewProgram(maskedModel{input: ti}, tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("masked read: %w", err)
	}

	m := final.(maskedModel)
	if m.err != nil {
		return "", m.err
	}
	return m.input.Value(), nil
}

// maskedModel is the bubbletea model for a single masked line read
type maskedModel struct {
	input textinput.Model
	done  bool
	err   error
}

func (m maskedModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m maskedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.done = true
			m.err = ErrInterrupted
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m maskedModel) View() string {
	if m.done {
		// Leave the masked line on screen and move past it.
		return m.input.View() + "\n"
	}
	return m.input.View()
}
