package plume

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/simonhull/firebird-suite/plume/prompt"
	"github.com/simonhull/firebird-suite/plume/style"
)

// SelectOptions configures Select.
type SelectOptions struct {
	// Cursor preselects a choice by index.
	Cursor int

	// In and Out replace the terminal, mainly for tests.
	In  io.Reader
	Out io.Writer
}

// Select shows an interactive arrow-key menu and returns the chosen
// string. It needs a real terminal; for plain-text menus that also
// work over pipes, use Menu. Cancelling with q, Esc or Ctrl+C returns
// prompt.ErrInterrupted.
func Select(title string, choices []string, opts *SelectOptions) (string, error) {
	if len(choices) == 0 {
		return "", &prompt.ConfigError{Reason: "Select requires at least one choice"}
	}
	if opts == nil {
		opts = &SelectOptions{}
	}
	if opts.Cursor < 0 || opts.Cursor >= len(choices) {
		opts.Cursor = 0
	}

	model := selectModel{title: title, choices: choices, cursor: opts.Cursor, selected: -1}

	var teaOpts []tea.ProgramOption
	if opts.In != nil {
		teaOpts = append(teaOpts, tea.WithInput(opts.In))
	}
	if opts.Out != nil {
		teaOpts = append(teaOpts, tea.WithOutput(opts.Out))
	}

	final, err := tea.NewProgram(model, teaOpts...).Run()
	if err != nil {
		return "", fmt.Errorf("failed to show menu: %w", err)
	}

	result := final.(selectModel)
	if result.selected < 0 {
		return "", prompt.ErrInterrupted
	}
	return choices[result.selected], nil
}

// selectModel is the bubbletea model for the Select menu
type selectModel struct {
	title    string
	choices  []string
	cursor   int
	selected int
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}

		case "enter":
			m.selected = m.cursor
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m selectModel) View() string {
	var b strings.Builder

	if m.title != "" {
		b.WriteString(style.Prompt(m.title) + "\n\n")
	}
	b.WriteString(style.Hint("  [↑/↓] Navigate    [Enter] Select    [q] Cancel") + "\n\n")

	for i, choice := range m.choices {
		if m.cursor == i {
			b.WriteString("  " + style.Prompt("> "+choice) + "\n")
		} else {
			b.WriteString("    " + choice + "\n")
		}
	}

	return b.String()
}
