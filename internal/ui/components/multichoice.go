package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/navyranks/internal/ui/theme"
)

// MultiChoice is a numbered option list with a highlight cursor. Once
// revealed it colors the correct option and the chosen one.
type MultiChoice struct {
	Options  []string
	Selected int
	Chosen   int
	Correct  int
	Revealed bool
}

// NewMultiChoice creates a selector over options with the cursor on the first.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{
		Options: options,
		Chosen:  -1,
		Correct: -1,
	}
}

// Update moves the cursor. Selection itself is left to the owning screen.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Revealed {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	}

	return m, nil
}

// Current returns the highlighted option.
func (m MultiChoice) Current() (string, bool) {
	if m.Selected < 0 || m.Selected >= len(m.Options) {
		return "", false
	}
	return m.Options[m.Selected], true
}

// Reveal freezes the list, marking chosen and the correct answer.
func (m *MultiChoice) Reveal(chosen, correct string) {
	m.Revealed = true
	m.Chosen = m.indexOf(chosen)
	m.Correct = m.indexOf(correct)
}

func (m MultiChoice) indexOf(name string) int {
	for i, o := range m.Options {
		if o == name {
			return i
		}
	}
	return -1
}

// View renders the options, one per line.
func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Revealed {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case m.Revealed && i == m.Correct:
			style = theme.Correct
			line += "  ✓"
		case m.Revealed && i == m.Chosen:
			style = theme.Incorrect
			line += "  ✗"
		case m.Revealed:
			style = style.Foreground(theme.TextDim)
		case i == m.Selected:
			style = theme.Selected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
