package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/navyranks/internal/quiz"
	"github.com/abhisek/navyranks/internal/router"
	"github.com/abhisek/navyranks/internal/screen"
	"github.com/abhisek/navyranks/internal/store"
	"github.com/abhisek/navyranks/internal/ui/layout"
	"github.com/abhisek/navyranks/internal/ui/theme"
)

// Restarter returns the quiz to its idle state.
type Restarter interface {
	Restart()
}

// Options carries a finished run and what to do next.
type Options struct {
	Result    *quiz.Result
	HighScore int
	Best      *store.BestRun
	Restarter Restarter
	Again     func() screen.Screen // builds a fresh quiz screen; nil disables replay
}

// SummaryScreen displays the results of a finished run.
type SummaryScreen struct {
	opts Options
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.EscapeHandler = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(opts Options) *SummaryScreen {
	return &SummaryScreen{opts: opts}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) HandlesEscape() bool {
	return true
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Enter", Description: "Home"}}
	if s.opts.Again != nil {
		hints = append(hints, layout.KeyHint{Key: "r", Description: "Play again"})
	}
	return hints
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "enter", "esc":
		s.restart()
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "r":
		if s.opts.Again == nil {
			return s, nil
		}
		s.restart()
		next := s.opts.Again()
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	return s, nil
}

func (s *SummaryScreen) restart() {
	if s.opts.Restarter != nil {
		s.opts.Restarter.Restart()
	}
}

func (s *SummaryScreen) View(width, height int) string {
	res := s.opts.Result
	if res == nil {
		return ""
	}

	line := func(text string, style lipgloss.Style) string {
		return style.Width(width).Align(lipgloss.Center).Render(text)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(line("Quiz complete!", theme.Title))
	b.WriteString("\n\n")

	b.WriteString(line(fmt.Sprintf("Score: %d/%d        Accuracy: %d%%        Time: %s",
		res.Score, res.Total, res.Accuracy, quiz.FormatElapsed(res.Elapsed)),
		lipgloss.NewStyle().Foreground(theme.Text)))
	b.WriteString("\n\n")

	if res.NewBest {
		b.WriteString(line("★ New best run! ★", lipgloss.NewStyle().Foreground(theme.Gold).Bold(true)))
		b.WriteString("\n")
	}
	if res.NewHighScore {
		b.WriteString(line(fmt.Sprintf("New high score: %d", s.opts.HighScore),
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)))
		b.WriteString("\n")
	}

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(0, min(width-8, 60))))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	records := fmt.Sprintf("High score %d", s.opts.HighScore)
	if best := s.opts.Best; best != nil {
		records += fmt.Sprintf("    Best run %d (%d%%) in %s",
			best.Score, best.Accuracy, quiz.FormatBestTime(best.ElapsedMs))
	}
	b.WriteString(line(records, lipgloss.NewStyle().Foreground(theme.TextDim)))

	return b.String()
}
