package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	ctl "github.com/abhisek/navyranks/internal/quiz"
	"github.com/abhisek/navyranks/internal/ui/components"
	"github.com/abhisek/navyranks/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.confirming {
		return renderRestartConfirm(width)
	}
	cur, ok := s.ctrl.Current()
	if !ok {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  No quiz in progress. Press Esc to return.")
	}

	cw := components.ContentWidth(width)
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	var b strings.Builder
	b.WriteString(s.renderScoreLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(center(components.NewProgressBar("Question", s.ctrl.AnsweredCount(), s.ctrl.TotalQuestions(), cw).View()))
	b.WriteString("\n\n")

	insignia := lipgloss.NewStyle().Foreground(theme.Gold).Render(cur.Description) +
		"\n\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(cur.Insignia)
	b.WriteString(center(components.Card(insignia, cw)))
	b.WriteString("\n\n")

	b.WriteString(center(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Which rank wears this insignia?")))
	b.WriteString("\n\n")
	b.WriteString(center(s.choices.View()))

	if s.ctrl.Phase() == ctl.PhaseAwaitingNext {
		b.WriteString("\n")
		b.WriteString(center(s.renderFeedback(cur.Name)))
	}

	return b.String()
}

// renderScoreLine shows the question number, score, high score and timer.
func (s *QuizScreen) renderScoreLine(width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", s.ctrl.QuestionNumber(), s.ctrl.TotalQuestions()))

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %d/%d  %s %d  %s %s",
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			s.ctrl.CorrectCount(),
			s.ctrl.AnsweredCount(),
			lipgloss.NewStyle().Foreground(theme.Gold).Render("★"),
			s.ctrl.HighScore(),
			lipgloss.NewStyle().Foreground(theme.Accent).Render("⏱"),
			ctl.FormatElapsed(s.ctrl.Elapsed()),
		))

	line := left
	if pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4; pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	return line
}

func (s *QuizScreen) renderFeedback(correct string) string {
	var verdict string
	if s.ctrl.LastAnswerCorrect() {
		verdict = theme.Correct.Render("Correct!")
	} else {
		verdict = theme.Incorrect.Render("Not quite.") + " " +
			lipgloss.NewStyle().Foreground(theme.Text).Render("That insignia belongs to "+correct+".")
	}

	next := "Press Enter for the next question"
	if s.ctrl.QuestionNumber() == s.ctrl.TotalQuestions() {
		next = "Press Enter to see your results"
	}
	return verdict + "\n\n" + theme.Hint.Render(next)
}

func renderRestartConfirm(width int) string {
	line := func(text string, style lipgloss.Style) string {
		return style.Width(width).Align(lipgloss.Center).Render(text)
	}

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(line("Abandon this run?", lipgloss.NewStyle().Foreground(theme.Text).Bold(true)))
	b.WriteString("\n")
	b.WriteString(line("Your records stay as they are.", lipgloss.NewStyle().Foreground(theme.TextDim)))
	b.WriteString("\n\n")
	b.WriteString(line("[Y] Yes, back to home", lipgloss.NewStyle().Foreground(theme.Error)))
	b.WriteString("\n")
	b.WriteString(line("[N] No, keep going", lipgloss.NewStyle().Foreground(theme.Primary)))
	return b.String()
}
