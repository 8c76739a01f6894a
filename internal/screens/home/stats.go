package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/navyranks/internal/quiz"
	"github.com/abhisek/navyranks/internal/store"
	"github.com/abhisek/navyranks/internal/ui/theme"
)

const titleFull = `█▄ █ ▄▀█ █ █ █▄█   █▀█ ▄▀█ █▄ █ █▄▀ █▀
█ ▀█ █▀█ ▀▄▀  █    █▀▄ █▀█ █ ▀█ █ █ ▄█`

const titleCompact = "N · A · V · Y   R · A · N · K · S"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	text := titleFull
	if compact {
		text = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(theme.Title.Render(text))
}

// renderStatsBar shows the high score and the best run's time.
func renderStatsBar(highScore int, best *store.BestRun, cw int, compact bool) string {
	scoreStyle := lipgloss.NewStyle().Foreground(theme.Gold).Bold(true)
	timeStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	score := fmt.Sprintf("★ HIGH SCORE %d", highScore)
	if best != nil {
		score += fmt.Sprintf(" (%d%%)", best.Accuracy)
	}

	bestTime := dimStyle.Render("⏱ NO BEST TIME")
	if best != nil {
		bestTime = timeStyle.Render("⏱ BEST TIME " + quiz.FormatBestTime(best.ElapsedMs))
	}

	sep := "   "
	if compact {
		sep = "\n"
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(scoreStyle.Render(score) + sep + bestTime)
}
