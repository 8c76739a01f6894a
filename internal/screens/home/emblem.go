package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/navyranks/internal/store"
	"github.com/abhisek/navyranks/internal/ui/theme"
)

// Emblem selects which crest art to display.
type Emblem int

const (
	EmblemPlain     Emblem = iota // No completed run yet
	EmblemDecorated               // A best run is on record
	EmblemFlag                    // Best run got every rank right
)

const emblemPlain = `  ╭─╮
  ╰┬╯
 ──┼──
╲  │  ╱
 ╲─┴─╱`

const emblemDecorated = `★ ╭─╮ ★
  ╰┬╯
 ──┼──
╲  │  ╱
 ╲─┴─╱`

const emblemFlag = `★ ╭─╮ ★
★ ╰┬╯ ★
 ──┼──
╲  │  ╱
 ╲─┴─╱
 ═════`

// EmblemFor picks the crest for the current records.
func EmblemFor(best *store.BestRun, total int) Emblem {
	switch {
	case best == nil:
		return EmblemPlain
	case total > 0 && best.Score == total:
		return EmblemFlag
	default:
		return EmblemDecorated
	}
}

// RenderEmblem returns the crest art for the given variant.
func RenderEmblem(e Emblem) string {
	art := emblemPlain
	fg := theme.Primary

	switch e {
	case EmblemDecorated:
		art = emblemDecorated
		fg = theme.Accent
	case EmblemFlag:
		art = emblemFlag
		fg = theme.Gold
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
