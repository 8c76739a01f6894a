package home

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/navyranks/internal/quiz"
	"github.com/abhisek/navyranks/internal/router"
	"github.com/abhisek/navyranks/internal/screen"
	"github.com/abhisek/navyranks/internal/screens/history"
	"github.com/abhisek/navyranks/internal/screens/placeholder"
	quizscreen "github.com/abhisek/navyranks/internal/screens/quiz"
	"github.com/abhisek/navyranks/internal/store"
	"github.com/abhisek/navyranks/internal/ui/components"
	"github.com/abhisek/navyranks/internal/ui/layout"
)

// Deps are the collaborators the home screen hands to the screens it opens.
type Deps struct {
	Controller   *quiz.Controller
	Runs         store.RunRepo // nil when the backend keeps no run history
	TickInterval time.Duration
}

// HomeScreen is the start screen: title, records and the main menu.
type HomeScreen struct {
	deps Deps
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}
	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "START QUIZ", Action: h.startQuiz, Disabled: deps.Controller == nil},
		{Label: "HISTORY", Action: h.openHistory},
		{Label: "EXIT", Action: func() tea.Cmd { return tea.Quit }},
	})
	return h
}

func (h *HomeScreen) startQuiz() tea.Cmd {
	s := quizscreen.New(quizscreen.Options{
		Controller:   h.deps.Controller,
		TickInterval: h.deps.TickInterval,
	})
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func (h *HomeScreen) openHistory() tea.Cmd {
	var s screen.Screen
	if h.deps.Runs == nil {
		s = placeholder.New("History", "Run history is kept only in the SQLite store.")
	} else {
		s = history.New(h.deps.Runs)
	}
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "s", Description: "Start"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "s" && h.deps.Controller != nil {
		return h, h.startQuiz()
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight) || layout.IsCompactWidth(width)
	cw := components.ContentWidth(width)

	var highScore, total int
	var best *store.BestRun
	if c := h.deps.Controller; c != nil {
		highScore = c.HighScore()
		best = c.BestRun()
		total = c.TotalQuestions()
	}

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, RenderEmblem(EmblemFor(best, total)))
	}
	sections = append(sections, renderStatsBar(highScore, best, cw, compact))
	sections = append(sections, h.menu.View(cw))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}
