package quiz

import (
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	ctl "github.com/abhisek/navyranks/internal/quiz"
	"github.com/abhisek/navyranks/internal/router"
	"github.com/abhisek/navyranks/internal/screen"
	"github.com/abhisek/navyranks/internal/screens/summary"
	"github.com/abhisek/navyranks/internal/ui/components"
	"github.com/abhisek/navyranks/internal/ui/layout"
)

// DefaultTickInterval is used when Options leaves TickInterval unset.
const DefaultTickInterval = 10 * time.Millisecond

// Options configures a QuizScreen.
type Options struct {
	Controller   *ctl.Controller
	TickInterval time.Duration
}

// QuizScreen runs one quiz session on top of a Controller.
type QuizScreen struct {
	opts       Options
	ctrl       *ctl.Controller
	keys       keyMap
	choices    components.MultiChoice
	confirming bool
	ticking    bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.EscapeHandler = (*QuizScreen)(nil)

// New creates a QuizScreen. The session starts when the screen is pushed.
func New(opts Options) *QuizScreen {
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}
	return &QuizScreen{
		opts: opts,
		ctrl: opts.Controller,
		keys: newKeyMap(),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	s.ctrl.Start()
	s.confirming = false
	s.resetChoices()
	return s.startTicking()
}

func (s *QuizScreen) Title() string {
	return "Rank Quiz"
}

func (s *QuizScreen) HandlesEscape() bool {
	return true
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.confirming {
		return []layout.KeyHint{hint(s.keys.Confirm), hint(s.keys.Cancel)}
	}
	switch s.ctrl.Phase() {
	case ctl.PhaseRunning:
		return []layout.KeyHint{
			{Key: "1-4", Description: "Answer"},
			{Key: "↑↓", Description: "Move"},
			hint(s.keys.Select),
			hint(s.keys.Restart),
		}
	case ctl.PhaseAwaitingNext:
		return []layout.KeyHint{hint(s.keys.Next), hint(s.keys.Restart)}
	}
	return []layout.KeyHint{hint(s.keys.Back)}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return s.handleTick(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleTick(msg tickMsg) (screen.Screen, tea.Cmd) {
	if !s.ctrl.Running() {
		s.ticking = false
		return s, nil
	}
	s.ctrl.Tick(time.Time(msg))
	return s, s.tick()
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.confirming {
		switch {
		case key.Matches(msg, s.keys.Confirm):
			s.confirming = false
			s.ctrl.Restart()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case key.Matches(msg, s.keys.Cancel):
			s.confirming = false
		}
		return s, nil
	}

	if !s.ctrl.InSession() {
		if key.Matches(msg, s.keys.Back) {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	if key.Matches(msg, s.keys.Restart, s.keys.Back) {
		s.confirming = true
		return s, nil
	}

	if s.ctrl.Phase() == ctl.PhaseAwaitingNext {
		if key.Matches(msg, s.keys.Next) {
			return s.advance()
		}
		return s, nil
	}

	for i, b := range s.keys.Choose {
		if key.Matches(msg, b) {
			if i >= len(s.choices.Options) {
				return s, nil
			}
			s.choices.Selected = i
			return s.submit(s.choices.Options[i])
		}
	}

	if key.Matches(msg, s.keys.Select) {
		if name, ok := s.choices.Current(); ok {
			return s.submit(name)
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.choices, cmd = s.choices.Update(msg)
	return s, cmd
}

func (s *QuizScreen) submit(name string) (screen.Screen, tea.Cmd) {
	if _, accepted := s.ctrl.SubmitAnswer(name); !accepted {
		return s, nil
	}
	cur, _ := s.ctrl.Current()
	s.choices.Reveal(name, cur.Name)
	return s, nil
}

func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	if !s.ctrl.Advance() {
		return s, nil
	}
	if s.ctrl.Phase() == ctl.PhaseFinished {
		next := summary.New(summary.Options{
			Result:    s.ctrl.Result(),
			HighScore: s.ctrl.HighScore(),
			Best:      s.ctrl.BestRun(),
			Restarter: s.ctrl,
			Again:     func() screen.Screen { return New(s.opts) },
		})
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	s.resetChoices()
	return s, s.startTicking()
}

func (s *QuizScreen) resetChoices() {
	s.choices = components.NewMultiChoice(s.ctrl.Options())
}

// startTicking begins the tick loop unless one is already in flight.
func (s *QuizScreen) startTicking() tea.Cmd {
	if s.ticking {
		return nil
	}
	s.ticking = true
	return s.tick()
}

func (s *QuizScreen) tick() tea.Cmd {
	return tea.Tick(s.opts.TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
