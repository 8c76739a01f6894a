package quiz

import (
	"time"

	"github.com/abhisek/navyranks/internal/ranks"
	"github.com/abhisek/navyranks/internal/store"
)

func (c *Controller) Phase() Phase { return c.phase }

// Running reports whether the timer is accumulating.
func (c *Controller) Running() bool { return c.phase == PhaseRunning }

// InSession reports whether a question is on screen, answered or not.
func (c *Controller) InSession() bool {
	return c.phase == PhaseRunning || c.phase == PhaseAwaitingNext
}

func (c *Controller) RunID() string { return c.runID }

// Position is the zero-based index of the current question.
func (c *Controller) Position() int { return c.position }

// QuestionNumber is the one-based number of the current question.
func (c *Controller) QuestionNumber() int {
	if c.order == nil {
		return 0
	}
	return c.position + 1
}

// TotalQuestions is the size of the rank list.
func (c *Controller) TotalQuestions() int { return len(c.entries) }

// Current returns the entry being asked, or false outside a session.
func (c *Controller) Current() (ranks.Entry, bool) {
	if !c.InSession() {
		return ranks.Entry{}, false
	}
	return c.order[c.position], true
}

// Order returns a copy of the session's question order.
func (c *Controller) Order() []ranks.Entry {
	return append([]ranks.Entry(nil), c.order...)
}

// Options returns a copy of the current question's choices.
func (c *Controller) Options() []string {
	return append([]string(nil), c.options...)
}

func (c *Controller) CorrectCount() int  { return c.correct }
func (c *Controller) AnsweredCount() int { return c.answered }

// Elapsed is the accumulated answering time.
func (c *Controller) Elapsed() time.Duration { return c.elapsed }

// LastChoice is the name submitted for the current question, if any.
func (c *Controller) LastChoice() string { return c.lastChoice }

// LastAnswerCorrect reports whether the current question was answered correctly.
func (c *Controller) LastAnswerCorrect() bool { return c.lastCorrect }

// HighScore is the highest correct count ever observed.
func (c *Controller) HighScore() int { return c.highScore }

// BestRun returns a copy of the best completed run, or nil.
func (c *Controller) BestRun() *store.BestRun {
	if c.bestRun == nil {
		return nil
	}
	b := *c.bestRun
	return &b
}

// Result is set once the session reaches PhaseFinished.
func (c *Controller) Result() *Result { return c.result }
