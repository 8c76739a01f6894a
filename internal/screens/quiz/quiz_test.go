package quiz

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	ctl "github.com/abhisek/navyranks/internal/quiz"
	"github.com/abhisek/navyranks/internal/ranks"
	"github.com/abhisek/navyranks/internal/router"
	"github.com/abhisek/navyranks/internal/screen"
	"github.com/abhisek/navyranks/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testEntries(n int) []ranks.Entry {
	entries := make([]ranks.Entry, n)
	for i := range entries {
		entries[i] = ranks.Entry{
			Name:        fmt.Sprintf("Rank %02d", i+1),
			Insignia:    fmt.Sprintf("insignia/%02d.svg", i+1),
			Description: fmt.Sprintf("%d gold stripes", i+1),
		}
	}
	return entries
}

func testQuizScreen(t *testing.T, n int) (*QuizScreen, *ctl.Controller) {
	t.Helper()
	c, err := ctl.New(context.Background(), testEntries(n), ctl.Options{
		Records: store.NewRecords(store.NewMemoryKV(), "navyRanks", nil),
		Rand:    rand.New(rand.NewPCG(9, 9)),
	})
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	s := New(Options{Controller: c, TickInterval: time.Millisecond})
	if cmd := s.Init(); cmd == nil {
		t.Fatal("expected tick command from Init")
	}
	return s, c
}

func update(s *QuizScreen, msg tea.Msg) (*QuizScreen, tea.Cmd) {
	var scr screen.Screen = s
	scr, cmd := scr.Update(msg)
	return scr.(*QuizScreen), cmd
}

// indexOf returns the 1-based option slot holding name.
func indexOf(options []string, name string) rune {
	for i, o := range options {
		if o == name {
			return rune('1' + i)
		}
	}
	return '0'
}

func TestQuizScreen_InitStartsSession(t *testing.T) {
	s, c := testQuizScreen(t, 6)
	if c.Phase() != ctl.PhaseRunning {
		t.Fatalf("phase = %s, want running", c.Phase())
	}
	if len(s.choices.Options) != 4 {
		t.Errorf("choices = %v, want 4", s.choices.Options)
	}
	if s.Title() != "Rank Quiz" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestQuizScreen_NumberKeyAnswers(t *testing.T) {
	s, c := testQuizScreen(t, 6)
	cur, _ := c.Current()

	s, _ = update(s, keyPress(indexOf(s.choices.Options, cur.Name)))

	if c.Phase() != ctl.PhaseAwaitingNext {
		t.Fatalf("phase = %s, want awaiting-next", c.Phase())
	}
	if c.CorrectCount() != 1 {
		t.Errorf("correct = %d, want 1", c.CorrectCount())
	}
	if !s.choices.Revealed {
		t.Error("choices should be revealed after answering")
	}
	if !strings.Contains(s.View(100, 30), "Correct!") {
		t.Error("expected feedback in view")
	}
}

func TestQuizScreen_ArrowsAndEnter(t *testing.T) {
	s, c := testQuizScreen(t, 6)
	cur, _ := c.Current()
	target := int(indexOf(s.choices.Options, cur.Name) - '1')

	for i := 0; i < target; i++ {
		s, _ = update(s, specialKey(tea.KeyDown))
	}
	s, _ = update(s, specialKey(tea.KeyEnter))

	if !c.LastAnswerCorrect() {
		t.Error("expected the highlighted correct answer to be submitted")
	}
}

func TestQuizScreen_WrongAnswerShowsCorrectRank(t *testing.T) {
	s, c := testQuizScreen(t, 6)
	cur, _ := c.Current()
	wrong := '1'
	if s.choices.Options[0] == cur.Name {
		wrong = '2'
	}

	s, _ = update(s, keyPress(wrong))
	if c.LastAnswerCorrect() {
		t.Fatal("expected wrong answer")
	}
	if !strings.Contains(s.View(120, 30), "belongs to "+cur.Name) {
		t.Error("expected the correct rank in feedback")
	}
}

func TestQuizScreen_OutOfRangeNumberIgnored(t *testing.T) {
	s, c := testQuizScreen(t, 2)
	update(s, keyPress('4'))
	if c.Phase() != ctl.PhaseRunning {
		t.Errorf("phase = %s, want running", c.Phase())
	}
}

func TestQuizScreen_NextAdvances(t *testing.T) {
	s, c := testQuizScreen(t, 6)
	s, _ = update(s, keyPress('1'))
	s, cmd := update(s, keyPress(' '))

	if c.Phase() != ctl.PhaseRunning || c.QuestionNumber() != 2 {
		t.Errorf("phase = %s, question = %d", c.Phase(), c.QuestionNumber())
	}
	if s.choices.Revealed {
		t.Error("choices should reset for the next question")
	}
	_ = cmd

	s, _ = update(s, keyPress('1'))
	update(s, keyPress('n'))
	if c.QuestionNumber() != 3 {
		t.Errorf("question = %d, want 3 after n", c.QuestionNumber())
	}
}

func TestQuizScreen_TickLoop(t *testing.T) {
	s, c := testQuizScreen(t, 6)

	start := time.Now()
	s, cmd := update(s, tickMsg(start.Add(time.Second)))
	if cmd == nil {
		t.Fatal("tick loop should continue while running")
	}
	if c.Elapsed() <= 0 {
		t.Error("elapsed should grow on tick")
	}

	s, _ = update(s, keyPress('1'))
	frozen := c.Elapsed()
	s, cmd = update(s, tickMsg(start.Add(time.Hour)))
	if cmd != nil {
		t.Error("tick loop should stop while awaiting next")
	}
	if c.Elapsed() != frozen {
		t.Error("elapsed must not grow while paused")
	}

	_, cmd = update(s, specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Error("advancing should restart the tick loop")
	}
}

func TestQuizScreen_FinishReplacesWithSummary(t *testing.T) {
	s, c := testQuizScreen(t, 3)

	var cmd tea.Cmd
	for i := 0; i < 3; i++ {
		s, _ = update(s, keyPress('1'))
		s, cmd = update(s, specialKey(tea.KeyEnter))
	}

	if c.Phase() != ctl.PhaseFinished {
		t.Fatalf("phase = %s, want finished", c.Phase())
	}
	if cmd == nil {
		t.Fatal("expected navigation command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen.Title() != "Results" {
		t.Errorf("replacement title = %q, want Results", msg.Screen.Title())
	}
}

func TestQuizScreen_RestartConfirm(t *testing.T) {
	s, c := testQuizScreen(t, 6)

	s, _ = update(s, keyPress('r'))
	if !s.confirming {
		t.Fatal("expected restart confirmation")
	}
	if !strings.Contains(s.View(80, 24), "Abandon this run?") {
		t.Error("expected confirmation view")
	}

	s, _ = update(s, keyPress('n'))
	if s.confirming || c.Phase() != ctl.PhaseRunning {
		t.Errorf("cancel should resume: confirming=%v phase=%s", s.confirming, c.Phase())
	}

	s, _ = update(s, specialKey(tea.KeyEscape))
	if !s.confirming {
		t.Fatal("Esc should ask for confirmation during a run")
	}
	_, cmd := update(s, keyPress('y'))
	if c.Phase() != ctl.PhaseIdle {
		t.Errorf("phase = %s, want idle", c.Phase())
	}
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestQuizScreen_KeyHints(t *testing.T) {
	s, _ := testQuizScreen(t, 6)
	if len(s.KeyHints()) != 4 {
		t.Errorf("running hints = %d, want 4", len(s.KeyHints()))
	}
	s, _ = update(s, keyPress('1'))
	if len(s.KeyHints()) != 2 {
		t.Errorf("awaiting hints = %d, want 2", len(s.KeyHints()))
	}
	if !s.HandlesEscape() {
		t.Error("quiz screen should own Esc")
	}
}
