package quiz

import (
	"context"
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/navyranks/internal/ranks"
	"github.com/abhisek/navyranks/internal/store"
)

// Phase is the controller's position in the quiz lifecycle.
type Phase int

const (
	PhaseIdle         Phase = iota // No session; home screen
	PhaseRunning                   // Question shown, timer running
	PhaseAwaitingNext              // Question answered, timer paused
	PhaseFinished                  // Last question answered and advanced past
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseAwaitingNext:
		return "awaiting-next"
	case PhaseFinished:
		return "finished"
	}
	return "unknown"
}

// RecordStore persists the high score and best run.
type RecordStore interface {
	HighScore(ctx context.Context) (int, error)
	BestRun(ctx context.Context) (*store.BestRun, error)
	SaveHighScore(ctx context.Context, score int) error
	SaveBestRun(ctx context.Context, run store.BestRun) error
}

// RunLog receives every finished run.
type RunLog interface {
	AppendRun(ctx context.Context, data store.RunEventData) error
}

// Options configures a Controller. Only Records is required.
type Options struct {
	Records  RecordStore
	Runs     RunLog
	Rand     *rand.Rand
	Clock    func() time.Time
	Logger   *zap.Logger
	NewRunID func() string
}

// Result summarizes a finished run.
type Result struct {
	RunID        string
	Score        int
	Total        int
	Accuracy     int
	Elapsed      time.Duration
	NewBest      bool
	NewHighScore bool
}

// Controller drives one quiz session at a time over a fixed rank list.
// It is not safe for concurrent use; callers drive it from a single loop.
type Controller struct {
	entries []ranks.Entry
	names   []string

	records  RecordStore
	runs     RunLog
	rng      *rand.Rand
	clock    func() time.Time
	logger   *zap.Logger
	newRunID func() string

	highScore int
	bestRun   *store.BestRun

	phase       Phase
	runID       string
	order       []ranks.Entry
	position    int
	correct     int
	answered    int
	elapsed     time.Duration
	lastTick    time.Time
	options     []string
	lastChoice  string
	lastCorrect bool
	raisedHigh  bool
	result      *Result
}

// New builds a Controller over entries and loads the persisted records.
// Unreadable records fall back to no high score and no best run.
func New(ctx context.Context, entries []ranks.Entry, opts Options) (*Controller, error) {
	if err := ranks.Validate(entries); err != nil {
		return nil, err
	}

	c := &Controller{
		entries:  append([]ranks.Entry(nil), entries...),
		names:    ranks.Names(entries),
		records:  opts.Records,
		runs:     opts.Runs,
		rng:      opts.Rand,
		clock:    opts.Clock,
		logger:   opts.Logger,
		newRunID: opts.NewRunID,
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if c.clock == nil {
		c.clock = time.Now
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	if c.newRunID == nil {
		c.newRunID = uuid.NewString
	}

	if c.records != nil {
		hs, err := c.records.HighScore(ctx)
		if err != nil {
			c.logger.Warn("load high score", zap.Error(err))
		}
		c.highScore = hs

		best, err := c.records.BestRun(ctx)
		if err != nil {
			c.logger.Warn("load best run", zap.Error(err))
		}
		c.bestRun = best
	}

	return c, nil
}

// Start begins a new session, discarding any session in progress.
func (c *Controller) Start() {
	c.runID = c.newRunID()
	c.order = Shuffle(c.rng, c.entries)
	c.position = 0
	c.correct = 0
	c.answered = 0
	c.elapsed = 0
	c.lastChoice = ""
	c.lastCorrect = false
	c.raisedHigh = false
	c.result = nil
	c.options = c.GenerateOptions(c.order[0])
	c.resume()

	c.logger.Debug("quiz started", zap.String("run_id", c.runID), zap.Int("questions", len(c.order)))
}

// Tick adds the time since the previous tick to the elapsed total.
// It does nothing unless a question is waiting for an answer.
func (c *Controller) Tick(now time.Time) {
	if c.phase != PhaseRunning {
		return
	}
	if now.After(c.lastTick) {
		c.elapsed += now.Sub(c.lastTick)
	}
	c.lastTick = now
}

// SubmitAnswer records the answer for the current question and pauses the
// timer. It reports whether the answer was correct and whether it was
// accepted; answers outside PhaseRunning are ignored.
func (c *Controller) SubmitAnswer(name string) (correct, accepted bool) {
	if c.phase != PhaseRunning {
		return false, false
	}

	c.Tick(c.clock())
	c.phase = PhaseAwaitingNext

	correct = name == c.order[c.position].Name
	c.answered++
	if correct {
		c.correct++
	}
	c.lastChoice = name
	c.lastCorrect = correct

	if c.correct > c.highScore {
		c.highScore = c.correct
		c.raisedHigh = true
		c.saveHighScore()
	}

	return correct, true
}

// Advance moves past an answered question: to the next question, or to
// PhaseFinished after the last one. It reports whether it did anything.
func (c *Controller) Advance() bool {
	if c.phase != PhaseAwaitingNext {
		return false
	}

	if c.position == len(c.order)-1 {
		c.finish()
		return true
	}

	c.position++
	c.options = c.GenerateOptions(c.order[c.position])
	c.lastChoice = ""
	c.lastCorrect = false
	c.resume()
	return true
}

// Restart abandons the current session and returns to PhaseIdle.
// Records already written stay as they are.
func (c *Controller) Restart() {
	if c.phase == PhaseIdle {
		return
	}
	c.phase = PhaseIdle
	c.runID = ""
	c.order = nil
	c.position = 0
	c.correct = 0
	c.answered = 0
	c.elapsed = 0
	c.options = nil
	c.lastChoice = ""
	c.lastCorrect = false
	c.raisedHigh = false
	c.result = nil
}

// GenerateOptions returns up to MaxOptions shuffled names for entry: the
// entry's own name plus distractors drawn from the rest of the list.
func (c *Controller) GenerateOptions(entry ranks.Entry) []string {
	return GenerateOptions(c.rng, c.names, entry.Name)
}

func (c *Controller) resume() {
	c.phase = PhaseRunning
	c.lastTick = c.clock()
}

func (c *Controller) finish() {
	c.phase = PhaseFinished

	total := len(c.order)
	elapsedMs := c.elapsed.Milliseconds()
	res := &Result{
		RunID:        c.runID,
		Score:        c.correct,
		Total:        total,
		Accuracy:     Accuracy(c.correct, total),
		Elapsed:      c.elapsed,
		NewHighScore: c.raisedHigh,
	}

	if c.bestRun.Beats(c.correct, elapsedMs) {
		res.NewBest = true
		c.bestRun = &store.BestRun{
			ElapsedMs: elapsedMs,
			Score:     c.correct,
			Accuracy:  res.Accuracy,
		}
		c.saveBestRun()
	}
	c.result = res

	if c.runs != nil {
		err := c.runs.AppendRun(context.Background(), store.RunEventData{
			RunID:     res.RunID,
			Score:     res.Score,
			Total:     res.Total,
			Accuracy:  res.Accuracy,
			ElapsedMs: elapsedMs,
			NewBest:   res.NewBest,
		})
		if err != nil {
			c.logger.Warn("append run", zap.Error(err))
		}
	}

	c.logger.Info("quiz finished",
		zap.String("run_id", res.RunID),
		zap.Int("score", res.Score),
		zap.Int("total", res.Total),
		zap.Int64("elapsed_ms", elapsedMs),
		zap.Bool("new_best", res.NewBest),
	)
}

func (c *Controller) saveHighScore() {
	if c.records == nil {
		return
	}
	if err := c.records.SaveHighScore(context.Background(), c.highScore); err != nil {
		c.logger.Warn("save high score", zap.Int("score", c.highScore), zap.Error(err))
	}
}

func (c *Controller) saveBestRun() {
	if c.records == nil {
		return
	}
	if err := c.records.SaveBestRun(context.Background(), *c.bestRun); err != nil {
		c.logger.Warn("save best run", zap.Error(err))
	}
}

// Accuracy returns round(100 * correct / total), or 0 for an empty quiz.
func Accuracy(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}
