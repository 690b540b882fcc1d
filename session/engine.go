// Package session owns the guided-training state machine: the current step,
// the article, the two draft summaries, and the evaluation result. All
// transitions go through the Engine; async provider/evaluator completions
// are generation-tagged so a superseded call can never touch a newer session.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"sumcoach/evaluator"
	"sumcoach/provider"
	"sumcoach/types"

	"github.com/google/uuid"
)

var (
	// ErrInvalidTransition is returned by intents issued in the wrong step
	ErrInvalidTransition = errors.New("invalid transition for current step")

	// ErrDraftNotReady is returned by gated intents whose draft fails validation
	ErrDraftNotReady = errors.New("draft does not meet submission requirements")

	// ErrClosed is returned once the engine has been shut down
	ErrClosed = errors.New("session engine is closed")
)

// CountdownStart is the initial value of the cosmetic fetching countdown
const CountdownStart = 10

// User-facing failure messages, produced only at this boundary
const (
	fetchErrMsg = "기사를 불러오지 못했습니다. 잠시 후 다시 시도해 주세요."
	evalErrMsg  = "요약 평가를 받지 못했습니다. 작성한 요약은 그대로 남아 있으니 다시 제출해 주세요."
)

// Config tunes the engine's timeouts. Zero values get defaults; TickInterval
// is overridden in tests to keep countdown tests fast.
type Config struct {
	FetchTimeout time.Duration
	EvalTimeout  time.Duration
	TickInterval time.Duration
}

func (c *Config) applyDefaults() {
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = 90 * time.Second
	}
	if c.EvalTimeout <= 0 {
		c.EvalTimeout = 90 * time.Second
	}
	if c.TickInterval <= 0 {
		c.TickInterval = time.Second
	}
}

// Engine holds one training session with thread-safe access
type Engine struct {
	provider  provider.ContentProvider
	evaluator evaluator.Evaluator
	cfg       Config

	mu         sync.Mutex
	closed     bool
	generation uint64
	sessionID  string

	step        types.Step
	article     *types.Article
	oneSentence string
	threeLines  string
	result      *types.EvaluationResult
	loading     bool
	errMsg      string

	countdown int
	stopTick  chan struct{} // non-nil only while a countdown goroutine runs
}

// NewEngine creates an engine in the intro step
func NewEngine(p provider.ContentProvider, ev evaluator.Evaluator, cfg Config) *Engine {
	cfg.applyDefaults()
	return &Engine{
		provider:  p,
		evaluator: ev,
		cfg:       cfg,
		step:      types.StepIntro,
	}
}

// Start begins a new training attempt from any step. It fully resets the
// session, supersedes any in-flight provider or evaluator call, and kicks
// off the article fetch and the countdown.
func (e *Engine) Start() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ErrClosed
	}

	e.generation++
	gen := e.generation
	e.sessionID = uuid.New().String()
	e.step = types.StepFetching
	e.article = nil
	e.oneSentence = ""
	e.threeLines = ""
	e.result = nil
	e.errMsg = ""
	e.loading = true
	e.countdown = CountdownStart

	e.stopCountdownLocked()
	stop := make(chan struct{})
	e.stopTick = stop
	e.mu.Unlock()

	log.Printf("Session %s started (generation %d)", e.sessionID, gen)
	go e.runCountdown(gen, stop)
	go e.runFetch(gen)
	return nil
}

// runFetch performs the provider call and applies its outcome unless the
// session has been superseded in the meantime.
func (e *Engine) runFetch(gen uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), e.cfg.FetchTimeout)
	defer cancel()

	article, err := e.provider.FetchArticle(ctx)
	if err == nil {
		// A provider bug could still hand us a nil or blank article; treat
		// it exactly like a fetch failure.
		if article == nil {
			err = provider.ErrEmptyArticle
		} else {
			err = provider.Normalize(article)
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || e.generation != gen {
		log.Printf("Discarding stale article fetch (generation %d)", gen)
		return
	}

	e.stopCountdownLocked()
	e.loading = false
	if err != nil {
		log.Printf("Article fetch failed: %v", err)
		e.step = types.StepIntro
		e.errMsg = fetchErrMsg
		return
	}

	e.article = article
	e.step = types.StepReading
}

// runCountdown decrements the cosmetic counter once per tick while the
// session is still fetching. It exits on the stop channel and additionally
// self-terminates when it observes a generation or step change.
func (e *Engine) runCountdown(gen uint64, stop chan struct{}) {
	ticker := time.NewTicker(e.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			e.mu.Lock()
			if e.closed || e.generation != gen || e.step != types.StepFetching {
				e.mu.Unlock()
				return
			}
			if e.countdown > 0 {
				e.countdown--
			}
			e.mu.Unlock()
		}
	}
}

// stopCountdownLocked releases the running countdown goroutine, if any.
// Callers must hold e.mu.
func (e *Engine) stopCountdownLocked() {
	if e.stopTick != nil {
		close(e.stopTick)
		e.stopTick = nil
	}
}

// EditOneSentence replaces the one-sentence draft. Edits are never blocked;
// validation only gates the advance and submit intents.
func (e *Engine) EditOneSentence(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.oneSentence = text
}

// EditThreeLines replaces the three-line draft
func (e *Engine) EditThreeLines(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.threeLines = text
}

// AdvanceToSummaryOne moves from reading to the one-sentence editor
func (e *Engine) AdvanceToSummaryOne() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.step != types.StepReading {
		return fmt.Errorf("%w: advance to summary_one from %s", ErrInvalidTransition, e.step)
	}
	e.step = types.StepSummaryOne
	e.errMsg = ""
	return nil
}

// AdvanceToSummaryThree moves to the three-line editor, gated on the
// one-sentence draft being valid.
func (e *Engine) AdvanceToSummaryThree() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.step != types.StepSummaryOne {
		return fmt.Errorf("%w: advance to summary_three from %s", ErrInvalidTransition, e.step)
	}
	if !OneSentenceValid(e.oneSentence) {
		return fmt.Errorf("%w: one-sentence summary", ErrDraftNotReady)
	}
	e.step = types.StepSummaryThree
	e.errMsg = ""
	return nil
}

// GoBack returns to the previous editing step
func (e *Engine) GoBack() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.loading {
		return fmt.Errorf("%w: evaluation in progress", ErrInvalidTransition)
	}
	switch e.step {
	case types.StepSummaryOne:
		e.step = types.StepReading
	case types.StepSummaryThree:
		e.step = types.StepSummaryOne
	default:
		return fmt.Errorf("%w: go back from %s", ErrInvalidTransition, e.step)
	}
	e.errMsg = ""
	return nil
}

// Submit sends the article and both drafts to the evaluator, gated on the
// three-line draft being valid. The step stays summary_three with loading
// set until the evaluator resolves.
func (e *Engine) Submit() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ErrClosed
	}
	if e.step != types.StepSummaryThree {
		e.mu.Unlock()
		return fmt.Errorf("%w: submit from %s", ErrInvalidTransition, e.step)
	}
	if e.loading {
		e.mu.Unlock()
		return fmt.Errorf("%w: evaluation already in progress", ErrInvalidTransition)
	}
	if !ThreeLinesValid(e.threeLines) {
		e.mu.Unlock()
		return fmt.Errorf("%w: three-line summary", ErrDraftNotReady)
	}

	e.loading = true
	e.errMsg = ""
	gen := e.generation
	article := e.article
	one, three := e.oneSentence, e.threeLines
	e.mu.Unlock()

	go e.runEvaluation(gen, article, one, three)
	return nil
}

// runEvaluation performs the evaluator call and applies its outcome unless
// the session has been superseded.
func (e *Engine) runEvaluation(gen uint64, article *types.Article, one, three string) {
	ctx, cancel := context.WithTimeout(context.Background(), e.cfg.EvalTimeout)
	defer cancel()

	result, err := e.evaluator.Evaluate(ctx, article, one, three)

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || e.generation != gen {
		log.Printf("Discarding stale evaluation (generation %d)", gen)
		return
	}

	e.loading = false
	if err != nil {
		// Drafts stay untouched so the user can retry without re-typing
		log.Printf("Evaluation failed: %v", err)
		e.errMsg = evalErrMsg
		return
	}

	e.result = result
	e.step = types.StepFeedback
	e.errMsg = ""
}

// Retry repeats the failed operation: a fetch failure restarts the session,
// an evaluation failure re-submits the preserved drafts.
func (e *Engine) Retry() error {
	e.mu.Lock()
	step, errMsg := e.step, e.errMsg
	e.mu.Unlock()

	switch {
	case step == types.StepIntro && errMsg != "":
		return e.Start()
	case step == types.StepSummaryThree && errMsg != "":
		return e.Submit()
	default:
		return fmt.Errorf("%w: retry from %s", ErrInvalidTransition, step)
	}
}

// Snapshot returns a copy of the current session state for presentation
func (e *Engine) Snapshot() types.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := types.Snapshot{
		SessionID:        e.sessionID,
		Step:             e.step,
		OneSentence:      e.oneSentence,
		ThreeLines:       e.threeLines,
		Loading:          e.loading,
		Error:            e.errMsg,
		Countdown:        e.countdown,
		OneSentenceValid: OneSentenceValid(e.oneSentence),
		ThreeLinesValid:  ThreeLinesValid(e.threeLines),
	}
	if e.article != nil {
		article := *e.article
		snap.Article = &article
	}
	if e.result != nil {
		result := *e.result
		snap.Result = &result
	}
	return snap
}

// Close releases the countdown and invalidates any in-flight async call.
// The engine rejects Start and Submit afterwards.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	e.generation++
	e.stopCountdownLocked()
}
