package quiz

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// advanceDelayTicks is how many countdown ticks the review phase is
// shown before the next question activates.
const advanceDelayTicks = 1

type commandKind int

const (
	cmdSelect commandKind = iota
	cmdSubmit
	cmdRestart
)

type command struct {
	kind   commandKind
	option string
}

type fetchResult struct {
	generation uint64
	questions  []Question
	err        error
}

// Update is what the presentation layer consumes: a session snapshot,
// plus the fetch error when loading failed ("no questions available").
type Update struct {
	View View
	Err  error
}

// Runner drives a Session from a single goroutine. User commands, the
// one-second tick, and fetch completions all arrive on channels and are
// applied sequentially, so manual submits and timer expiries for the
// same question are serialized and at most one of them scores. A
// restart invalidates the in-flight fetch through the session
// generation and cancels any pending advance.
type Runner struct {
	session *Session
	fetcher Fetcher
	log     *zap.Logger

	tick     <-chan time.Time
	stopTick func()

	commands chan command
	fetched  chan fetchResult
	updates  chan Update

	advanceIn int
}

func NewRunner(session *Session, fetcher Fetcher, log *zap.Logger) *Runner {
	ticker := time.NewTicker(time.Second)
	r := newRunner(session, fetcher, log, ticker.C)
	r.stopTick = ticker.Stop
	return r
}

// NewRunnerWithTicker is test-only for deterministic ticks.
func NewRunnerWithTicker(session *Session, fetcher Fetcher, log *zap.Logger, tick <-chan time.Time) *Runner {
	return newRunner(session, fetcher, log, tick)
}

func newRunner(session *Session, fetcher Fetcher, log *zap.Logger, tick <-chan time.Time) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		session:  session,
		fetcher:  fetcher,
		log:      log,
		tick:     tick,
		stopTick: func() {},
		commands: make(chan command, 16),
		fetched:  make(chan fetchResult, 1),
		updates:  make(chan Update, 16),
	}
}

// Updates returns the snapshot stream. Stale snapshots are dropped when
// the consumer lags; the latest one is always retained.
func (r *Runner) Updates() <-chan Update { return r.updates }

func (r *Runner) Select(option string) { r.commands <- command{kind: cmdSelect, option: option} }
func (r *Runner) Submit()              { r.commands <- command{kind: cmdSubmit} }
func (r *Runner) Restart()             { r.commands <- command{kind: cmdRestart} }

// Run owns the session until ctx is canceled. It starts the initial
// fetch immediately.
func (r *Runner) Run(ctx context.Context) error {
	defer r.stopTick()

	r.startFetch(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case result := <-r.fetched:
			r.handleFetched(result)

		case <-r.tick:
			r.handleTick()

		case cmd := <-r.commands:
			r.handleCommand(ctx, cmd)
		}
	}
}

func (r *Runner) startFetch(ctx context.Context) {
	generation := r.session.Generation()
	cfg := r.session.Config()

	go func() {
		questions, err := r.fetcher(ctx, cfg)
		select {
		case r.fetched <- fetchResult{generation: generation, questions: questions, err: err}:
		case <-ctx.Done():
		}
	}()
}

func (r *Runner) handleFetched(result fetchResult) {
	if result.generation != r.session.Generation() {
		r.log.Debug("discarding stale fetch result",
			zap.Uint64("generation", result.generation),
			zap.Uint64("current", r.session.Generation()))
		return
	}

	if result.err != nil {
		r.log.Warn("question fetch failed", zap.Error(result.err))
		r.publish(Update{View: r.session.Snapshot(), Err: result.err})
		return
	}

	if !r.session.Begin(result.generation, result.questions) {
		r.log.Warn("fetch returned no playable questions")
		r.publish(Update{View: r.session.Snapshot(), Err: ErrNoQuestions})
		return
	}

	r.log.Info("session started",
		zap.Int("questions", len(result.questions)),
		zap.Int("timer_seconds", r.session.Config().TimerSeconds))
	r.publish(Update{View: r.session.Snapshot()})
}

func (r *Runner) handleTick() {
	if r.advanceIn > 0 {
		r.advanceIn--
		if r.advanceIn == 0 && r.session.Advance() {
			r.publish(Update{View: r.session.Snapshot()})
		}
		return
	}

	if r.session.State() != StateActive {
		return
	}

	if r.session.Tick() {
		// Countdown hit zero and auto-submitted.
		r.advanceIn = advanceDelayTicks
	}
	r.publish(Update{View: r.session.Snapshot()})
}

func (r *Runner) handleCommand(ctx context.Context, cmd command) {
	switch cmd.kind {
	case cmdSelect:
		if r.session.Select(cmd.option) {
			r.publish(Update{View: r.session.Snapshot()})
		}

	case cmdSubmit:
		if r.session.Submit() {
			r.advanceIn = advanceDelayTicks
			r.publish(Update{View: r.session.Snapshot()})
		}

	case cmdRestart:
		r.session.Restart()
		r.advanceIn = 0
		r.publish(Update{View: r.session.Snapshot()})
		r.startFetch(ctx)
	}
}

func (r *Runner) publish(update Update) {
	select {
	case r.updates <- update:
	default:
		// Drop the oldest snapshot so a slow consumer never blocks the
		// game loop and always ends up with the newest state.
		select {
		case <-r.updates:
		default:
		}
		r.updates <- update
	}
}
