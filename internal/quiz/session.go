package quiz

// State is the session lifecycle phase.
type State int

const (
	StateLoading State = iota
	StateActive
	StateReviewing
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateActive:
		return "active"
	case StateReviewing:
		return "reviewing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Outcome is the per-question correctness flag. It is Pending until the
// active question has been submitted.
type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomeCorrect
	OutcomeWrong
)

// Session is the single-player game state machine:
//
//	Loading -> Active -> Reviewing -> Active ... -> GameOver
//
// Restart returns to Loading from any state. All methods are plain
// synchronous code; callers are expected to funnel every mutation
// through one goroutine (see Runner), so the session itself carries no
// locking.
type Session struct {
	cfg        Config
	generation uint64

	questions    []Question
	index        int
	selection    string
	hasSelection bool
	outcome      Outcome
	remaining    int
	score        int
	state        State
}

func NewSession(cfg Config) *Session {
	s := &Session{cfg: cfg, generation: 1, state: StateLoading}
	s.resetQuestionState()
	return s
}

func (s *Session) Config() Config     { return s.cfg }
func (s *Session) State() State       { return s.state }
func (s *Session) Score() int         { return s.score }
func (s *Session) Index() int         { return s.index }
func (s *Session) Remaining() int     { return s.remaining }
func (s *Session) Generation() uint64 { return s.generation }

// Current returns the active question. It reports false while loading
// or after the game is over.
func (s *Session) Current() (Question, bool) {
	if s.index < 0 || s.index >= len(s.questions) {
		return Question{}, false
	}
	return s.questions[s.index], true
}

// Begin installs a fetched question list and activates the first
// question. The generation guards against late results from a fetch
// started before a Restart: stale results are discarded. An empty list
// keeps the session in Loading.
func (s *Session) Begin(generation uint64, questions []Question) bool {
	if generation != s.generation || s.state != StateLoading || len(questions) == 0 {
		return false
	}

	s.questions = questions
	s.index = 0
	s.score = 0
	s.resetQuestionState()
	s.state = StateActive
	return true
}

// Select records the player's choice for the active question. Selection
// is locked once the question has been submitted; calls outside Active
// are ignored. Selecting never scores.
func (s *Session) Select(option string) bool {
	if s.state != StateActive || s.outcome != OutcomePending {
		return false
	}
	s.selection = option
	s.hasSelection = true
	return true
}

// Submit scores the active question: correct iff a selection exists and
// equals the correct answer text. Submitting with no selection is valid
// and scores as wrong (the timeout case). Submit is idempotent per
// question; once an outcome is recorded further calls are no-ops, so a
// manual submit racing a timer expiry can never double-score.
func (s *Session) Submit() bool {
	if s.state != StateActive || s.outcome != OutcomePending {
		return false
	}

	question := s.questions[s.index]
	if s.hasSelection && s.selection == question.CorrectText() {
		s.outcome = OutcomeCorrect
		s.score++
	} else {
		s.outcome = OutcomeWrong
	}
	s.state = StateReviewing
	return true
}

// Tick decrements the countdown by one second. When it reaches zero the
// question is auto-submitted with whatever selection (possibly none) is
// set, through the same path as a manual Submit. Ticks outside Active
// are ignored.
func (s *Session) Tick() bool {
	if s.state != StateActive {
		return false
	}
	if s.remaining > 0 {
		s.remaining--
	}
	if s.remaining > 0 {
		return false
	}
	return s.Submit()
}

// Advance leaves the review phase: on the last question the session
// becomes terminal with the index parked at the question count, else
// the next question activates with a cleared selection, a Pending
// outcome, and a fresh countdown.
func (s *Session) Advance() bool {
	if s.state != StateReviewing {
		return false
	}

	if s.index == len(s.questions)-1 {
		s.index = len(s.questions)
		s.state = StateGameOver
		return true
	}

	s.index++
	s.resetQuestionState()
	s.state = StateActive
	return true
}

// Restart discards all session state from any state and returns to
// Loading. The bumped generation is returned so the caller can tag its
// fresh fetch; results carrying an older generation are rejected by
// Begin.
func (s *Session) Restart() uint64 {
	s.generation++
	s.questions = nil
	s.index = 0
	s.score = 0
	s.resetQuestionState()
	s.state = StateLoading
	return s.generation
}

func (s *Session) resetQuestionState() {
	s.selection = ""
	s.hasSelection = false
	s.outcome = OutcomePending
	s.remaining = s.cfg.TimerSeconds
}

// View is an immutable snapshot for the presentation layer.
type View struct {
	State        State
	Index        int
	Total        int
	Question     Question
	HasQuestion  bool
	Selection    string
	HasSelection bool
	Outcome      Outcome
	Remaining    int
	Score        int
}

func (s *Session) Snapshot() View {
	question, ok := s.Current()
	return View{
		State:        s.state,
		Index:        s.index,
		Total:        len(s.questions),
		Question:     question,
		HasQuestion:  ok,
		Selection:    s.selection,
		HasSelection: s.hasSelection,
		Outcome:      s.outcome,
		Remaining:    s.remaining,
		Score:        s.score,
	}
}
