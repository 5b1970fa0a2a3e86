package quiz

import "errors"

var ErrNotFinished = errors.New("game is not finished")

// Summary is the final score over the questions actually played, which
// reflects what the API returned rather than what was requested.
type Summary struct {
	Score int
	Total int
}

func Summarize(s *Session) (Summary, error) {
	if s.State() != StateGameOver {
		return Summary{}, ErrNotFinished
	}
	return Summary{Score: s.Score(), Total: s.Index()}, nil
}
