package quiz

import (
	"context"
	"errors"

	"trivia-quiz/internal/opentdb"
)

// ErrNoQuestions is surfaced to the presentation layer when a fetch
// produced nothing playable.
var ErrNoQuestions = errors.New("no questions available")

// Fetcher retrieves the full question list for a session. Implementations
// must honor the config filters and return questions in presentation
// order.
type Fetcher func(ctx context.Context, cfg Config) ([]Question, error)

// NewOpenTDBFetcher adapts the OpenTriviaDB client to the Fetcher
// contract. Errors from the client pass through unwrapped so callers can
// still distinguish opentdb.ErrUnavailable from opentdb.ErrBadResponse.
func NewOpenTDBFetcher(client *opentdb.Client) Fetcher {
	return func(ctx context.Context, cfg Config) ([]Question, error) {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}

		raw, err := client.FetchQuestions(ctx, opentdb.Request{
			Amount:     cfg.Amount,
			Category:   cfg.Category,
			Difficulty: string(cfg.Difficulty),
			Type:       string(cfg.Type),
		})
		if err != nil {
			return nil, err
		}
		return BuildQuestions(raw), nil
	}
}
