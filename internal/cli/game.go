package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"trivia-quiz/internal/history"
	"trivia-quiz/internal/quiz"
)

// runGame wires the interactive terminal loop to the game runner: it
// renders runner snapshots and translates typed letters into select +
// submit commands. Entering a letter both selects and submits that
// option; letting the countdown run out submits with no selection.
func runGame(ctx context.Context, runner *quiz.Runner, session *quiz.Session, store *history.Store, log *zap.Logger, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() { _ = runner.Run(ctx) }()

	lines := make(chan string)
	go readLines(in, lines)

	fmt.Fprintln(out, "Fetching questions...")

	var current quiz.View
	shownIndex := -1
	reviewedIndex := -1
	awaitingRestart := false

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case update := <-runner.Updates():
			if update.Err != nil {
				fmt.Fprintf(out, "No questions available: %v\n", update.Err)
				return update.Err
			}
			current = update.View

			switch current.State {
			case quiz.StateActive:
				if current.Index != shownIndex {
					shownIndex = current.Index
					printQuestion(out, current)
				} else if current.Remaining > 0 && current.Remaining <= 5 {
					fmt.Fprintf(out, "%d...\n", current.Remaining)
				}

			case quiz.StateReviewing:
				if current.Index != reviewedIndex {
					reviewedIndex = current.Index
					printOutcome(out, current)
				}

			case quiz.StateGameOver:
				if !awaitingRestart {
					awaitingRestart = true
					summary, err := quiz.Summarize(session)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "\nFinal score: %d/%d\n", summary.Score, summary.Total)
					saveResult(ctx, store, log, session.Config(), summary)
					fmt.Fprint(out, "Play again? [y/N] ")
				}
			}

		case line, ok := <-lines:
			if !ok {
				return nil
			}

			if awaitingRestart {
				if strings.EqualFold(line, "y") {
					awaitingRestart = false
					shownIndex = -1
					reviewedIndex = -1
					fmt.Fprintln(out, "Fetching questions...")
					runner.Restart()
					continue
				}
				return nil
			}

			if current.State != quiz.StateActive || !current.HasQuestion {
				continue
			}

			text, found := current.Question.OptionByLetter(line)
			if !found {
				maxLetter := byte('A' + len(current.Question.Options) - 1)
				fmt.Fprintf(out, "Invalid input. Please enter a letter A-%c.\n", maxLetter)
				continue
			}
			runner.Select(text)
			runner.Submit()
		}
	}
}

func readLines(in io.Reader, lines chan<- string) {
	reader := bufio.NewReader(in)
	for {
		line, err := reader.ReadString('\n')
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines <- trimmed
		}
		if err != nil {
			close(lines)
			return
		}
	}
}

func printQuestion(out io.Writer, view quiz.View) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Q%d/%d: %s\n\n", view.Index+1, view.Total, view.Question.Prompt)
	for _, option := range view.Question.Options {
		fmt.Fprintf(out, "%s. %s\n", option.Letter, option.Text)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "You have %d seconds.\n", view.Remaining)
}

func printOutcome(out io.Writer, view quiz.View) {
	switch {
	case view.Outcome == quiz.OutcomeCorrect:
		fmt.Fprintln(out, "Correct!")
	case !view.HasSelection:
		fmt.Fprintf(out, "Time's up! Correct answer was %s\n", view.Question.CorrectText())
	default:
		fmt.Fprintf(out, "Wrong. Correct answer was %s\n", view.Question.CorrectText())
	}
}

func saveResult(ctx context.Context, store *history.Store, log *zap.Logger, cfg quiz.Config, summary quiz.Summary) {
	if store == nil {
		return
	}

	err := store.SaveResult(ctx, history.Result{
		Score:      summary.Score,
		Total:      summary.Total,
		Category:   cfg.Category,
		Difficulty: labelOrAny(string(cfg.Difficulty)),
		Type:       labelOrAny(string(cfg.Type)),
	})
	if err != nil {
		log.Warn("failed to record game result", zap.Error(err))
	}
}

func labelOrAny(value string) string {
	if value == "" {
		return "any"
	}
	return value
}
