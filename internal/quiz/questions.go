package quiz

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"

	"trivia-quiz/internal/opentdb"
)

// Option is one selectable answer, addressed by letter in the UI.
type Option struct {
	Letter string
	Text   string
}

// Question is an immutable quiz question. Options are shuffled once at
// build time and stable thereafter; CorrectIndex points at the single
// option holding the correct answer.
type Question struct {
	ID           string
	Prompt       string
	Options      []Option
	CorrectIndex int
}

// CorrectText returns the sanitized correct answer text.
func (q Question) CorrectText() string {
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return ""
	}
	return q.Options[q.CorrectIndex].Text
}

// OptionByLetter resolves a user-entered letter to its option text.
func (q Question) OptionByLetter(letter string) (string, bool) {
	letter = strings.ToUpper(strings.TrimSpace(letter))
	for _, option := range q.Options {
		if option.Letter == letter {
			return option.Text, true
		}
	}
	return "", false
}

// BuildQuestions converts raw API questions into playable ones:
// prompts and answers are sanitized, options are shuffled, and a
// content-derived ID is assigned. The input order defines presentation
// order and is preserved.
func BuildQuestions(raw []opentdb.RawQuestion) []Question {
	questions := make([]Question, 0, len(raw))
	for _, item := range raw {
		question := buildQuestion(item)
		question.ID = makeQuestionID(question)
		questions = append(questions, question)
	}
	return questions
}

func buildQuestion(raw opentdb.RawQuestion) Question {
	texts, correctIndex := ShuffleAnswers(raw.CorrectAnswer, raw.IncorrectAnswers)

	options := make([]Option, len(texts))
	for idx, text := range texts {
		options[idx] = Option{
			Letter: string(rune('A' + idx)),
			Text:   text,
		}
	}

	return Question{
		Prompt:       Sanitize(raw.Question),
		Options:      options,
		CorrectIndex: correctIndex,
	}
}

func makeQuestionID(question Question) string {
	var keyBuilder strings.Builder
	keyBuilder.WriteString(question.Prompt)
	for _, option := range question.Options {
		keyBuilder.WriteString("|")
		keyBuilder.WriteString(option.Text)
	}

	hash := sha1.Sum([]byte(keyBuilder.String()))
	return "q_" + hex.EncodeToString(hash[:6])
}
