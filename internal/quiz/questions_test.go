package quiz

import (
	"strings"
	"testing"

	"trivia-quiz/internal/opentdb"
)

func TestBuildQuestionsUnescapesAndAssignsID(t *testing.T) {
	raw := []opentdb.RawQuestion{
		{
			Question:         "2 &amp; 2 = ?",
			CorrectAnswer:    "4 &lt; 5",
			IncorrectAnswers: []string{"1", "2", "3"},
		},
	}

	questions := BuildQuestions(raw)
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}

	item := questions[0]
	if item.Prompt != "2 & 2 = ?" {
		t.Fatalf("prompt not unescaped, got %q", item.Prompt)
	}
	if !strings.HasPrefix(item.ID, "q_") || len(item.ID) != 14 {
		t.Fatalf("unexpected question id format: %q", item.ID)
	}
	if item.CorrectIndex < 0 || item.CorrectIndex >= len(item.Options) {
		t.Fatalf("correct index out of range: %d", item.CorrectIndex)
	}
	if item.CorrectText() != "4 < 5" {
		t.Fatalf("correct text = %q, want %q", item.CorrectText(), "4 < 5")
	}

	occurrences := 0
	for _, option := range item.Options {
		if option.Text == "4 < 5" {
			occurrences++
		}
	}
	if occurrences != 1 {
		t.Fatalf("correct option appeared %d times in %+v", occurrences, item.Options)
	}
}

func TestBuildQuestionsPreservesInputOrder(t *testing.T) {
	raw := []opentdb.RawQuestion{
		{Question: "first", CorrectAnswer: "a", IncorrectAnswers: []string{"b"}},
		{Question: "second", CorrectAnswer: "a", IncorrectAnswers: []string{"b"}},
		{Question: "third", CorrectAnswer: "a", IncorrectAnswers: []string{"b"}},
	}

	questions := BuildQuestions(raw)
	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}
	for idx, want := range []string{"first", "second", "third"} {
		if questions[idx].Prompt != want {
			t.Fatalf("question %d prompt = %q, want %q", idx, questions[idx].Prompt, want)
		}
	}
}

func TestBuildQuestionsAssignsSequentialLetters(t *testing.T) {
	raw := []opentdb.RawQuestion{
		{Question: "q", CorrectAnswer: "w", IncorrectAnswers: []string{"x", "y", "z"}},
	}

	question := BuildQuestions(raw)[0]
	for idx, option := range question.Options {
		want := string(rune('A' + idx))
		if option.Letter != want {
			t.Fatalf("option %d letter = %q, want %q", idx, option.Letter, want)
		}
	}
}

func TestOptionByLetter(t *testing.T) {
	question := Question{
		Options: []Option{
			{Letter: "A", Text: "One"},
			{Letter: "B", Text: "Two"},
		},
	}

	tests := []struct {
		name      string
		input     string
		wantText  string
		wantFound bool
	}{
		{name: "exact", input: "A", wantText: "One", wantFound: true},
		{name: "lowercase with spaces", input: " b ", wantText: "Two", wantFound: true},
		{name: "out of range", input: "C", wantFound: false},
		{name: "empty", input: "", wantFound: false},
		{name: "multiple chars", input: "AB", wantFound: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			text, found := question.OptionByLetter(tc.input)
			if found != tc.wantFound || text != tc.wantText {
				t.Fatalf("OptionByLetter(%q) = (%q, %v), want (%q, %v)", tc.input, text, found, tc.wantText, tc.wantFound)
			}
		})
	}
}

func TestMakeQuestionIDDiffersWhenOptionOrderDiffers(t *testing.T) {
	q1 := Question{
		Prompt: "Ordering matters",
		Options: []Option{
			{Letter: "A", Text: "One"},
			{Letter: "B", Text: "Two"},
		},
	}
	q2 := Question{
		Prompt: "Ordering matters",
		Options: []Option{
			{Letter: "A", Text: "Two"},
			{Letter: "B", Text: "One"},
		},
	}

	if makeQuestionID(q1) == makeQuestionID(q2) {
		t.Fatalf("expected different IDs for different option ordering")
	}
}
