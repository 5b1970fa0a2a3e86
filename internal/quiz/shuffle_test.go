package quiz

import "testing"

func TestShuffleAnswersContainsCorrectExactlyOnce(t *testing.T) {
	incorrect := []string{"Berlin", "Madrid", "Rome"}

	for run := 0; run < 100; run++ {
		texts, correctIndex := ShuffleAnswers("Paris", incorrect)

		if len(texts) != len(incorrect)+1 {
			t.Fatalf("expected %d options, got %d", len(incorrect)+1, len(texts))
		}
		if correctIndex < 0 || correctIndex >= len(texts) {
			t.Fatalf("correct index out of range: %d", correctIndex)
		}
		if texts[correctIndex] != "Paris" {
			t.Fatalf("correct index %d points at %q", correctIndex, texts[correctIndex])
		}

		occurrences := 0
		for _, text := range texts {
			if text == "Paris" {
				occurrences++
			}
		}
		if occurrences != 1 {
			t.Fatalf("correct answer appeared %d times", occurrences)
		}
	}
}

func TestShuffleAnswersSanitizesEveryElement(t *testing.T) {
	texts, correctIndex := ShuffleAnswers("4 &lt; 5", []string{"2 &amp; 2"})

	if texts[correctIndex] != "4 < 5" {
		t.Fatalf("correct answer not sanitized: %q", texts[correctIndex])
	}
	for _, text := range texts {
		if text != "4 < 5" && text != "2 & 2" {
			t.Fatalf("unexpected option %q", text)
		}
	}
}

func TestShuffleAnswersNoIncorrectAnswers(t *testing.T) {
	texts, correctIndex := ShuffleAnswers("True", nil)

	if len(texts) != 1 || correctIndex != 0 || texts[0] != "True" {
		t.Fatalf("unexpected single-answer shuffle: texts=%v index=%d", texts, correctIndex)
	}
}

func TestShuffleAnswersPositionsRoughlyUniform(t *testing.T) {
	const runs = 4000
	incorrect := []string{"a", "b", "c"}
	positions := make([]int, len(incorrect)+1)

	for run := 0; run < runs; run++ {
		_, correctIndex := ShuffleAnswers("correct", incorrect)
		positions[correctIndex]++
	}

	// Expected 1000 per position; allow a generous band so the test
	// stays deterministic in practice while still catching a broken
	// shuffle that pins the correct answer.
	for idx, count := range positions {
		if count < 700 || count > 1300 {
			t.Fatalf("position %d occupied %d/%d times, outside [700,1300]", idx, count, runs)
		}
	}
}
