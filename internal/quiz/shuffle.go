package quiz

import "math/rand"

// ShuffleAnswers combines the correct answer with all incorrect ones,
// applies a uniform permutation, and returns the sanitized option texts
// together with the index the correct answer landed on. The correct
// answer appears exactly once and the result has len(incorrect)+1
// entries. A question with no incorrect answers is valid and yields a
// single option.
func ShuffleAnswers(correct string, incorrect []string) ([]string, int) {
	type choice struct {
		text      string
		isCorrect bool
	}

	choices := make([]choice, 0, len(incorrect)+1)
	for _, text := range incorrect {
		choices = append(choices, choice{text: Sanitize(text)})
	}
	choices = append(choices, choice{text: Sanitize(correct), isCorrect: true})

	rand.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})

	texts := make([]string, len(choices))
	correctIndex := -1
	for idx, candidate := range choices {
		texts[idx] = candidate.text
		if candidate.isCorrect {
			correctIndex = idx
		}
	}
	return texts, correctIndex
}
