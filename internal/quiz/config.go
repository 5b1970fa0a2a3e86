package quiz

import (
	"errors"
	"fmt"
)

type Difficulty string

const (
	DifficultyAny    Difficulty = ""
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type QuestionType string

const (
	TypeAny      QuestionType = ""
	TypeMultiple QuestionType = "multiple"
	TypeBoolean  QuestionType = "boolean"
)

var ErrInvalidConfig = errors.New("invalid game configuration")

// Config is the immutable configuration a session is started with.
// Zero Category means "any category".
type Config struct {
	Amount       int
	Category     int
	Difficulty   Difficulty
	Type         QuestionType
	TimerSeconds int
}

func (c Config) Validate() error {
	if c.Amount < 1 {
		return fmt.Errorf("%w: amount must be >= 1, got %d", ErrInvalidConfig, c.Amount)
	}
	if c.Category < 0 {
		return fmt.Errorf("%w: negative category %d", ErrInvalidConfig, c.Category)
	}
	switch c.Difficulty {
	case DifficultyAny, DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig, c.Difficulty)
	}
	switch c.Type {
	case TypeAny, TypeMultiple, TypeBoolean:
	default:
		return fmt.Errorf("%w: unknown question type %q", ErrInvalidConfig, c.Type)
	}
	if c.TimerSeconds < 1 {
		return fmt.Errorf("%w: timer must be >= 1 second, got %d", ErrInvalidConfig, c.TimerSeconds)
	}
	return nil
}

// ParseDifficulty accepts the user-facing spellings, with "any" and ""
// both meaning no difficulty filter.
func ParseDifficulty(raw string) (Difficulty, error) {
	switch raw {
	case "", "any":
		return DifficultyAny, nil
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return DifficultyAny, fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig, raw)
	}
}

// ParseQuestionType accepts the user-facing spellings, with "any" and
// "" both meaning no type filter.
func ParseQuestionType(raw string) (QuestionType, error) {
	switch raw {
	case "", "any":
		return TypeAny, nil
	case "multiple":
		return TypeMultiple, nil
	case "boolean":
		return TypeBoolean, nil
	default:
		return TypeAny, fmt.Errorf("%w: unknown question type %q", ErrInvalidConfig, raw)
	}
}
