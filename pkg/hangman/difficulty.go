package hangman

import (
	"fmt"
	"strings"
)

type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// Difficulties lists the tiers in menu order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// MaxLives returns the number of wrong guesses a round of this tier allows.
func (d Difficulty) MaxLives() int {
	switch d {
	case Medium:
		return 6
	case Hard:
		return 5
	default:
		return 7
	}
}

// Words returns a copy of the tier's word pool.
func (d Difficulty) Words() []string {
	var pool []string
	switch d {
	case Medium:
		pool = mediumWords
	case Hard:
		pool = hardWords
	default:
		pool = easyWords
	}

	words := make([]string, len(pool))
	copy(words, pool)
	return words
}

// ParseDifficulty accepts a tier name or its menu number (1-3).
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "1":
		return Easy, nil
	case "medium", "2":
		return Medium, nil
	case "hard", "3":
		return Hard, nil
	}
	return Easy, fmt.Errorf("unknown difficulty %q", s)
}
