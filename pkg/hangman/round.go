package hangman

import (
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// HintsPerRound is the hint budget every round starts with.
	HintsPerRound = 2

	LifeBonus = 100
	HintBonus = 50

	Placeholder = '_'
)

type Status int

const (
	StatusSelecting Status = iota
	StatusInProgress
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusSelecting:
		return "Selecting"
	case StatusInProgress:
		return "In Progress"
	case StatusWon:
		return "Won"
	case StatusLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Over reports whether the status is terminal for the round.
func (s Status) Over() bool {
	return s == StatusWon || s == StatusLost
}

// Score returns the points a won round is worth.
func Score(lives, hints int) int {
	return lives*LifeBonus + hints*HintBonus
}

// Round is one play-through, from word selection to a win or loss.
type Round struct {
	ID         string
	Difficulty Difficulty
	Word       string
	Lives      int
	MaxLives   int
	Hints      int
	Status     Status

	remaining map[rune]bool
	guessed   map[rune]bool

	Clock *Clock
}

func newRound(d Difficulty, rng *rand.Rand, now func() time.Time) *Round {
	pool := d.Words()

	r := &Round{
		ID:         uuid.New().String(),
		Difficulty: d,
		Word:       pool[rng.Intn(len(pool))],
		Lives:      d.MaxLives(),
		MaxLives:   d.MaxLives(),
		Hints:      HintsPerRound,
		Status:     StatusInProgress,
		remaining:  make(map[rune]bool),
		guessed:    make(map[rune]bool),
		Clock:      NewClock(now),
	}
	for _, c := range r.Word {
		r.remaining[c] = true
	}
	r.Clock.Start()

	return r
}

// normalizeGuess lowercases input and checks it is exactly one letter a-z.
func normalizeGuess(input string) (rune, error) {
	if len(input) != 1 {
		return 0, ErrInvalidInput
	}

	c := rune(strings.ToLower(input)[0])
	if c < 'a' || c > 'z' {
		return 0, ErrInvalidInput
	}
	return c, nil
}

// guess applies a normalized letter. It reports whether the letter was in
// the word.
func (r *Round) guess(c rune) (bool, error) {
	if r.Status.Over() {
		return false, ErrRoundOver
	}
	if r.guessed[c] {
		return false, ErrDuplicateGuess
	}

	r.guessed[c] = true

	correct := r.remaining[c]
	if correct {
		delete(r.remaining, c)
	} else {
		r.Lives--
	}

	r.checkOver()
	return correct, nil
}

func (r *Round) hint(rng *rand.Rand) (rune, error) {
	if r.Status.Over() {
		return 0, ErrRoundOver
	}
	if r.Hints == 0 {
		return 0, ErrNoHintsRemaining
	}

	// Sorted so a seeded source always picks the same letter.
	unguessed := r.Remaining()
	if len(unguessed) == 0 {
		return 0, ErrNoLettersToHint
	}

	c := unguessed[rng.Intn(len(unguessed))]
	r.guessed[c] = true
	delete(r.remaining, c)
	r.Hints--

	r.checkOver()
	return c, nil
}

// checkOver settles the round. A win takes precedence over a loss.
func (r *Round) checkOver() {
	switch {
	case len(r.remaining) == 0:
		r.Status = StatusWon
	case r.Lives <= 0:
		r.Status = StatusLost
	default:
		return
	}
	r.Clock.Stop()
}

// Remaining returns the distinct letters of the word still hidden, sorted.
func (r *Round) Remaining() []rune {
	letters := make([]rune, 0, len(r.remaining))
	for c := range r.remaining {
		letters = append(letters, c)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return letters
}

// Guessed returns every letter guessed or hinted so far, sorted.
func (r *Round) Guessed() []string {
	letters := make([]string, 0, len(r.guessed))
	for c := range r.guessed {
		letters = append(letters, string(c))
	}
	sort.Strings(letters)
	return letters
}

// Masked returns the word with unguessed letters replaced by Placeholder,
// positions separated by a space.
func (r *Round) Masked() string {
	var b strings.Builder
	for i, c := range r.Word {
		if i > 0 {
			b.WriteByte(' ')
		}
		if r.guessed[c] {
			b.WriteRune(c)
		} else {
			b.WriteRune(Placeholder)
		}
	}
	return b.String()
}
