package hangman

import (
	"math/rand"
	"time"
)

// Outcome describes how a round ended.
type Outcome struct {
	Won     bool
	Word    string
	Score   int
	Lives   int
	Hints   int
	Elapsed time.Duration
}

// State is a read-only snapshot of the session, enough to render a frame.
type State struct {
	RoundID    string
	Difficulty Difficulty
	Status     Status
	Masked     string
	Lives      int
	MaxLives   int
	Hints      int
	Guessed    []string
	TotalScore int
	Outcome    *Outcome
}

// Session owns the cumulative score and the round being played. It is
// driven from a single goroutine and is not safe for concurrent use.
type Session struct {
	TotalScore int

	// Rounds that reached a win or a loss. Abandoned rounds are not counted.
	RoundsPlayed int
	RoundsWon    int

	round   *Round
	outcome *Outcome

	rng *rand.Rand
	now func() time.Time
}

// NewSession returns a session whose word and hint choices are drawn from
// seed.
func NewSession(seed int64) *Session {
	return &Session{
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now,
	}
}

// SetClock replaces the time source used for elapsed round time.
func (s *Session) SetClock(now func() time.Time) {
	s.now = now
}

// Round returns the current round, or nil before the first Start.
func (s *Session) Round() *Round {
	return s.round
}

// Start discards the current round, unscored, and begins a new one.
func (s *Session) Start(d Difficulty) State {
	s.round = newRound(d, s.rng, s.now)
	s.outcome = nil

	return s.State()
}

// Guess submits one letter.
func (s *Session) Guess(input string) (State, error) {
	if s.round == nil {
		return s.State(), ErrNoRound
	}
	if s.round.Status.Over() {
		return s.State(), ErrRoundOver
	}

	c, err := normalizeGuess(input)
	if err != nil {
		return s.State(), err
	}

	if _, err := s.round.guess(c); err != nil {
		return s.State(), err
	}

	s.settle()
	return s.State(), nil
}

// Hint reveals one random hidden letter, spending a hint.
func (s *Session) Hint() (rune, State, error) {
	if s.round == nil {
		return 0, s.State(), ErrNoRound
	}

	c, err := s.round.hint(s.rng)
	if err != nil {
		return 0, s.State(), err
	}

	s.settle()
	return c, s.State(), nil
}

// settle scores the round once it has reached a terminal state.
func (s *Session) settle() {
	r := s.round
	if !r.Status.Over() || s.outcome != nil {
		return
	}

	o := &Outcome{
		Won:     r.Status == StatusWon,
		Word:    r.Word,
		Lives:   r.Lives,
		Hints:   r.Hints,
		Elapsed: r.Clock.Elapsed(),
	}
	s.RoundsPlayed++
	if o.Won {
		o.Score = Score(r.Lives, r.Hints)
		s.TotalScore += o.Score
		s.RoundsWon++
	}
	s.outcome = o
}

func (s *Session) State() State {
	st := State{
		Status:     StatusSelecting,
		TotalScore: s.TotalScore,
	}

	r := s.round
	if r == nil {
		return st
	}

	st.RoundID = r.ID
	st.Difficulty = r.Difficulty
	st.Status = r.Status
	st.Masked = r.Masked()
	st.Lives = r.Lives
	st.MaxLives = r.MaxLives
	st.Hints = r.Hints
	st.Guessed = r.Guessed()
	if s.outcome != nil {
		o := *s.outcome
		st.Outcome = &o
	}

	return st
}
