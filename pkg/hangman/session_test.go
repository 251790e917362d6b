package hangman

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
	"time"
)

// startWith restarts the session until the round's word is want.
func startWith(t *testing.T, s *Session, d Difficulty, want string) {
	t.Helper()

	for i := 0; i < 1000; i++ {
		s.Start(d)
		if s.Round().Word == want {
			return
		}
	}
	t.Fatalf("failed to start a %s round with word %q", d, want)
}

func distinct(word string) map[rune]bool {
	letters := make(map[rune]bool)
	for _, c := range word {
		letters[c] = true
	}
	return letters
}

// checkInvariants verifies the bookkeeping that must hold after every operation.
func checkInvariants(t *testing.T, s *Session) {
	t.Helper()

	r := s.Round()
	letters := distinct(r.Word)

	var guessedInWord int
	seen := make(map[string]bool)
	for _, g := range r.Guessed() {
		if seen[g] {
			t.Fatalf("guessed letters contain duplicate %q", g)
		}
		seen[g] = true

		if letters[rune(g[0])] {
			guessedInWord++
		}
	}

	for _, c := range r.Remaining() {
		if !letters[c] {
			t.Fatalf("remaining letter %q is not in word %q", c, r.Word)
		}
		if seen[string(c)] {
			t.Fatalf("remaining letter %q was already guessed", c)
		}
	}

	if len(r.Remaining())+guessedInWord != len(letters) {
		t.Fatalf("remaining (%d) + guessed in word (%d) != distinct letters (%d) for %q", len(r.Remaining()), guessedInWord, len(letters), r.Word)
	}

	if r.Lives < 0 || r.Lives > r.MaxLives {
		t.Fatalf("lives %d out of range [0, %d]", r.Lives, r.MaxLives)
	}
	if r.Hints < 0 || r.Hints > HintsPerRound {
		t.Fatalf("hints %d out of range [0, %d]", r.Hints, HintsPerRound)
	}

	won := r.Status == StatusWon
	lost := r.Status == StatusLost
	if won && lost {
		t.Fatal("round is both won and lost")
	}
	if won != (len(r.Remaining()) == 0) {
		t.Fatalf("won=%v with %d letters remaining", won, len(r.Remaining()))
	}
	if lost && r.Lives != 0 {
		t.Fatalf("lost with %d lives", r.Lives)
	}
}

func TestStartPicksFromPool(t *testing.T) {
	s := NewSession(1)

	for _, d := range Difficulties {
		pool := make(map[string]bool)
		for _, w := range d.Words() {
			pool[w] = true
		}

		for i := 0; i < 50; i++ {
			st := s.Start(d)

			r := s.Round()
			if !pool[r.Word] {
				t.Fatalf("%s round picked %q which is not in its pool", d, r.Word)
			}
			if st.Status != StatusInProgress {
				t.Errorf("expected new round to be in progress, got %s", st.Status)
			}
			if st.Lives != d.MaxLives() || st.MaxLives != d.MaxLives() {
				t.Errorf("expected %s round to start with %d lives, got %d/%d", d, d.MaxLives(), st.Lives, st.MaxLives)
			}
			if st.Hints != HintsPerRound {
				t.Errorf("expected %d hints, got %d", HintsPerRound, st.Hints)
			}
			if len(st.Guessed) != 0 {
				t.Errorf("expected no guessed letters, got %v", st.Guessed)
			}
			if st.Outcome != nil {
				t.Errorf("expected no outcome on a new round, got %+v", st.Outcome)
			}
		}
	}
}

func TestStartUsesEveryWord(t *testing.T) {
	s := NewSession(7)

	for _, d := range Difficulties {
		picked := make(map[string]bool)
		for i := 0; i < 500; i++ {
			s.Start(d)
			picked[s.Round().Word] = true
		}

		if len(picked) != len(d.Words()) {
			t.Errorf("expected every %s word to be picked, got %v", d, picked)
		}
	}
}

func TestSeededSessionsAgree(t *testing.T) {
	a, b := NewSession(42), NewSession(42)

	for i := 0; i < 20; i++ {
		d := Difficulties[i%len(Difficulties)]
		a.Start(d)
		b.Start(d)

		if a.Round().Word != b.Round().Word {
			t.Fatalf("sessions with equal seeds picked %q and %q", a.Round().Word, b.Round().Word)
		}
	}
}

func TestWinScore(t *testing.T) {
	s := NewSession(0)
	startWith(t, s, Easy, "cat")

	for _, l := range []string{"c", "a"} {
		st, err := s.Guess(l)
		if err != nil {
			t.Fatalf("failed to guess %q: %s", l, err)
		}
		if st.Status != StatusInProgress {
			t.Fatalf("expected round in progress after %q, got %s", l, st.Status)
		}
		checkInvariants(t, s)
	}

	st, err := s.Guess("T")
	if err != nil {
		t.Fatalf("failed to guess T: %s", err)
	}
	checkInvariants(t, s)

	if st.Status != StatusWon {
		t.Fatalf("expected round to be won, got %s", st.Status)
	}
	if st.Outcome == nil || !st.Outcome.Won {
		t.Fatalf("expected a winning outcome, got %+v", st.Outcome)
	}
	if st.Outcome.Score != 7*100+2*50 {
		t.Errorf("expected score 800, got %d", st.Outcome.Score)
	}
	if st.TotalScore != 800 || s.TotalScore != 800 {
		t.Errorf("expected total score 800, got %d", st.TotalScore)
	}
	if st.Outcome.Word != "cat" {
		t.Errorf("expected outcome word cat, got %q", st.Outcome.Word)
	}
	if st.Masked != "c a t" {
		t.Errorf("expected masked word \"c a t\", got %q", st.Masked)
	}
	if s.RoundsWon != 1 {
		t.Errorf("expected 1 round won, got %d", s.RoundsWon)
	}
}

func TestLoss(t *testing.T) {
	s := NewSession(0)
	startWith(t, s, Easy, "cat")

	wrong := []string{"b", "d", "e", "f", "g", "h", "i"}
	for i, l := range wrong {
		st, err := s.Guess(l)
		if err != nil {
			t.Fatalf("failed to guess %q: %s", l, err)
		}
		checkInvariants(t, s)

		if st.Lives != 7-(i+1) {
			t.Fatalf("expected %d lives after %d wrong guesses, got %d", 7-(i+1), i+1, st.Lives)
		}

		if i < len(wrong)-1 && st.Status != StatusInProgress {
			t.Fatalf("expected round in progress after %d wrong guesses, got %s", i+1, st.Status)
		}
	}

	st := s.State()
	if st.Status != StatusLost {
		t.Fatalf("expected round to be lost, got %s", st.Status)
	}
	if st.Outcome == nil || st.Outcome.Won || st.Outcome.Score != 0 {
		t.Errorf("expected a losing outcome without score, got %+v", st.Outcome)
	}
	if st.TotalScore != 0 {
		t.Errorf("expected total score to stay 0, got %d", st.TotalScore)
	}
	if st.Masked != "_ _ _" {
		t.Errorf("expected masked word \"_ _ _\", got %q", st.Masked)
	}
}

func TestDuplicateGuess(t *testing.T) {
	s := NewSession(0)
	startWith(t, s, Easy, "dog")

	for _, l := range []string{"o", "z"} {
		if _, err := s.Guess(l); err != nil {
			t.Fatalf("failed to guess %q: %s", l, err)
		}

		before := s.State()
		after, err := s.Guess(l)
		if !errors.Is(err, ErrDuplicateGuess) {
			t.Fatalf("expected ErrDuplicateGuess for second %q, got %v", l, err)
		}
		if !reflect.DeepEqual(before, after) {
			t.Errorf("duplicate guess changed state: before %+v after %+v", before, after)
		}
		checkInvariants(t, s)
	}

	if _, err := s.Guess("O"); !errors.Is(err, ErrDuplicateGuess) {
		t.Errorf("expected uppercase repeat to be a duplicate, got %v", err)
	}
}

func TestInvalidInput(t *testing.T) {
	s := NewSession(0)
	startWith(t, s, Medium, "python")

	for _, input := range []string{"ab", "3", "", " ", "!", "é", "pp"} {
		before := s.State()
		after, err := s.Guess(input)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput for %q, got %v", input, err)
		}
		if !reflect.DeepEqual(before, after) {
			t.Errorf("invalid input %q changed state: before %+v after %+v", input, before, after)
		}
	}
}

func TestHint(t *testing.T) {
	s := NewSession(3)
	startWith(t, s, Hard, "algorithm")

	for i := 0; i < HintsPerRound; i++ {
		before := s.Round().Remaining()
		beforeGuessed := len(s.Round().Guessed())

		c, st, err := s.Hint()
		if err != nil {
			t.Fatalf("failed to use hint %d: %s", i+1, err)
		}
		checkInvariants(t, s)

		found := false
		for _, r := range before {
			if r == c {
				found = true
			}
		}
		if !found {
			t.Errorf("hinted letter %q was not among unguessed letters %q", c, string(before))
		}
		if len(s.Round().Remaining()) != len(before)-1 {
			t.Errorf("expected hint to reveal exactly one letter, remaining went from %d to %d", len(before), len(s.Round().Remaining()))
		}
		if len(st.Guessed) != beforeGuessed+1 {
			t.Errorf("expected hint to add one guessed letter, got %v", st.Guessed)
		}
		if st.Hints != HintsPerRound-(i+1) {
			t.Errorf("expected %d hints left, got %d", HintsPerRound-(i+1), st.Hints)
		}
		if st.Lives != Hard.MaxLives() {
			t.Errorf("hint cost a life: %d", st.Lives)
		}
	}

	before := s.State()
	_, after, err := s.Hint()
	if !errors.Is(err, ErrNoHintsRemaining) {
		t.Fatalf("expected ErrNoHintsRemaining, got %v", err)
	}
	if !reflect.DeepEqual(before, after) {
		t.Errorf("failed hint changed state: before %+v after %+v", before, after)
	}
}

func TestHintCanWin(t *testing.T) {
	s := NewSession(0)
	startWith(t, s, Easy, "cat")

	if _, err := s.Guess("c"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Guess("x"); err != nil {
		t.Fatal(err)
	}

	var st State
	for i := 0; i < 2; i++ {
		var err error
		_, st, err = s.Hint()
		if err != nil {
			t.Fatalf("failed to use hint: %s", err)
		}
	}

	if st.Status != StatusWon {
		t.Fatalf("expected hints to win the round, got %s", st.Status)
	}
	if st.Outcome.Score != Score(6, 0) {
		t.Errorf("expected score %d, got %d", Score(6, 0), st.Outcome.Score)
	}
}

func TestNoLettersToHint(t *testing.T) {
	r := newRound(Easy, rand.New(rand.NewSource(0)), time.Now)
	r.remaining = make(map[rune]bool)

	if _, err := r.hint(rand.New(rand.NewSource(0))); !errors.Is(err, ErrNoLettersToHint) {
		t.Fatalf("expected ErrNoLettersToHint, got %v", err)
	}
	if r.Hints != HintsPerRound {
		t.Errorf("failed hint spent a hint: %d left", r.Hints)
	}
}

func TestRoundOverAndNoRound(t *testing.T) {
	s := NewSession(0)

	if _, err := s.Guess("a"); !errors.Is(err, ErrNoRound) {
		t.Errorf("expected ErrNoRound before start, got %v", err)
	}
	if _, _, err := s.Hint(); !errors.Is(err, ErrNoRound) {
		t.Errorf("expected ErrNoRound for hint before start, got %v", err)
	}
	if st := s.State(); st.Status != StatusSelecting {
		t.Errorf("expected selecting status before start, got %s", st.Status)
	}

	startWith(t, s, Easy, "dog")
	for _, l := range []string{"d", "o", "g"} {
		if _, err := s.Guess(l); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := s.Guess("a"); !errors.Is(err, ErrRoundOver) {
		t.Errorf("expected ErrRoundOver, got %v", err)
	}
	if _, _, err := s.Hint(); !errors.Is(err, ErrRoundOver) {
		t.Errorf("expected ErrRoundOver for hint, got %v", err)
	}
	if s.TotalScore != Score(7, 2) {
		t.Errorf("round was scored more than once: %d", s.TotalScore)
	}
}

func TestRestartDiscardsRound(t *testing.T) {
	s := NewSession(0)
	startWith(t, s, Easy, "fish")

	if _, err := s.Guess("z"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := s.Hint(); err != nil {
		t.Fatal(err)
	}

	st := s.Start(Easy)
	if st.Lives != Easy.MaxLives() || st.Hints != HintsPerRound || len(st.Guessed) != 0 {
		t.Errorf("expected a fresh round, got %+v", st)
	}
	if st.TotalScore != 0 {
		t.Errorf("discarded round was scored: %d", st.TotalScore)
	}
	if s.RoundsPlayed != 0 {
		t.Errorf("discarded rounds were counted as played: %d", s.RoundsPlayed)
	}
}

func TestTotalScoreAccumulates(t *testing.T) {
	s := NewSession(0)

	startWith(t, s, Easy, "dog")
	for _, l := range []string{"d", "x", "o", "g"} {
		if _, err := s.Guess(l); err != nil {
			t.Fatal(err)
		}
	}

	startWith(t, s, Medium, "network")
	if _, _, err := s.Hint(); err != nil {
		t.Fatal(err)
	}
	for _, l := range []string{"n", "e", "t", "w", "o", "r", "k"} {
		if s.Round().Status.Over() {
			break
		}
		if _, err := s.Guess(l); err != nil && !errors.Is(err, ErrDuplicateGuess) {
			t.Fatal(err)
		}
	}

	want := Score(6, 2) + Score(6, 1)
	if s.TotalScore != want {
		t.Errorf("expected total score %d, got %d", want, s.TotalScore)
	}
	if s.RoundsWon != 2 {
		t.Errorf("expected 2 rounds won, got %d", s.RoundsWon)
	}
	if s.RoundsPlayed != 2 {
		t.Errorf("expected 2 rounds played, got %d", s.RoundsPlayed)
	}
}

func TestRandomPlayKeepsInvariants(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		s := NewSession(seed)
		rng := rand.New(rand.NewSource(seed))

		for _, d := range Difficulties {
			s.Start(d)
			for !s.Round().Status.Over() {
				if rng.Intn(8) == 0 {
					s.Hint()
				} else {
					s.Guess(string(rune('a' + rng.Intn(26))))
				}
				checkInvariants(t, s)
			}

			st := s.State()
			if st.Outcome == nil {
				t.Fatalf("seed %d: finished round has no outcome", seed)
			}
			if st.Outcome.Won != (st.Status == StatusWon) {
				t.Fatalf("seed %d: outcome %+v disagrees with status %s", seed, st.Outcome, st.Status)
			}
		}
	}
}

func TestElapsed(t *testing.T) {
	s := NewSession(0)

	now := time.Date(2021, 3, 1, 12, 0, 0, 0, time.UTC)
	s.SetClock(func() time.Time { return now })

	startWith(t, s, Easy, "cat")
	now = now.Add(12340 * time.Millisecond)

	var st State
	for _, l := range []string{"c", "a", "t"} {
		st, _ = s.Guess(l)
	}

	if st.Outcome.Elapsed != 12300*time.Millisecond {
		t.Errorf("expected elapsed 12.3s, got %s", st.Outcome.Elapsed)
	}

	now = now.Add(time.Minute)
	if s.State().Outcome.Elapsed != 12300*time.Millisecond {
		t.Error("elapsed time kept running after the round ended")
	}
}
