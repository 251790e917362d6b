package hangman

import "errors"

// Every error below is recoverable. The round is left untouched when one is returned.
var (
	ErrInvalidInput     = errors.New("please enter a single letter")
	ErrDuplicateGuess   = errors.New("you already guessed that letter")
	ErrNoHintsRemaining = errors.New("no hints remaining")
	ErrNoLettersToHint  = errors.New("no more letters to hint")
	ErrNoRound          = errors.New("no round in progress, choose a difficulty")
	ErrRoundOver        = errors.New("round is over")
)
