package gui

import (
	"github.com/qnkhuat/hangterm/pkg/hangman"
)

// GameState encapsulates everything needed to draw the board
type GameState struct {
	State hangman.State // Session snapshot
	Theme Theme         // Theme
}
