package gui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/hangterm/pkg/hangman"
)

const (
	leftMargin = 2
	topMargin  = 1

	// BoardHeight is the number of rows Render draws.
	BoardHeight = 11

	lifeRune     = '♥'
	lifeLostRune = '·'
)

// drawText places text at the specified coordinates with the provided style
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range []rune(text) {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// drawRune places a rune at the specified coordinates with the provided style
func drawRune(s tcell.Screen, x, y int, style tcell.Style, r rune) {
	s.SetContent(x, y, r, nil, style)
}

// DefStyle is the default style for tcell rendering
var DefStyle = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)

// gallowsColor colors the drawing by the round's status
func gallowsColor(st hangman.State, t Theme) tcell.Color {
	switch st.Status {
	case hangman.StatusWon:
		return t.Win
	case hangman.StatusLost:
		return t.Lose
	default:
		return t.Gallows
	}
}

// drawGallows draws the hangman picture for the remaining lives
func drawGallows(s tcell.Screen, x, y int, st hangman.State, t Theme) {
	style := DefStyle.Foreground(gallowsColor(st, t))
	for i, line := range strings.Split(hangman.Gallows(st.Lives, st.MaxLives), "\n") {
		drawText(s, x, y+i, style, line)
	}
}

// drawWord draws the masked word, revealed letters and placeholders styled apart
func drawWord(s tcell.Screen, x, y int, st hangman.State, t Theme) {
	letterStyle := DefStyle.Foreground(t.Letter).Bold(true)
	placeholderStyle := DefStyle.Foreground(t.Placeholder)

	for _, r := range st.Masked {
		if r == hangman.Placeholder {
			drawRune(s, x, y, placeholderStyle, r)
		} else {
			drawRune(s, x, y, letterStyle, r)
		}
		x++
	}
}

// drawLives displays a meter with one cell per life of the difficulty
func drawLives(s tcell.Screen, x, y int, st hangman.State, t Theme) {
	fullStyle := DefStyle.Foreground(t.LifeFull)
	lostStyle := DefStyle.Foreground(t.LifeLost)

	for i := 0; i < st.MaxLives; i++ {
		if i < st.Lives {
			drawRune(s, x+i*2, y, fullStyle, lifeRune)
		} else {
			drawRune(s, x+i*2, y, lostStyle, lifeLostRune)
		}
	}
}

// drawHints displays the hints left
func drawHints(s tcell.Screen, x, y int, st hangman.State, t Theme) {
	style := DefStyle.Foreground(t.Status)
	drawText(s, x, y, style, fmt.Sprintf("Hints: %d", st.Hints))
}

// Render draws the board inside the given rectangle
func Render(s tcell.Screen, x, y, width, height int, gs *GameState) {
	if gs.State.Status == hangman.StatusSelecting {
		style := DefStyle.Foreground(gs.Theme.Msg)
		drawText(s, x+leftMargin, y+topMargin, style, "Choose a difficulty to start")
		return
	}

	x += leftMargin
	y += topMargin

	drawGallows(s, x, y, gs.State, gs.Theme)
	drawWord(s, x, y+6, gs.State, gs.Theme)
	drawLives(s, x, y+8, gs.State, gs.Theme)
	drawHints(s, x, y+9, gs.State, gs.Theme)
}
