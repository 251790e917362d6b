package hangman

// gallowsStages runs from the empty gallows to the complete figure.
var gallowsStages = []string{
	"  +---+\n      |\n      |\n      |\n     ===",
	"  +---+\n  O   |\n      |\n      |\n     ===",
	"  +---+\n  O   |\n  |   |\n      |\n     ===",
	"  +---+\n  O   |\n /|   |\n      |\n     ===",
	"  +---+\n  O   |\n /|\\  |\n      |\n     ===",
	"  +---+\n  O   |\n /|\\  |\n /    |\n     ===",
	"  +---+\n  O   |\n /|\\  |\n / \\  |\n     ===",
}

// GallowsStages is the number of distinct drawings.
var GallowsStages = len(gallowsStages)

// GallowsStage maps wrong guesses onto a drawing index. The budget is spread
// over the stages so the last one appears only when no lives are left.
func GallowsStage(lives, maxLives int) int {
	if maxLives <= 0 {
		return 0
	}
	if lives < 0 {
		lives = 0
	} else if lives > maxLives {
		lives = maxLives
	}

	wrong := maxLives - lives
	return wrong * (len(gallowsStages) - 1) / maxLives
}

// Gallows returns the drawing for the given lives.
func Gallows(lives, maxLives int) string {
	return gallowsStages[GallowsStage(lives, maxLives)]
}
