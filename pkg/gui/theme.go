package gui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Terminal safe color palette is available here
// Themes should be limited to the colors defined in this reference
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name        string      `json:"name"`
	Title       tcell.Color `json:"title"`
	Gallows     tcell.Color `json:"gallows"`
	Letter      tcell.Color `json:"letter"`
	Placeholder tcell.Color `json:"placeholder"`
	Status      tcell.Color `json:"status"`
	Score       tcell.Color `json:"score"`
	Msg         tcell.Color `json:"msg"`
	Error       tcell.Color `json:"error"`
	Win         tcell.Color `json:"win"`
	Lose        tcell.Color `json:"lose"`
	LifeFull    tcell.Color `json:"lifeFull"`
	LifeLost    tcell.Color `json:"lifeLost"`
}

// ThemeHex is the JSON form of a Theme, as found in the config file
type ThemeHex struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Gallows     string `json:"gallows"`
	Letter      string `json:"letter"`
	Placeholder string `json:"placeholder"`
	Status      string `json:"status"`
	Score       string `json:"score"`
	Msg         string `json:"msg"`
	Error       string `json:"error"`
	Win         string `json:"win"`
	Lose        string `json:"lose"`
	LifeFull    string `json:"lifeFull"`
	LifeLost    string `json:"lifeLost"`
}

// fmtHex returns a one character hex for the ColorDefault
// and otherwise it returns a standard hex. This is useful
// because it allows ColorDefault to be imported from the config
// and parsed properly rather than being interpreted as black
func fmtHex(v int32) string {
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

// Tag returns the tview color tag for c, "-" resetting to the default.
func Tag(c tcell.Color) string {
	if c.Hex() == -1 {
		return "[-]"
	}
	return fmt.Sprintf("[#%06x]", c.Hex())
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		t.Name,
		fmtHex(t.Title.Hex()),
		fmtHex(t.Gallows.Hex()),
		fmtHex(t.Letter.Hex()),
		fmtHex(t.Placeholder.Hex()),
		fmtHex(t.Status.Hex()),
		fmtHex(t.Score.Hex()),
		fmtHex(t.Msg.Hex()),
		fmtHex(t.Error.Hex()),
		fmtHex(t.Win.Hex()),
		fmtHex(t.Lose.Hex()),
		fmtHex(t.LifeFull.Hex()),
		fmtHex(t.LifeLost.Hex()),
	}
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() Theme {
	return Theme{
		t.Name,
		tcell.GetColor(t.Title),
		tcell.GetColor(t.Gallows),
		tcell.GetColor(t.Letter),
		tcell.GetColor(t.Placeholder),
		tcell.GetColor(t.Status),
		tcell.GetColor(t.Score),
		tcell.GetColor(t.Msg),
		tcell.GetColor(t.Error),
		tcell.GetColor(t.Win),
		tcell.GetColor(t.Lose),
		tcell.GetColor(t.LifeFull),
		tcell.GetColor(t.LifeLost),
	}
}

// ImportThemes returns a converted Theme from a slice of ThemeHex
// entities if its name matches the want argument, falling back to
// the built-in themes
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	// First check if want is in the provided config (override)
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}

	for _, t := range Themes {
		if t.Name == want {
			return t, nil
		}
	}

	return Theme{}, errors.New("theme: no theme found")
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	"basic",            // Name
	tcell.Color160,     // Title
	tcell.Color247,     // Gallows
	tcell.ColorDefault, // Letter
	tcell.Color240,     // Placeholder
	tcell.Color247,     // Status
	tcell.Color45,      // Score
	tcell.Color247,     // Msg
	tcell.Color160,     // Error
	tcell.Color122,     // Win
	tcell.Color167,     // Lose
	tcell.Color167,     // LifeFull
	tcell.Color240,     // LifeLost
}

// ThemeDark suits terminals with a black background
var ThemeDark = Theme{
	"dark",           // Name
	tcell.Color226,   // Title
	tcell.Color252,   // Gallows
	tcell.ColorWhite, // Letter
	tcell.Color244,   // Placeholder
	tcell.Color250,   // Status
	tcell.Color51,    // Score
	tcell.Color252,   // Msg
	tcell.Color203,   // Error
	tcell.Color84,    // Win
	tcell.Color203,   // Lose
	tcell.Color197,   // LifeFull
	tcell.Color238,   // LifeLost
}

// Themes are the built-in themes
var Themes = []Theme{ThemeBasic, ThemeDark}
