package pkg

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/hangterm/pkg/gui"
	"github.com/qnkhuat/hangterm/pkg/hangman"
	"github.com/rivo/tview"
)

const (
	pageGame    = "game"
	pageOutcome = "outcome"

	layoutWidth = 52
)

// Client is the terminal front end. It forwards input to the session and
// redraws from the state it gets back.
type Client struct {
	App     *tview.Application
	Pages   *tview.Pages
	Layout  *tview.Grid
	Board   *tview.Box
	Title   *tview.TextView
	Status  *tview.TextView
	Score   *tview.TextView
	Message *tview.TextView
	Input   *tview.InputField
	Outcome *tview.Modal

	Session *hangman.Session
	Player  *Player
	Theme   gui.Theme
	Logger  *Logger

	buttons     map[Action]*tview.Button
	focusables  []tview.Primitive
	focused     int
	difficulty  hangman.Difficulty
	state       hangman.State
	outcomeText string
	showOutcome bool
}

func NewClient(session *hangman.Session, player *Player, theme gui.Theme, logger *Logger) *Client {
	app := tview.NewApplication()

	cl := &Client{
		App:     app,
		Session: session,
		Player:  player,
		Theme:   theme,
		Logger:  logger,
		buttons: make(map[Action]*tview.Button),
		state:   session.State(),
	}

	cl.Title = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)

	cl.Board = tview.NewBox()
	cl.Board.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		gui.Render(screen, x, y, width, height, &gui.GameState{State: cl.state, Theme: cl.Theme})
		return x, y, width, height
	})

	cl.Status = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)

	cl.Score = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)

	cl.Message = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter).
		SetWrap(true).
		SetWordWrap(true)

	cl.Input = tview.NewInputField().
		SetLabel("Guess: ").
		SetFieldWidth(10).
		SetDoneFunc(func(key tcell.Key) {
			if key == tcell.KeyEnter {
				cl.SubmitGuess(cl.Input.GetText())
			}
		})

	for _, d := range hangman.Difficulties {
		d := d
		cl.buttons[Action(d.String())] = tview.NewButton(d.String()).SetSelectedFunc(func() {
			cl.StartRound(d)
		})
	}
	cl.buttons[ActionGuess] = tview.NewButton(ActionGuess.String()).SetSelectedFunc(func() {
		cl.SubmitGuess(cl.Input.GetText())
	})
	cl.buttons[ActionHint] = tview.NewButton(ActionHint.String()).SetSelectedFunc(func() {
		cl.UseHint()
	})

	difficultyRow := tview.NewGrid().
		SetColumns(-1, 10, 1, 10, 1, 10, -1).
		AddItem(cl.buttons[ActionEasy], 0, 1, 1, 1, 0, 0, false).
		AddItem(cl.buttons[ActionMedium], 0, 3, 1, 1, 0, 0, false).
		AddItem(cl.buttons[ActionHard], 0, 5, 1, 1, 0, 0, false)

	guessRow := tview.NewGrid().
		SetColumns(-1, 17, 1, 9, 1, 8, -1).
		AddItem(cl.Input, 0, 1, 1, 1, 0, 0, true).
		AddItem(cl.buttons[ActionGuess], 0, 3, 1, 1, 0, 0, false).
		AddItem(cl.buttons[ActionHint], 0, 5, 1, 1, 0, 0, false)

	cl.Layout = tview.NewGrid().
		SetRows(-1, 3, 1, 1, gui.BoardHeight, 1, 1, 1, 1, 1, 2, -1).
		SetColumns(-1, layoutWidth, -1).
		AddItem(cl.Title, 1, 1, 1, 1, 0, 0, false).
		AddItem(difficultyRow, 2, 1, 1, 1, 0, 0, false).
		AddItem(cl.Board, 4, 1, 1, 1, 0, 0, false).
		AddItem(cl.Status, 5, 1, 1, 1, 0, 0, false).
		AddItem(guessRow, 7, 1, 1, 1, 0, 0, true).
		AddItem(cl.Score, 9, 1, 1, 1, 0, 0, false).
		AddItem(cl.Message, 10, 1, 1, 1, 0, 0, false)

	cl.Outcome = tview.NewModal().
		AddButtons([]string{ActionPlayAgain.String(), ActionQuit.String()}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			cl.handleOutcome(buttonLabel)
		})

	cl.Pages = tview.NewPages().
		AddPage(pageGame, cl.Layout, true, true)

	cl.focusables = []tview.Primitive{
		cl.Input,
		cl.buttons[ActionGuess],
		cl.buttons[ActionHint],
		cl.buttons[ActionEasy],
		cl.buttons[ActionMedium],
		cl.buttons[ActionHard],
	}

	app.SetInputCapture(cl.handleKeypress)
	app.SetRoot(cl.Pages, true)

	cl.setMessage("Choose a difficulty: F1 Easy, F2 Medium, F3 Hard", cl.Theme.Msg)
	cl.render()
	cl.focus(3)

	return cl
}

// Run blocks until the player quits.
func (cl *Client) Run() error {
	return cl.App.EnableMouse(true).Run()
}

func (cl *Client) Quit() {
	cl.Logger.Logf(LogStandard, "%s quit after %d rounds, total score %d", cl.Player.Name, cl.Session.RoundsPlayed, cl.Session.TotalScore)
	cl.App.Stop()
}

// StartRound begins a new round, abandoning the one in progress.
func (cl *Client) StartRound(d hangman.Difficulty) {
	cl.difficulty = d
	cl.state = cl.Session.Start(d)

	word := cl.Session.Round().Word
	cl.Logger.Message(roundStartMessage(cl.state, word))

	cl.hideOutcome()
	cl.Input.SetText("")
	cl.setMessage(fmt.Sprintf("New %s round: %d letters. Good luck, %s!", d, len(word), tview.Escape(cl.Player.Name)), cl.Theme.Msg)
	cl.render()
	cl.focus(0)
}

// SubmitGuess sends the text typed by the player as a guess.
func (cl *Client) SubmitGuess(text string) {
	cl.Input.SetText("")

	lives := cl.state.Lives
	st, err := cl.Session.Guess(text)
	cl.state = st
	if err != nil {
		cl.report(err)
		return
	}

	letter := strings.ToLower(text)
	correct := st.Lives == lives
	cl.Logger.Message(MessageGuess{
		RoundID: st.RoundID,
		Letter:  letter,
		Correct: correct,
		Lives:   st.Lives,
		Masked:  st.Masked,
	})

	if correct {
		cl.setMessage(fmt.Sprintf("Good guess, %q is in the word", letter), cl.Theme.Win)
	} else {
		cl.setMessage(fmt.Sprintf("No %q in the word", letter), cl.Theme.Lose)
	}

	cl.render()
	cl.checkOver()
}

// UseHint reveals a letter if the round allows it.
func (cl *Client) UseHint() {
	c, st, err := cl.Session.Hint()
	cl.state = st
	if err != nil {
		cl.report(err)
		return
	}

	cl.Logger.Message(MessageHint{
		RoundID: st.RoundID,
		Letter:  string(c),
		Hints:   st.Hints,
		Masked:  st.Masked,
	})
	cl.setMessage(fmt.Sprintf("Hint: try %q (%d left)", c, st.Hints), cl.Theme.Msg)

	cl.render()
	cl.checkOver()
}

func (cl *Client) report(err error) {
	cl.Logger.Logf(LogDebug, "Rejected input: %s", err)
	cl.setMessage(err.Error(), cl.Theme.Error)
	cl.render()
}

func (cl *Client) checkOver() {
	o := cl.state.Outcome
	if o == nil {
		return
	}

	cl.Logger.Message(roundOverMessage(cl.state))

	if o.Won {
		cl.outcomeText = fmt.Sprintf("You won in %s!\nWord: %s\nScore: %d (Lives: %dx%d + Hints: %dx%d)\n\nPlay again?",
			seconds(o.Elapsed), o.Word, o.Score, o.Lives, hangman.LifeBonus, o.Hints, hangman.HintBonus)
	} else {
		cl.outcomeText = fmt.Sprintf("Game Over! Word was: %s\nTime: %s\n\nPlay again?", o.Word, seconds(o.Elapsed))
	}

	cl.showOutcome = true
	cl.Outcome.SetText(cl.outcomeText)
	cl.Pages.AddPage(pageOutcome, cl.Outcome, false, true)
	cl.App.SetFocus(cl.Outcome)
}

func (cl *Client) hideOutcome() {
	if !cl.showOutcome {
		return
	}

	cl.showOutcome = false
	cl.outcomeText = ""
	cl.Pages.RemovePage(pageOutcome)
}

func (cl *Client) handleOutcome(label string) {
	switch Action(label) {
	case ActionPlayAgain:
		cl.StartRound(cl.difficulty)
	default:
		cl.Quit()
	}
}

func (cl *Client) handleKeypress(ev *tcell.EventKey) *tcell.EventKey {
	switch ev.Key() {
	case tcell.KeyEscape:
		cl.Quit()
		return nil
	case tcell.KeyF1:
		cl.StartRound(hangman.Easy)
		return nil
	case tcell.KeyF2:
		cl.StartRound(hangman.Medium)
		return nil
	case tcell.KeyF3:
		cl.StartRound(hangman.Hard)
		return nil
	}

	if cl.showOutcome {
		return ev
	}

	switch ev.Key() {
	case tcell.KeyTab:
		cl.syncFocus()
		cl.focus(cl.focused + 1)
		return nil
	case tcell.KeyBacktab:
		cl.syncFocus()
		cl.focus(cl.focused - 1)
		return nil
	case tcell.KeyRune:
		if ev.Rune() == '?' {
			cl.UseHint()
			return nil
		}
		// Letters typed while a button has focus still count as guesses.
		if cl.App.GetFocus() != cl.Input && cl.state.Status == hangman.StatusInProgress {
			cl.SubmitGuess(string(ev.Rune()))
			return nil
		}
	}

	return ev
}

func (cl *Client) focus(i int) {
	n := len(cl.focusables)
	cl.focused = ((i % n) + n) % n
	cl.App.SetFocus(cl.focusables[cl.focused])
}

// syncFocus picks up focus changes made outside of focus, e.g. by a mouse click.
func (cl *Client) syncFocus() {
	current := cl.App.GetFocus()
	for i, p := range cl.focusables {
		if p == current {
			cl.focused = i
			return
		}
	}
}

func (cl *Client) setMessage(msg string, color tcell.Color) {
	cl.Message.SetText(gui.Tag(color) + tview.Escape(msg))
}

func (cl *Client) render() {
	t := cl.Theme
	st := cl.state

	title := fmt.Sprintf("%sHangman Game[-]\n%s%s", gui.Tag(t.Title), gui.Tag(t.Status), tview.Escape(cl.Player.Name))
	if st.Status != hangman.StatusSelecting {
		title += " · " + st.Difficulty.String()
	}
	cl.Title.SetText(title)

	if st.Status == hangman.StatusSelecting {
		cl.Status.SetText("")
	} else {
		cl.Status.SetText(fmt.Sprintf("%sLives: %d | Hints: %d | Guessed: %s", gui.Tag(t.Status), st.Lives, st.Hints, strings.Join(st.Guessed, ", ")))
	}

	cl.Score.SetText(fmt.Sprintf("%sTotal Score: %d", gui.Tag(t.Score), st.TotalScore))
}
