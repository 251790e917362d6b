package pkg

type Action string

const (
	ActionEasy      Action = "Easy"
	ActionMedium    Action = "Medium"
	ActionHard      Action = "Hard"
	ActionGuess     Action = "Guess"
	ActionHint      Action = "Hint"
	ActionPlayAgain Action = "Play Again"
	ActionQuit      Action = "Quit"
)

func (a Action) String() string {
	return string(a)
}
