package pkg

import (
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

const nicknameWords = 2

type Player struct {
	Name string
}

// NewPlayer returns a player called name, or a generated name when name is blank.
func NewPlayer(name string) *Player {
	name = strings.TrimSpace(name)
	if name == "" {
		name = petname.Generate(nicknameWords, "-")
	}

	return &Player{
		Name: name,
	}
}
