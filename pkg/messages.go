package pkg

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/qnkhuat/hangterm/pkg/hangman"
)

type MessageType int

const (
	TypeMessageRoundStart MessageType = iota
	TypeMessageGuess
	TypeMessageHint
	TypeMessageRoundOver
	TypeMessageTransport
)

func (m MessageType) String() string {
	switch m {
	case TypeMessageRoundStart:
		return "TypeMessageRoundStart"
	case TypeMessageGuess:
		return "TypeMessageGuess"
	case TypeMessageHint:
		return "TypeMessageHint"
	case TypeMessageRoundOver:
		return "TypeMessageRoundOver"
	case TypeMessageTransport:
		return "TypeMessageTransport"
	default:
		return "Unknown MessageType"
	}
}

type MessageInterface interface {
	Type() MessageType
	Encode() json.RawMessage
}

func encode(v interface{}) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		log.Panic(err)
	}
	return data
}

// Message types

//
type MessageTransport struct {
	MsgType MessageType
	Data    json.RawMessage
}

func (m MessageTransport) Type() MessageType {
	return TypeMessageTransport
}

func (m MessageTransport) Encode() json.RawMessage {
	return encode(m)
}

// Wrap puts a message in a transport envelope tagged with its type.
func Wrap(m MessageInterface) MessageTransport {
	return MessageTransport{MsgType: m.Type(), Data: m.Encode()}
}

//
type MessageRoundStart struct {
	RoundID    string
	Difficulty string
	Length     int
	Lives      int
}

func (m MessageRoundStart) Type() MessageType {
	return TypeMessageRoundStart
}

func (m MessageRoundStart) Encode() json.RawMessage {
	return encode(m)
}

//
type MessageGuess struct {
	RoundID string
	Letter  string
	Correct bool
	Lives   int
	Masked  string
}

func (m MessageGuess) Type() MessageType {
	return TypeMessageGuess
}

func (m MessageGuess) Encode() json.RawMessage {
	return encode(m)
}

//
type MessageHint struct {
	RoundID string
	Letter  string
	Hints   int
	Masked  string
}

func (m MessageHint) Type() MessageType {
	return TypeMessageHint
}

func (m MessageHint) Encode() json.RawMessage {
	return encode(m)
}

//
type MessageRoundOver struct {
	RoundID    string
	Won        bool
	Word       string
	Score      int
	TotalScore int
	Elapsed    float64
}

func (m MessageRoundOver) Type() MessageType {
	return TypeMessageRoundOver
}

func (m MessageRoundOver) Encode() json.RawMessage {
	return encode(m)
}

func roundStartMessage(st hangman.State, word string) MessageRoundStart {
	return MessageRoundStart{
		RoundID:    st.RoundID,
		Difficulty: st.Difficulty.String(),
		Length:     len(word),
		Lives:      st.Lives,
	}
}

func roundOverMessage(st hangman.State) MessageRoundOver {
	o := st.Outcome
	return MessageRoundOver{
		RoundID:    st.RoundID,
		Won:        o.Won,
		Word:       o.Word,
		Score:      o.Score,
		TotalScore: st.TotalScore,
		Elapsed:    o.Elapsed.Round(hangman.ElapsedPrecision).Seconds(),
	}
}

// seconds formats a duration the way outcomes report it, e.g. 65.4s.
func seconds(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Round(hangman.ElapsedPrecision).Seconds())
}
