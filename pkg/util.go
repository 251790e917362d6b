package pkg

import (
	"fmt"
	"log"
	"os"
)

const (
	LogStandard = iota
	LogDebug
	LogVerbose
)

// InitLog sends the standard logger to dest, the terminal belonging to the UI.
func InitLog(dest, prefix string) *os.File {
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	log.SetOutput(f)
	log.SetPrefix(prefix)
	return f
}

// Logger filters log lines by level before handing them to the standard logger.
type Logger struct {
	Level int
}

func NewLogger(level int) *Logger {
	return &Logger{Level: level}
}

func (l *Logger) Log(level int, a ...interface{}) {
	if l == nil || level > l.Level {
		return
	}

	log.Print(a...)
}

func (l *Logger) Logf(level int, format string, a ...interface{}) {
	if l == nil || level > l.Level {
		return
	}

	log.Printf(format, a...)
}

// Message logs a game message. Round boundaries are standard, the moves in
// between are debug and the full payload is only written when verbose.
func (l *Logger) Message(m MessageInterface) {
	level := LogDebug
	if t := m.Type(); t == TypeMessageRoundStart || t == TypeMessageRoundOver {
		level = LogStandard
	}

	if l != nil && l.Level >= LogVerbose {
		l.Log(level, fmt.Sprintf("%s %s", m.Type(), Wrap(m).Encode()))
		return
	}
	l.Log(level, describe(m))
}

func describe(m MessageInterface) string {
	switch m := m.(type) {
	case MessageRoundStart:
		return fmt.Sprintf("Round %s started: %s, %d letters, %d lives", m.RoundID, m.Difficulty, m.Length, m.Lives)
	case MessageGuess:
		return fmt.Sprintf("Round %s guess %q correct=%v lives=%d %s", m.RoundID, m.Letter, m.Correct, m.Lives, m.Masked)
	case MessageHint:
		return fmt.Sprintf("Round %s hint %q hints=%d %s", m.RoundID, m.Letter, m.Hints, m.Masked)
	case MessageRoundOver:
		return fmt.Sprintf("Round %s over: won=%v word=%s score=%d total=%d time=%.1fs", m.RoundID, m.Won, m.Word, m.Score, m.TotalScore, m.Elapsed)
	default:
		return m.Type().String()
	}
}
