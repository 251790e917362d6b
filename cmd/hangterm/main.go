package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/qnkhuat/hangterm/pkg"
	"github.com/qnkhuat/hangterm/pkg/gui"
	"github.com/qnkhuat/hangterm/pkg/hangman"
	"golang.org/x/term"
)

var (
	logPath        string
	configPath     string
	difficultyFlag string
	nicknameFlag   string
	themeFlag      string
	seed           int64

	logDebug   bool
	logVerbose bool
)

// fatalf reports on the terminal, as the log may not be open yet.
func fatalf(format string, a ...interface{}) {
	color.New(color.FgRed).Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}

func main() {
	flag.StringVar(&logPath, "log", "./hangterm.log", "path to log file")
	flag.StringVar(&configPath, "config", "", "path to JSON config file")
	flag.StringVar(&difficultyFlag, "difficulty", "", "difficulty of the first round: easy, medium or hard")
	flag.StringVar(&nicknameFlag, "nick", "", "nickname")
	flag.StringVar(&themeFlag, "theme", "", "color theme")
	flag.Int64Var(&seed, "seed", 0, "random seed, 0 picks one from the clock")
	flag.BoolVar(&logDebug, "debug", false, "enable debug logging")
	flag.BoolVar(&logVerbose, "verbose", false, "enable verbose logging")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fatalf("failed to start hangterm: non-interactive terminals are not supported")
	}

	cfg, err := pkg.LoadConfig(configPath)
	if err != nil {
		fatalf("%s", err)
	}
	if difficultyFlag != "" {
		cfg.Difficulty = difficultyFlag
	}
	if nicknameFlag != "" {
		cfg.Nickname = nicknameFlag
	}
	if themeFlag != "" {
		cfg.Theme = themeFlag
	}

	difficulty, err := hangman.ParseDifficulty(cfg.Difficulty)
	if err != nil {
		fatalf("%s", err)
	}
	theme, err := gui.ImportThemes(cfg.Theme, cfg.Themes)
	if err != nil {
		fatalf("%s: %s", err, cfg.Theme)
	}

	f := pkg.InitLog(logPath, "CLIENT: ")
	defer f.Close()

	logLevel := pkg.LogStandard
	if logVerbose {
		logLevel = pkg.LogVerbose
	} else if logDebug {
		logLevel = pkg.LogDebug
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("New session, seed %d", seed)

	cl := pkg.NewClient(hangman.NewSession(seed), pkg.NewPlayer(cfg.Nickname), theme, pkg.NewLogger(logLevel))
	cl.StartRound(difficulty)

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() {
		<-sigc

		cl.App.QueueUpdate(cl.Quit)
	}()

	if err := cl.Run(); err != nil {
		log.Printf("failed to run application: %s", err)
		fatalf("failed to run application: %s", err)
	}

	s := cl.Session
	color.New(color.FgCyan, color.Bold).Printf("Thanks for playing, %s!\n", cl.Player.Name)
	color.New(color.FgGreen).Printf("Rounds won: %d of %d\n", s.RoundsWon, s.RoundsPlayed)
	color.New(color.FgYellow, color.Bold).Printf("Total score: %d\n", s.TotalScore)
}
