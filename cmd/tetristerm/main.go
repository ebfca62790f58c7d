package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/qnkhuat/tetristerm/pkg"
	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/gui"
	"github.com/qnkhuat/tetristerm/pkg/mino"
	"github.com/qnkhuat/tetristerm/pkg/tty"
)

// frontend is a terminal that can be played on
type frontend interface {
	game.Input
	game.Renderer
	Close() error
}

func main() {
	logPath := flag.String("log", "", "path to log file, logs are discarded when empty")
	plain := flag.Bool("plain", false, "draw with plain ANSI escapes instead of the full screen interface")
	themeName := flag.String("theme", gui.ThemeBasic.Name, "color theme")
	themeFile := flag.String("themes", "", "JSON file with additional themes")
	seed := flag.Int64("seed", 0, "seed of the piece sequence, picked from the clock when 0")
	name := flag.String("name", "", "session name, random when empty")
	logDebug := flag.Bool("debug", false, "enable debug logging")
	logVerbose := flag.Bool("verbose", false, "enable verbose logging")
	flag.Parse()

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		log.Fatal("failed to start tetristerm: non-interactive terminals are not supported")
	}

	theme, err := loadTheme(*themeName, *themeFile)
	if err != nil {
		log.Fatalf("failed to start tetristerm: %s", err)
	}

	if err := pkg.InitLog(*logPath, "TETRISTERM: "); err != nil {
		log.Fatalf("failed to start tetristerm: %s", err)
	}

	if *name == "" {
		*name = pkg.SessionName()
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	g := game.NewGame(mino.NewRandomSource(*seed))
	g.Name = *name
	if *logVerbose {
		g.LogLevel = game.LogVerbose
	} else if *logDebug {
		g.LogLevel = game.LogDebug
	}
	g.Logf(game.LogStandard, "New game, seed %d", *seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = play(ctx, g, func() (frontend, error) {
		if *plain {
			return tty.NewTerminal(os.Stdin, os.Stdout)
		}
		return gui.NewTerminal(theme)
	})
	printSummary(g)

	if err != nil && !errors.Is(err, context.Canceled) {
		color.New(color.FgRed).Fprintf(os.Stderr, "tetristerm: %s\n", err)
		stop()
		log.Fatalf("Exiting: %s", err)
	}
}

func loadTheme(want, file string) (gui.Theme, error) {
	var themes []gui.ThemeHex
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return gui.Theme{}, err
		}
		defer f.Close()

		themes, err = gui.LoadThemes(f)
		if err != nil {
			return gui.Theme{}, err
		}
	}

	return gui.FindTheme(want, themes)
}

// play runs g on the terminal returned by open until the game ends. The
// terminal is closed on every way out, panics included.
func play(ctx context.Context, g *game.Game, open func() (frontend, error)) (err error) {
	term, err := open()
	if err != nil {
		return err
	}

	defer func() {
		r := recover()
		closeErr := term.Close()
		if r != nil {
			panic(r)
		}
		if err == nil {
			err = closeErr
		}
	}()

	return g.Run(ctx, term, term, game.NewLevelPacer())
}

func printSummary(g *game.Game) {
	title := color.New(color.FgHiWhite, color.Bold)
	value := color.New(color.FgHiYellow)

	title.Printf("%s\n", g.Name)
	fmt.Printf("Score %s  Level %s  Lines %s\n",
		value.Sprint(g.Board.Score), value.Sprint(g.Board.Level), value.Sprint(g.Board.LinesCleared))
}
