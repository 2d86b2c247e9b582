package repl

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"connect4/internal/game"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var errQuit = errors.New("quit")

// Shell is a line-oriented front end over one game session
type Shell struct {
	engine  *game.Engine
	session *game.Session
	prompt  string
	log     zerolog.Logger
}

// New returns a shell over s that logs commands to log
func New(e *game.Engine, s *game.Session, prompt string, log zerolog.Logger) *Shell {
	return &Shell{
		engine:  e,
		session: s,
		prompt:  prompt,
		log:     log.With().Str("component", "repl").Logger(),
	}
}

// Run reads commands from in until EOF or "quit"
func (sh *Shell) Run(in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	fmt.Fprint(out, sh.prompt)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			err := sh.Exec(line, out)
			if errors.Is(err, errQuit) {
				return nil
			}
			if err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			}
		}
		fmt.Fprint(out, sh.prompt)
	}
	return sc.Err()
}

// Exec runs a single command line
func (sh *Shell) Exec(line string, out io.Writer) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	sh.log.Debug().Str("cmd", cmd).Strs("args", args).Msg("command")

	switch cmd {
	case "quit", "exit":
		return errQuit
	case "help":
		fmt.Fprintln(out, helpText)
	case "show":
		sh.show(out)
	case "valid":
		fmt.Fprintln(out, sh.engine.IsStateValid(sh.session.Board))
	case "turn":
		p, err := sh.engine.CurrentPlayer(sh.session.Board)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, p)
	case "winner":
		w, err := sh.engine.Winner(sh.session.Board)
		if err != nil {
			return err
		}
		if w == game.Empty {
			fmt.Fprintln(out, false)
		} else {
			fmt.Fprintf(out, "true (%s)\n", w)
		}
	case "play":
		return sh.play(args, out)
	case "undo":
		if err := sh.session.Undo(); err != nil {
			return err
		}
		sh.show(out)
	case "reset":
		sh.session.Reset()
		sh.show(out)
	case "load":
		b, err := game.ParseBoard(strings.Join(args, "/"))
		if err != nil {
			return err
		}
		if err := sh.session.Load(b); err != nil {
			return err
		}
		sh.show(out)
	default:
		return errors.Errorf("unknown command %q, try help", cmd)
	}
	return nil
}

func (sh *Shell) play(args []string, out io.Writer) error {
	if len(args) == 0 || len(args) > 2 {
		return errors.New("usage: play <col> [y|r]")
	}
	col, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.Wrap(err, "column")
	}
	var m game.Move
	if len(args) == 2 {
		// unknown tags still go to the engine so it reports the rejection
		color, err := game.ParseCell(args[1])
		if err != nil {
			color = game.UnknownCell
		}
		m, err = sh.session.PlayAs(col, color)
		if err != nil {
			return err
		}
	} else if m, err = sh.session.Play(col); err != nil {
		return err
	}
	sh.log.Info().Int("row", m.Row).Int("col", m.Col).Stringer("color", m.Color).Msg("move played")
	sh.show(out)
	if w := sh.session.Winner(); w != game.Empty {
		fmt.Fprintf(out, "%s wins\n", w)
	} else if game.IsFull(sh.session.Board) {
		fmt.Fprintln(out, "draw")
	}
	return nil
}

func (sh *Shell) show(out io.Writer) {
	fmt.Fprintln(out, "0123456")
	fmt.Fprintln(out, sh.session.Board)
}

const helpText = `commands:
  show              print the board
  valid             report whether the board is a legal position
  turn              print the color to move
  winner            report whether someone has four in a row
  play <col> [y|r]  drop a disc, defaulting to the current player
  undo              take back the last move
  reset             start over on an empty board
  load <rows...>    replace the board, rows top to bottom, e.g. load ....... ....... ....... ....... ....... y......
  quit              leave`
