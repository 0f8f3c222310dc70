package cli

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"flipfit/src/puzzlelib"
	"flipfit/src/puzzlelib/base"
	"flipfit/src/puzzlelib/drag"
	"flipfit/src/puzzlelib/themes"

	"golang.org/x/term"
)

const usage = `commands:
  themes               list themes
  select <n|id|name>   start a puzzle
  move <n> <x> <y>     drag piece n to board position (x, y)
  flip <n>             flip piece n
  shuffle | flipall | solve | reset
  show                 draw the board
  list                 list pieces
  help, q`

type CLIProcessing struct {
	builder *puzzlelib.PuzzleBuilder
	in      io.Reader
	out     io.Writer
	prompt  bool

	boardW, boardH float64
}

func NewCLI(b *puzzlelib.PuzzleBuilder, boardW, boardH int) *CLIProcessing {
	return NewCLIWithIO(b, os.Stdin, os.Stdout, boardW, boardH)
}

// NewCLIWithIO wires custom streams, the prompt is shown only on a terminal
func NewCLIWithIO(b *puzzlelib.PuzzleBuilder, in io.Reader, out io.Writer, boardW, boardH int) *CLIProcessing {
	c := &CLIProcessing{builder: b, in: in, out: out, boardW: float64(boardW), boardH: float64(boardH)}
	if f, ok := in.(*os.File); ok {
		c.prompt = term.IsTerminal(int(f.Fd()))
	}
	b.SetNotifier(func(n base.Notification) {
		fmt.Fprintln(c.out, RenderToast(n))
	})
	return c
}

func (c *CLIProcessing) RunLineMode() error {
	scanner := bufio.NewScanner(c.in)
	fmt.Fprintln(c.out, RenderThemes(themes.All()))
	fmt.Fprintln(c.out, helpStyle.Render("Type 'select <n>' to play, 'help' for commands, 'q' to quit."))
	for {
		if c.prompt {
			fmt.Fprint(c.out, "> ")
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "q" || line == "Q" || line == "quit" {
			return nil
		}
		if err := c.exec(strings.Fields(line)); err != nil {
			fmt.Fprintln(c.out, errorStyle.Render(err.Error()))
		}
	}
	return scanner.Err()
}

func (c *CLIProcessing) exec(args []string) error {
	switch args[0] {
	case "help", "?":
		fmt.Fprintln(c.out, helpStyle.Render(usage))
	case "themes":
		fmt.Fprintln(c.out, RenderThemes(themes.All()))
	case "select":
		if len(args) < 2 {
			return fmt.Errorf("usage: select <n|id|name>")
		}
		t, ok := lookupTheme(strings.Join(args[1:], " "))
		if !ok {
			return fmt.Errorf("unknown theme %q", strings.Join(args[1:], " "))
		}
		c.builder.SelectTheme(t)
		c.show()
	case "move":
		if len(args) != 4 {
			return fmt.Errorf("usage: move <n> <x> <y>")
		}
		id, err := c.pieceID(args[1])
		if err != nil {
			return err
		}
		x, errX := strconv.ParseFloat(args[2], 64)
		y, errY := strconv.ParseFloat(args[3], 64)
		if errX != nil || errY != nil || math.IsNaN(x) || math.IsNaN(y) {
			return fmt.Errorf("bad position %s %s", args[2], args[3])
		}
		// same bounds a drag is held to
		x = drag.Clamp(x, c.boardW-base.TileSize)
		y = drag.Clamp(y, c.boardH-base.TileSize)
		c.builder.Board().OnMove(id, x, y)
		c.show()
	case "flip":
		if len(args) != 2 {
			return fmt.Errorf("usage: flip <n>")
		}
		id, err := c.pieceID(args[1])
		if err != nil {
			return err
		}
		c.builder.Board().OnFlip(id)
		c.show()
	case "shuffle":
		c.builder.Shuffle()
		c.show()
	case "flipall":
		c.builder.FlipAll()
		c.show()
	case "solve":
		c.builder.Solve()
		c.show()
	case "reset":
		c.builder.Reset()
		fmt.Fprintln(c.out, RenderThemes(themes.All()))
	case "show":
		c.show()
	case "list":
		for _, p := range c.builder.Pieces() {
			fmt.Fprintln(c.out, p.String())
		}
	default:
		return fmt.Errorf("unknown command %q, try 'help'", args[0])
	}
	return nil
}

// pieceID parses a 1-based piece number as shown on the badges
func (c *CLIProcessing) pieceID(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad piece number %q: %w", s, err)
	}
	if _, ok := c.builder.Piece(n - 1); !ok {
		return 0, fmt.Errorf("no piece %d", n)
	}
	return n - 1, nil
}

func (c *CLIProcessing) show() {
	t, ok := c.builder.Theme()
	if !ok {
		fmt.Fprintln(c.out, helpStyle.Render("no puzzle in progress, 'select' a theme first"))
		return
	}
	fmt.Fprintln(c.out, titleStyle.Render("Playing: "+t.Name))
	fmt.Fprintln(c.out, RenderBoard(c.builder.Pieces(), c.boardW, c.boardH))
}

func lookupTheme(s string) (base.Theme, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		all := themes.All()
		if n >= 1 && n <= len(all) {
			return all[n-1], true
		}
		return base.Theme{}, false
	}
	if t, ok := themes.ByID(strings.ToLower(s)); ok {
		return t, true
	}
	for _, t := range themes.All() {
		if strings.EqualFold(t.Name, s) {
			return t, true
		}
	}
	return base.Theme{}, false
}
