package ui

import (
	"context"
	"errors"
	"fmt"
	"os"

	"flipfit/src/logx"
	"flipfit/src/puzzlelib"
	clic "flipfit/src/ui/cli"
	"flipfit/src/ui/gui"
	"flipfit/src/ui/gui/gbase"
	"flipfit/src/ui/gui/gbase/gconf"
	"flipfit/src/ui/gui/ghelper/gdialog"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

const logfile string = "flipfit.log"

func GetLogger(file *os.File, c *cli.Command) *logx.Logx {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString(c.String("level")),
		c.Bool("dev"),
		c.Bool("console"),
	)
	l.InitLogger(file)
	return l
}

func newBuilder(c *cli.Command, logger logx.Logger) *puzzlelib.PuzzleBuilder {
	var opts []puzzlelib.Option
	if seed := c.Int64("seed"); seed != 0 {
		opts = append(opts, puzzlelib.WithSeed(seed))
	}
	return puzzlelib.NewPuzzleBuilder(logger, opts...)
}

func RunGUI(c *cli.Command) error {
	file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("error open logfile: %w", err)
	}
	defer file.Close()
	logger := GetLogger(file, c)
	defer logger.Sync() //nolint:errcheck

	cfg, err := gconf.Load(c.String("config"))
	if err != nil {
		logger.Errorf("error load config: %v", err)
		gdialog.ShowError("Flip & Fit", err)
		return err
	}
	if c.Bool("debug") {
		cfg.Debug = true
	}
	g, err := gui.NewGUI(newBuilder(c, logger), cfg, logger)
	if err != nil {
		logger.Errorf("error init GUI: %v", err)
		gdialog.ShowError("Flip & Fit", err)
		return fmt.Errorf("error init GUI: %w", err)
	}
	return g.Run()
}

func RunCLI(c *cli.Command) error {
	file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("error open logfile: %w", err)
	}
	defer file.Close()
	logger := GetLogger(file, c)
	defer logger.Sync() //nolint:errcheck

	cfg, err := gconf.Load(c.String("config"))
	if err != nil {
		return err
	}
	clic.EnableANSI()
	cl := clic.NewCLI(newBuilder(c, logger), cfg.BoardW, cfg.BoardH)
	return cl.RunLineMode()
}

func RunFlipFit() error {
	// .env is optional, real environment wins
	_ = godotenv.Load()

	df := &cli.BoolFlag{
		Name:    "dev",
		Aliases: []string{"d"},
		Usage:   "dev encode log",
		Sources: cli.EnvVars("FLIPFIT_DEV"),
	}
	lf := &cli.StringFlag{
		Name:        "level",
		Aliases:     []string{"l"},
		Usage:       "level log",
		DefaultText: "info",
		Sources:     cli.EnvVars("FLIPFIT_LEVEL"),
	}
	cf := &cli.BoolFlag{
		Name:    "console",
		Aliases: []string{"c"},
		Usage:   "console log",
		Sources: cli.EnvVars("FLIPFIT_CONSOLE"),
	}
	sf := &cli.Int64Flag{
		Name:    "seed",
		Aliases: []string{"s"},
		Usage:   "scatter seed, 0 picks one from the clock",
		Sources: cli.EnvVars("FLIPFIT_SEED"),
	}
	pf := &cli.StringFlag{
		Name:    "config",
		Usage:   "path to config file",
		Value:   gconf.DefaultFile,
		Sources: cli.EnvVars("FLIPFIT_CONFIG"),
	}
	bf := &cli.BoolFlag{
		Name:    "debug",
		Usage:   "debug overlay",
		Sources: cli.EnvVars("FLIPFIT_DEBUG"),
	}
	cliff := []cli.Flag{df, lf, cf, sf, pf}
	guiff := []cli.Flag{df, lf, cf, sf, pf, bf}

	runGUI := func(ctx context.Context, c *cli.Command) error {
		if err := RunGUI(c); err != nil && !errors.Is(err, gbase.ErrExit) {
			fmt.Printf("error GUI: %v\n", err)
		}
		return nil
	}

	return (&cli.Command{
		Name:  "flipfit",
		Usage: "drag-and-drop picture puzzle",
		Flags: guiff,
		Commands: []*cli.Command{
			{
				Name:  "cli",
				Usage: "play in the terminal",
				Flags: cliff,
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := RunCLI(c); err != nil {
						fmt.Printf("error flipfit: %v\n", err)
					}
					return nil
				},
			},
			{
				Name:   "gui",
				Usage:  "open the game window",
				Flags:  guiff,
				Action: runGUI,
			},
		},
		Action: runGUI,
	}).Run(context.Background(), os.Args)
}
