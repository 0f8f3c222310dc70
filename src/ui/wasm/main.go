package main

import (
	"errors"
	"fmt"

	"flipfit/src/logx"
	"flipfit/src/puzzlelib"
	"flipfit/src/ui/gui"
	"flipfit/src/ui/gui/gbase"
	"flipfit/src/ui/gui/gbase/gconf"
	"flipfit/src/ui/gui/ghelper/gdialog"
)

func GetLogger() *logx.Logx {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString("debug"),
		false,
		true,
	)
	l.InitLogger(nil)
	return l
}

// browser build: no config file, defaults only
func RunGUI() error {
	logger := GetLogger()
	g, err := gui.NewGUI(puzzlelib.NewPuzzleBuilder(logger), gconf.Default(), logger)
	if err != nil {
		logger.Errorf("error init GUI: %v", err)
		return fmt.Errorf("error init GUI: %w", err)
	}
	return g.Run()
}

func main() {
	if err := RunGUI(); err != nil && !errors.Is(err, gbase.ErrExit) {
		gdialog.ShowError("Flip & Fit", err)
	}
}
