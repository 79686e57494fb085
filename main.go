package main

import (
	"log/slog"

	"speedrunlauncher/logging"
	"speedrunlauncher/ui"
)

func main() {
	level := new(slog.LevelVar)
	logging.Setup(level)

	slog.Info("starting launcher")
	app := ui.NewMainWindow(level)
	app.ShowAndRun()
}
