package main

import (
	"context"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

func main() {
	log := newLogger(os.Stderr)

	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	reader := NewSerialReader(cfg.Serial, log.WithField("component", "serial"))
	session := NewSession(cfg, reader, log.WithField("component", "session"))
	openErr := reader.Open()

	a := app.NewWithID(appID)
	w := a.NewWindow(windowTitle)
	w.Resize(fyne.NewSize(1200, 700))

	ui := NewAppUI(w, session, cfg, log.WithField("component", "ui"))
	if openErr != nil {
		ui.ShowOpenError(openErr)
	} else {
		ui.SetConnected(true)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.SetOnClosed(cancel)
	go ui.Run(ctx)

	w.ShowAndRun()

	cancel()
	if err := reader.Close(); err != nil {
		log.WithError(err).Warn("failed to close serial port")
	}
}
