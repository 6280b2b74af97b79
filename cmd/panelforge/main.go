package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"panelforge/internal/editor"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
	})

	cfg, err := editor.LoadConfig("panelforge.toml")
	if err != nil {
		logger.Warn("config load failed, using defaults", "err", err)
	}

	ed, err := editor.New(cfg, logger)
	if err != nil {
		logger.Fatal("editor init failed", "err", err)
	}
	defer ed.Shutdown()

	ebiten.SetWindowTitle("PanelForge")
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(ed); err != nil {
		logger.Fatal("editor exited", "err", err)
	}
}
