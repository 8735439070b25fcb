package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jask/plslides/catalog"
	"github.com/jask/plslides/core"
	"github.com/jask/plslides/internal/config"
	"github.com/jask/plslides/internal/logging"
	"github.com/jask/plslides/slides"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	defaults := core.DefaultKeyBindings()
	known := core.DefaultKeybindingsByAction(defaults)
	for action := range cfg.Keys {
		if _, ok := known[action]; !ok {
			logger.Warn("ignoring keys for unknown action", zap.String("action", action))
		}
	}
	keys := core.NewKeyRegistry(core.ApplyActionKeybindings(defaults, cfg.Keys))
	lib := slides.NewLibrary(keys,
		slides.WithMarkdownStyle(markdownStyle(cfg.UI.MarkdownStyle)),
		slides.WithLogger(logger),
	)
	if cfg.Content.Dir != "" {
		err = lib.LoadDir(cfg.Content.Dir)
	} else {
		err = lib.LoadFS(catalog.Decks())
	}
	if err != nil {
		return fmt.Errorf("load decks: %w", err)
	}

	registry, err := catalog.Registry(lib)
	if err != nil {
		return err
	}

	model := core.NewModel(registry, catalog.VisibleIDs, keys, logger)
	model.OnMessage = lib.Apply

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, opts...)

	if cfg.Content.Dir != "" && cfg.Content.Watch {
		w, err := slides.Watch(ctx, cfg.Content.Dir, p.Send, logger)
		if err != nil {
			logger.Warn("live reload disabled", zap.Error(err))
		} else {
			defer w.Close()
		}
	}

	logger.Info("starting", zap.Int("chapters", registry.Len()), zap.Int("decks", len(lib.Names())))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// markdownStyle resolves "auto" before the program owns the terminal, since
// background detection reads from it.
func markdownStyle(style string) string {
	if style != "auto" {
		return style
	}
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}
