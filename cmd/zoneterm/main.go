package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/iw2rmb/zoneterm"
	"github.com/iw2rmb/zoneterm/config"
	"github.com/iw2rmb/zoneterm/console"
	"github.com/iw2rmb/zoneterm/internal/logging"
	"github.com/iw2rmb/zoneterm/market"
	"github.com/iw2rmb/zoneterm/store"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "zoneterm:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("zoneterm", flag.ContinueOnError)
	configPath := fs.String("config", config.DefaultPath, "path to the YAML config file")
	symbol := fs.String("symbol", "", "trading pair to watch (overrides config)")
	saveFile := fs.String("save", "", "zone save file (overrides config)")
	showVersion := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if *showVersion {
		fmt.Println("zoneterm", zoneterm.VersionTag())
		return nil
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *symbol != "" {
		cfg.Symbol = strings.ToUpper(*symbol)
	}
	if *saveFile != "" {
		cfg.SaveFile = *saveFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, closeLog, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	data, created, err := store.LoadOrCreate(cfg.SaveFile)
	if err != nil {
		return fmt.Errorf("loading zones: %w", err)
	}
	log.Info("zones loaded",
		slog.String("path", cfg.SaveFile),
		slog.Int("count", len(data.Zones)),
		slog.Bool("created", created),
	)

	feed := market.NewBinanceFeed(cfg.Endpoint,
		market.WithRateLimit(cfg.RequestsPerSecond),
		market.WithUserAgent(zoneterm.UserAgent()),
	)
	poller := market.NewPoller(feed, cfg.Symbol, cfg.TickInterval, log)

	model := console.New(console.Config{
		Symbol:        cfg.Symbol,
		SaveFile:      cfg.SaveFile,
		Zones:         data.ZoneList(),
		AnalyzeEvery:  cfg.AnalyzeEvery,
		AlertCapacity: cfg.AlertCapacity,
		NextSample:    poller.WaitCmd,
		Logger:        log,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return poller.Run(gctx)
	})
	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	})

	err = g.Wait()
	log.Info("exiting", slog.Any("error", err))
	return err
}
