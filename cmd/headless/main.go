// cmd/headless/main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"go-void-survivor/internal/app"
	"go-void-survivor/internal/component"
	"go-void-survivor/internal/event"
	"go-void-survivor/internal/storage"
	"go-void-survivor/internal/utils"
)

func main() {
	var (
		mode     = flag.String("mode", "classic", "classic|challenge")
		seed     = flag.Int64("seed", 1, "rng seed, 0 for time-based")
		maxTicks = flag.Int("ticks", 60*60*20, "stop after this many ticks")
		rounds   = flag.Int("rounds", 0, "boss rounds in challenge mode, 0 for default")
		slot     = flag.Int("slot", -1, "save slot to read upgrades from and credit, -1 for none")
		saveDir  = flag.String("save-dir", ".", "directory for save files")
		asJSON   = flag.Bool("json", false, "print outcome as JSON")
		logLevel = flag.String("log-level", "warn", "debug|info|warn|error")
	)
	flag.Parse()

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(*logLevel)); err != nil {
		lvl = slog.LevelWarn
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	var (
		store *storage.Manager
		save  storage.SaveData
	)
	if *slot >= 0 {
		store = storage.NewManager(*saveDir, logger)
		var err error
		if save, err = store.Load(*slot); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load slot: %v\n", err)
			os.Exit(1)
		}
	}

	m := component.ModeClassic
	if strings.EqualFold(*mode, "challenge") {
		m = component.ModeChallenge
	}
	g := app.NewGame(app.Options{
		Mode:            m,
		Seed:            *seed,
		Upgrades:        save.Upgrades,
		PagesFound:      save.TotalPagesFound,
		ChallengeRounds: *rounds,
		Logger:          logger,
	})

	var outcome *event.Outcome
	g.Register(g.Events.Subscribe(event.RunOver, event.ListenerFunc(func(e event.Event) {
		if out, ok := e.Data.(event.Outcome); ok {
			outcome = &out
		}
	})))
	g.Register(g.Events.Subscribe(event.ProgressChanged, event.ListenerFunc(func(e event.Event) {
		if p, ok := e.Data.(event.Progress); ok {
			storage.ApplyProgress(&save, p)
		}
	})))
	g.Start("")

	bot := app.Bot{}
	ticks := 0
	for ; ticks < *maxTicks && !g.Over(); ticks++ {
		bot.Drive(g)
		if err := g.Step(1); err != nil {
			logger.Error("step failed", "tick", ticks, "err", err)
			os.Exit(1)
		}
	}
	if outcome == nil {
		snap := g.Snapshot()
		outcome = &event.Outcome{RunID: g.RunID(), Score: snap.Score, Coins: snap.Coins, Time: snap.Time, Level: snap.Level}
	}
	g.Stop()

	if store != nil {
		storage.ApplyOutcome(&save, *outcome)
		if err := store.Save(*slot, save); err != nil {
			logger.Warn("save failed", "err", err)
		}
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(outcome); err != nil {
			fmt.Fprintf(os.Stderr, "encode: %v\n", err)
			os.Exit(1)
		}
		return
	}
	fmt.Printf("run=%s victory=%v score=%d time=%s level=%d coins=%d bonus=%d ticks=%d\n",
		outcome.RunID, outcome.Victory, outcome.Score, utils.FormatClock(outcome.Time), outcome.Level, outcome.Coins, outcome.Bonus, ticks)
}
