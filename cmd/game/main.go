// cmd/game/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"go-void-survivor/internal/assets"
	"go-void-survivor/internal/audio"
	"go-void-survivor/internal/config"
	"go-void-survivor/internal/state"
	"go-void-survivor/internal/storage"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	showFPS        bool
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds() * config.TicksPerSecond
	if deltaTime > config.MaxDeltaTicks {
		deltaTime = config.MaxDeltaTicks
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
	if a.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()))
	}
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	var (
		slot     = flag.Int("slot", 0, "save slot (0-2)")
		seed     = flag.Int64("seed", 0, "rng seed, 0 for time-based")
		saveDir  = flag.String("save-dir", ".", "directory for save files")
		fontPath = flag.String("font", assets.DefaultFontPath, "ttf/otf font")
		rounds   = flag.Int("rounds", config.DefaultChallengeRun, "boss rounds in challenge mode")
		logLevel = flag.String("log-level", "info", "debug|info|warn|error")
		mute     = flag.Bool("mute", false, "disable sound")
		pprof    = flag.String("pprof", "", "pprof listen address, e.g. localhost:6060")
		showFPS  = flag.Bool("fps", false, "show TPS/FPS overlay")
	)
	flag.Parse()

	logger := newLogger(*logLevel)
	slog.SetDefault(logger)

	if *pprof != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprof, nil))
		}()
	}

	store := storage.NewManager(*saveDir, logger)
	session := &state.Session{
		Store:   store,
		Face:    assets.FaceOrDefault(*fontPath, 16, logger),
		BigFace: assets.FaceOrDefault(*fontPath, 40, logger),
		Logger:  logger,
		Seed:    *seed,
		Rounds:  *rounds,
	}
	if err := session.SelectSlot(*slot); err != nil {
		logger.Error("load slot", "slot", *slot, "err", err)
		os.Exit(1)
	}

	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio unavailable", "err", err)
	}
	defer sound.Cleanup()
	sound.SetMuted(*mute)
	session.Sound = sound

	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewMenuState(sm, session))
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		showFPS:        *showFPS,
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Void Survivor")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
