// cmd/tui/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"go-void-survivor/internal/app"
	"go-void-survivor/internal/audio"
	"go-void-survivor/internal/component"
	"go-void-survivor/internal/defs"
	"go-void-survivor/internal/event"
	"go-void-survivor/internal/storage"
	"go-void-survivor/internal/utils"

	"github.com/gdamore/tcell/v2"
)

const (
	frameInterval = 16 * time.Millisecond // ~60 FPS
	// в терминале нет событий отпускания клавиш: направление держится это время
	holdDuration = 180 * time.Millisecond
)

var enemyRunes = map[defs.Archetype]rune{
	defs.ArchetypeSlime:    's',
	defs.ArchetypeGoblin:   'g',
	defs.ArchetypeOrc:      'O',
	defs.ArchetypeGolem:    'G',
	defs.ArchetypeGravity:  '@',
	defs.ArchetypeKamikaze: 'k',
	defs.ArchetypeElite:    'E',
	defs.ArchetypeBoss:     'B',
}

type terminal struct {
	screen tcell.Screen
	runner *app.Runner
	notice string
	logs   []string

	axisX, axisY float64
	heldUntil    time.Time
}

func main() {
	var (
		slot     = flag.Int("slot", 0, "save slot (0-2)")
		mode     = flag.String("mode", "classic", "classic|challenge")
		seed     = flag.Int64("seed", 0, "rng seed, 0 for time-based")
		saveDir  = flag.String("save-dir", ".", "directory for save files")
		logFile  = flag.String("log-file", "survivor-tui.log", "log destination")
		logLevel = flag.String("log-level", "info", "debug|info|warn|error")
		mute     = flag.Bool("mute", false, "disable sound")
	)
	flag.Parse()

	f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(*logLevel)); err != nil {
		lvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl}))

	store := storage.NewManager(*saveDir, logger)
	save, err := store.Load(*slot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load slot: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	g := app.NewGame(app.Options{
		Mode:       parseMode(*mode),
		Seed:       *seed,
		Upgrades:   save.Upgrades,
		PagesFound: save.TotalPagesFound,
		Logger:     logger,
	})
	term := &terminal{screen: screen, runner: app.NewRunner(g)}

	sound := audio.NewSoundManager()
	if !*mute {
		if err := sound.Initialize(); err != nil {
			logger.Warn("audio unavailable", "err", err)
		}
	}
	g.Register(sound.Cleanup)
	g.Register(audio.NewCueListener(sound).Attach(g.Events))

	var outcome *event.Outcome
	g.Register(g.Events.SubscribeAll(event.ListenerFunc(func(e event.Event) {
		switch e.Type {
		case event.CenterNotification:
			term.notice, _ = e.Data.(string)
		case event.LogMessage:
			if s, ok := e.Data.(string); ok {
				term.logs = append(term.logs, s)
				if len(term.logs) > 3 {
					term.logs = term.logs[1:]
				}
			}
		case event.ProgressChanged:
			if p, ok := e.Data.(event.Progress); ok {
				storage.ApplyProgress(&save, p)
			}
		case event.RunOver:
			if out, ok := e.Data.(event.Outcome); ok {
				outcome = &out
			}
		}
	}), event.CenterNotification, event.LogMessage, event.ProgressChanged, event.RunOver))
	g.Start("")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, quit := context.WithCancel(ctx)
	defer quit()

	err = term.runner.Run(ctx, frameInterval, func(ctx context.Context) error {
		return term.input(ctx, quit)
	}, term.render)
	screen.Fini()
	g.Stop()

	if outcome != nil {
		storage.ApplyOutcome(&save, *outcome)
	}
	if serr := store.Save(*slot, save); serr != nil {
		logger.Warn("save failed", "err", serr)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Run failed: %v\n", err)
		os.Exit(1)
	}
	if outcome != nil {
		fmt.Printf("victory=%v score=%d time=%s level=%d coins=%d bonus=%d\n",
			outcome.Victory, outcome.Score, utils.FormatClock(outcome.Time), outcome.Level, outcome.Coins, outcome.Bonus)
	}
}

func parseMode(s string) component.Mode {
	if strings.EqualFold(s, "challenge") {
		return component.ModeChallenge
	}
	return component.ModeClassic
}

func (t *terminal) input(ctx context.Context, quit context.CancelFunc) error {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !t.handle(ev) {
				quit()
				return nil
			}
		}
	}
}

func (t *terminal) handle(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		if _, resize := ev.(*tcell.EventResize); resize {
			t.screen.Sync()
		}
		return true
	}
	if key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC || (key.Key() == tcell.KeyRune && key.Rune() == 'q') {
		return false
	}

	dx, dy := 0.0, 0.0
	switch key.Key() {
	case tcell.KeyLeft:
		dx = -1
	case tcell.KeyRight:
		dx = 1
	case tcell.KeyUp:
		dy = -1
	case tcell.KeyDown:
		dy = 1
	}

	t.runner.Do(func(g *app.Game) {
		if key.Key() == tcell.KeyRune {
			switch r := key.Rune(); r {
			case 'a', 'h':
				dx = -1
			case 'd', 'l':
				dx = 1
			case 'w', 'k':
				dy = -1
			case 's', 'j':
				dy = 1
			case ' ':
				g.Dash(t.axisX, t.axisY)
			case 'p':
				if g.Run.HostPaused {
					g.Resume()
				} else {
					g.Pause()
				}
			case '1', '2', '3':
				opts := g.PendingUpgrades()
				if i := int(r - '1'); i < len(opts) {
					_ = g.ApplyUpgrade(opts[i].ID)
				}
			}
		}
		if dx != 0 || dy != 0 {
			t.axisX, t.axisY = dx, dy
			t.heldUntil = time.Now().Add(holdDuration)
			g.SetInput(dx, dy)
		}
	})
	return true
}

func (t *terminal) render(ctx context.Context) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
		t.runner.Do(func(g *app.Game) {
			if !t.heldUntil.IsZero() && time.Now().After(t.heldUntil) {
				t.heldUntil = time.Time{}
				g.SetInput(0, 0)
			}
			t.draw(g)
		})
	}
}

func (t *terminal) draw(g *app.Game) {
	s := t.screen
	s.Clear()
	cols, rows := s.Size()
	field := rows - 3
	if cols < 10 || field < 5 {
		s.Show()
		return
	}
	w := g.World
	cell := func(x, y float64) (int, int, bool) {
		cx, cy := int(x/w.W*float64(cols)), 2+int(y/w.H*float64(field))
		return cx, cy, cx >= 0 && cx < cols && cy >= 2 && cy < rows-1
	}

	for _, p := range w.Pickups {
		r, clr := '◆', tcell.ColorGreen
		switch p.Kind {
		case component.PickupCoin, component.PickupBigCoin:
			r, clr = '$', tcell.ColorYellow
		case component.PickupDiary:
			r, clr = '?', tcell.ColorWhite
		}
		if x, y, ok := cell(p.Pos.X, p.Pos.Y); ok {
			s.SetContent(x, y, r, nil, tcell.StyleDefault.Foreground(clr))
		}
	}
	for _, pr := range w.Projectiles {
		r, clr := '·', tcell.ColorAqua
		if pr.Side == component.SideEnemy {
			clr = tcell.ColorRed
		}
		if pr.Shape == component.ShapeExplosion {
			r, clr = '*', tcell.ColorOrange
		}
		if x, y, ok := cell(pr.Pos.X, pr.Pos.Y); ok {
			s.SetContent(x, y, r, nil, tcell.StyleDefault.Foreground(clr))
		}
	}
	for _, e := range w.Enemies {
		if !e.Alive() {
			continue
		}
		r, ok := enemyRunes[e.Archetype]
		if !ok {
			r = 'e'
		}
		style := tcell.StyleDefault.Foreground(tcell.ColorRed)
		if e.IsBoss() {
			style = style.Bold(true).Foreground(tcell.ColorPurple)
		}
		if x, y, ok := cell(e.Pos.X, e.Pos.Y); ok {
			s.SetContent(x, y, r, nil, style)
		}
	}
	if p := w.Player; p != nil {
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
		if p.InvincibleTimer > 0 {
			style = tcell.StyleDefault.Foreground(tcell.ColorBlue).Reverse(true)
		}
		if x, y, ok := cell(p.Pos.X, p.Pos.Y); ok {
			s.SetContent(x, y, 'A', nil, style)
		}
	}

	snap := g.Snapshot()
	header := fmt.Sprintf("HP %d/%d  LV %d  XP %d/%d  %s  score %d  coins %d",
		snap.HP, snap.MaxHP, snap.Level, snap.XP, snap.XPNext, utils.FormatClock(snap.Time), snap.Score, snap.Coins)
	if snap.Round > 0 {
		header += fmt.Sprintf("  round %d", snap.Round)
	}
	if b := w.Boss(); b != nil {
		header += fmt.Sprintf("  BOSS %.0f/%.0f", b.HP, b.MaxHP)
	}
	t.line(0, 0, header, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
	if t.notice != "" {
		t.line((cols-len([]rune(t.notice)))/2, 1, t.notice, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	}
	t.line(0, rows-1, strings.Join(t.logs, " | "), tcell.StyleDefault.Foreground(tcell.ColorGray))

	if opts := g.PendingUpgrades(); len(opts) > 0 && g.Run.Paused {
		y := rows / 2
		t.line(2, y-1, "LEVEL UP", tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
		for i, o := range opts {
			t.line(2, y+i, fmt.Sprintf("%d. %s", i+1, o.Text), tcell.StyleDefault.Foreground(tcell.ColorWhite))
		}
	} else if g.Run.HostPaused {
		t.line(cols/2-3, rows/2, "PAUSED", tcell.StyleDefault.Reverse(true))
	}
	s.Show()
}

func (t *terminal) line(x, y int, text string, style tcell.Style) {
	if x < 0 {
		x = 0
	}
	for _, r := range text {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
