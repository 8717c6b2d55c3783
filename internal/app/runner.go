package app

import (
	"context"
	"sync"
	"time"

	"go-void-survivor/internal/config"

	"golang.org/x/sync/errgroup"
)

// Runner гоняет Game в реальном времени. Game не потокобезопасна,
// поэтому весь доступ хоста идёт через Do.
type Runner struct {
	mu   sync.Mutex
	game *Game
	now  func() time.Time
}

func NewRunner(g *Game) *Runner {
	return &Runner{game: g, now: time.Now}
}

// Do выполняет fn под блокировкой симуляции.
func (r *Runner) Do(fn func(g *Game)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(r.game)
}

// Run шагает симуляцию с периодом interval, пока забег не закончится или ctx не отменён.
// Дополнительные функции (например, опрос ввода) запускаются в той же группе
// и получают контекст, который отменяется по окончании забега.
func (r *Runner) Run(ctx context.Context, interval time.Duration, extra ...func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer cancel()
		return r.loop(ctx, interval)
	})
	for _, fn := range extra {
		eg.Go(func() error { return fn(ctx) })
	}
	return eg.Wait()
}

func (r *Runner) loop(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	tick := time.Second / config.TicksPerSecond
	last := r.now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
		now := r.now()
		dt := float64(now.Sub(last)) / float64(tick)
		last = now

		var (
			err  error
			over bool
		)
		r.Do(func(g *Game) {
			err = g.Step(dt)
			over = g.Over()
		})
		if err != nil {
			return err
		}
		if over {
			return nil
		}
	}
}
