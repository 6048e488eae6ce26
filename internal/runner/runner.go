package runner

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hamed0406/uptimeping/internal/domain"
)

// Prober checks one target and reports its own failures.
type Prober interface {
	Probe(ctx context.Context, t domain.Target) domain.Result
}

// Heartbeat is signalled only after a fully healthy pass.
type Heartbeat interface {
	Ping(ctx context.Context)
}

type Runner struct {
	Logger      *zap.Logger
	Prober      Prober
	Heartbeat   Heartbeat
	Concurrency int
}

func NewRunner(logger *zap.Logger, p Prober, hb Heartbeat, concurrency int) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return &Runner{
		Logger:      logger,
		Prober:      p,
		Heartbeat:   hb,
		Concurrency: concurrency,
	}
}

// Ordered returns targets grouped HTTP, then COMMAND, then TCP, keeping the
// discovery order inside each group.
func Ordered(targets []domain.Target) []domain.Target {
	out := make([]domain.Target, len(targets))
	copy(out, targets)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}

// RunAll executes one pass over targets and pings the heartbeat iff every
// probe is healthy. Results come back in Ordered order regardless of
// Concurrency.
func (r *Runner) RunAll(ctx context.Context, targets []domain.Target) domain.RunOutcome {
	start := time.Now()
	ordered := Ordered(targets)
	results := make([]domain.Result, len(ordered))

	if r.Concurrency == 1 {
		for i, t := range ordered {
			results[i] = r.Prober.Probe(ctx, t)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(r.Concurrency)
		for i, t := range ordered {
			i, t := i, t
			g.Go(func() error {
				results[i] = r.Prober.Probe(ctx, t)
				return nil
			})
		}
		_ = g.Wait()
	}

	outcome := domain.RunOutcome{Results: results}
	r.Logger.Info("run_complete",
		zap.Int("targets", len(results)),
		zap.Int("failed", len(outcome.Failed())),
		zap.Bool("all_healthy", outcome.AllHealthy()),
		zap.Duration("took", time.Since(start)),
	)

	if outcome.AllHealthy() && r.Heartbeat != nil {
		r.Heartbeat.Ping(ctx)
	}
	return outcome
}
