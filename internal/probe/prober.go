package probe

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/uptimeping/internal/domain"
)

// Alerter receives one message per failed check.
type Alerter interface {
	Notify(ctx context.Context, message string)
}

// Prober runs targets through the registry and raises an alert for every
// unhealthy result before returning it.
type Prober struct {
	Logger   *zap.Logger
	Registry Registry
	Alerts   Alerter
}

func NewProber(logger *zap.Logger, reg Registry, alerts Alerter) *Prober {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Prober{Logger: logger, Registry: reg, Alerts: alerts}
}

func (p *Prober) Probe(ctx context.Context, t domain.Target) (res domain.Result) {
	res = domain.Result{Target: t}
	defer func() {
		if r := recover(); r != nil {
			res.Healthy = false
			res.Detail = fmt.Sprintf("check panicked: %v", r)
			res.CheckedAt = time.Now().UTC()
			p.report(ctx, res)
		}
	}()

	var out CheckResult
	if chk, err := p.Registry.For(t.Kind); err != nil {
		out = CheckResult{Success: false, Message: err.Error()}
	} else {
		out = chk.Check(ctx, t.Endpoint)
	}

	res.Healthy = out.Success
	res.Detail = out.Message
	res.StatusCode = out.StatusCode
	res.LatencyMS = out.LatencyMS
	res.CheckedAt = time.Now().UTC()
	p.report(ctx, res)
	return res
}

func (p *Prober) report(ctx context.Context, res domain.Result) {
	fields := []zap.Field{
		zap.String("name", res.Target.Name),
		zap.Stringer("kind", res.Target.Kind),
		zap.Float64("latency_ms", res.LatencyMS),
		zap.String("detail", res.Detail),
	}
	if res.Healthy {
		p.Logger.Info("probe_healthy", fields...)
		return
	}
	p.Logger.Warn("probe_failed", fields...)
	if p.Alerts != nil {
		p.Alerts.Notify(ctx, AlertMessage(res))
	}
}

// AlertMessage is the text sent for a failed result.
func AlertMessage(res domain.Result) string {
	if res.Detail == "" {
		return fmt.Sprintf("Alert: %s is DOWN", res.Target.Name)
	}
	return fmt.Sprintf("Alert: %s is DOWN. %s", res.Target.Name, res.Detail)
}
