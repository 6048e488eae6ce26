// Package heartbeat signals a dead-man's-switch service after a fully
// healthy run.
package heartbeat

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const DefaultTimeout = 10 * time.Second

type Pinger struct {
	URL    string
	Client *http.Client
	Logger *zap.Logger
}

func NewPinger(logger *zap.Logger, url string, timeout time.Duration) *Pinger {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Pinger{
		URL:    url,
		Client: &http.Client{Timeout: timeout},
		Logger: logger,
	}
}

// Ping sends one GET. The outcome is only logged: a missed heartbeat is a
// gap in observability, not a failed check.
func (p *Pinger) Ping(ctx context.Context) {
	if p == nil || p.URL == "" {
		if p != nil {
			p.Logger.Warn("heartbeat_skipped", zap.String("reason", "no heartbeat url configured"))
		}
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL, nil)
	if err != nil {
		p.Logger.Error("heartbeat_failed", zap.Error(err))
		return
	}
	resp, err := p.Client.Do(req)
	if err != nil {
		p.Logger.Error("heartbeat_failed", zap.Error(err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		p.Logger.Error("heartbeat_failed", zap.Int("status", resp.StatusCode))
		return
	}
	p.Logger.Info("heartbeat_ok", zap.Int("status", resp.StatusCode))
}
