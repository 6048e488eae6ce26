package notify

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Sink is the only path alerts take out of the process. It sanitizes every
// message, serializes deliveries and swallows transport errors after logging
// them, so alerting can never change the outcome of a run.
type Sink struct {
	logger   *zap.Logger
	notifier Notifier

	mu sync.Mutex
}

func NewSink(logger *zap.Logger, n Notifier) *Sink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sink{logger: logger, notifier: n}
}

// FromChannels builds a Sink over whichever channels are configured.
func FromChannels(logger *zap.Logger, tg *Telegram, slack *Slack) *Sink {
	var m Multi
	if tg != nil {
		m = append(m, tg)
	}
	if slack != nil {
		m = append(m, slack)
	}
	if len(m) == 0 {
		return NewSink(logger, nil)
	}
	return NewSink(logger, m)
}

func (s *Sink) Notify(ctx context.Context, message string) {
	if s == nil {
		return
	}
	text := Sanitize(message)
	if s.notifier == nil {
		s.logger.Warn("alert_skipped", zap.String("reason", "no alert channel configured"), zap.String("text", text))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	resp, err := s.notifier.Send(ctx, text)
	if err != nil {
		s.logger.Error("alert_failed", zap.String("text", text), zap.String("error", Sanitize(err.Error())))
		return
	}
	s.logger.Info("alert_sent", zap.String("text", text), zap.String("response", resp))
}
