package config

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/hamed0406/uptimeping/internal/domain"
	"github.com/hamed0406/uptimeping/internal/probe"
)

// Validate reports every configuration problem at once. A run still works
// with a malformed TCP target; that probe just fails.
func Validate(cfg Config) error {
	var err error
	if (cfg.BotToken == "" || cfg.ChatID == "") && cfg.SlackWebhook == "" {
		err = multierr.Append(err, errors.New("no alert channel: set BOT_TOKEN and CHAT_ID, or SLACK_WEBHOOK_URL"))
	}
	if cfg.BotToken != "" && cfg.ChatID == "" {
		err = multierr.Append(err, errors.New("BOT_TOKEN is set but CHAT_ID is empty"))
	}
	if cfg.HeartbeatURL == "" {
		err = multierr.Append(err, errors.New("HEALTHCHECK_URL is empty; successful runs will not be reported"))
	}
	for _, t := range cfg.Targets {
		if t.Kind != domain.KindTCP {
			continue
		}
		if _, _, perr := probe.ParseHostPort(t.Endpoint); perr != nil {
			err = multierr.Append(err, fmt.Errorf("target %q: %w", t.Name, perr))
		}
	}
	return err
}
