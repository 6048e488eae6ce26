package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hamed0406/uptimeping/internal/domain"
)

type Config struct {
	LogDir   string // logs directory; empty logs to stderr only
	LogLevel string

	BotToken     string // Telegram bot token
	ChatID       string // Telegram chat receiving alerts
	TelegramAPI  string // Bot API base, overridable for tests and self-hosted gateways
	SlackWebhook string // optional second alert channel

	HeartbeatURL     string
	HeartbeatTimeout time.Duration

	HTTPTimeout    time.Duration
	TCPTimeout     time.Duration
	CommandTimeout time.Duration // 0 means no bound

	MaxConcurrentChecks int // 1 runs probes sequentially

	Addr           string   // serve mode bind address
	AllowedOrigins []string // serve mode CORS origins
	AdminAPIKeys   []string // keys allowed to trigger runs in serve mode

	TargetsFile string
	Targets     []domain.Target
}

func FromEnv() Config {
	return FromEnviron(os.Environ())
}

// FromEnviron reads "KEY=value" pairs. Later duplicates win, as with the
// process environment.
func FromEnviron(environ []string) Config {
	env := toMap(environ)
	get := func(k, def string) string {
		if v := strings.TrimSpace(env[k]); v != "" {
			return v
		}
		return def
	}

	return Config{
		LogDir:   env["LOG_DIR"],
		LogLevel: get("LOG_LEVEL", "info"),

		BotToken:     get("BOT_TOKEN", ""),
		ChatID:       get("CHAT_ID", ""),
		TelegramAPI:  get("TELEGRAM_API_URL", "https://api.telegram.org"),
		SlackWebhook: get("SLACK_WEBHOOK_URL", ""),

		HeartbeatURL:     get("HEALTHCHECK_URL", ""),
		HeartbeatTimeout: millis(env, "HEARTBEAT_TIMEOUT_MS", 10*time.Second, false),

		HTTPTimeout:    millis(env, "PROBE_HTTP_TIMEOUT_MS", 5*time.Second, false),
		TCPTimeout:     millis(env, "PROBE_TCP_TIMEOUT_MS", 5*time.Second, false),
		CommandTimeout: millis(env, "PROBE_COMMAND_TIMEOUT_MS", 60*time.Second, true),

		MaxConcurrentChecks: positiveInt(env, "MAX_CONCURRENT_CHECKS", 1),

		Addr:           get("API_ADDR", "127.0.0.1:8080"),
		AllowedOrigins: splitList(env["ALLOWED_ORIGINS"]),
		AdminAPIKeys:   splitList(env["ADMIN_API_KEYS"]),

		TargetsFile: get("TARGETS_FILE", ""),
		Targets:     DiscoverTargets(environ),
	}
}

func toMap(environ []string) map[string]string {
	m := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		m[k] = v
	}
	return m
}

// millis parses a millisecond count. allowZero lets 0 disable the bound.
func millis(env map[string]string, key string, def time.Duration, allowZero bool) time.Duration {
	v := strings.TrimSpace(env[key])
	if v == "" {
		return def
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms < 0 || (ms == 0 && !allowZero) {
		return def
	}
	return time.Duration(ms) * time.Millisecond
}

func positiveInt(env map[string]string, key string, def int) int {
	if n, err := strconv.Atoi(strings.TrimSpace(env[key])); err == nil && n > 0 {
		return n
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
