package domain

import (
	"fmt"
	"strings"
	"time"
)

type Kind int

const (
	KindHTTP Kind = iota
	KindCommand
	KindTCP
)

func (k Kind) String() string {
	switch k {
	case KindHTTP:
		return "http"
	case KindCommand:
		return "command"
	case KindTCP:
		return "tcp"
	default:
		return "unknown"
	}
}

// ParseKind accepts the names used in config files; "p2p" is an alias for tcp.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "http":
		return KindHTTP, nil
	case "command", "cmd":
		return KindCommand, nil
	case "tcp", "p2p":
		return KindTCP, nil
	}
	return 0, fmt.Errorf("unknown probe kind %q", s)
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Target is one monitored dependency. Endpoint is a URL, a shell command or
// host:port depending on Kind.
type Target struct {
	Name     string `json:"name" yaml:"name"`
	Kind     Kind   `json:"kind" yaml:"kind"`
	Endpoint string `json:"endpoint" yaml:"endpoint"`
}

type Result struct {
	Target     Target    `json:"target"`
	Healthy    bool      `json:"healthy"`
	Detail     string    `json:"detail,omitempty"`
	StatusCode int       `json:"status_code,omitempty"`
	LatencyMS  float64   `json:"latency_ms"`
	CheckedAt  time.Time `json:"checked_at"`
}
