package probe

import (
	"fmt"
	"time"

	"github.com/hamed0406/uptimeping/internal/domain"
)

// Registry maps each target kind to the Checker that handles it.
type Registry map[domain.Kind]Checker

type Timeouts struct {
	HTTP    time.Duration
	TCP     time.Duration
	Command time.Duration
}

func NewRegistry(t Timeouts) Registry {
	return Registry{
		domain.KindHTTP:    NewHTTPChecker(t.HTTP),
		domain.KindCommand: NewCommandChecker(t.Command),
		domain.KindTCP:     NewTCPChecker(t.TCP),
	}
}

func (r Registry) For(k domain.Kind) (Checker, error) {
	c, ok := r[k]
	if !ok || c == nil {
		return nil, fmt.Errorf("no checker registered for kind %s", k)
	}
	return c, nil
}
