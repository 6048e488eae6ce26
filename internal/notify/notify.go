package notify

import (
	"context"
	"strings"

	"go.uber.org/multierr"
)

// Notifier delivers one free-text alert to an external channel. On success
// it returns the channel's response, e.g. "telegram 200 {"ok":true}".
type Notifier interface {
	Send(ctx context.Context, text string) (string, error)
}

// Multi sends to every configured channel and reports all failures.
type Multi []Notifier

func (m Multi) Send(ctx context.Context, text string) (string, error) {
	var (
		err      error
		receipts []string
	)
	for _, n := range m {
		if n == nil {
			continue
		}
		r, sendErr := n.Send(ctx, text)
		if sendErr != nil {
			err = multierr.Append(err, sendErr)
			continue
		}
		receipts = append(receipts, r)
	}
	return strings.Join(receipts, "; "), err
}
