package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultTelegramAPI = "https://api.telegram.org"

// Telegram posts alerts through the Bot API sendMessage method.
type Telegram struct {
	APIBase string
	Token   string
	ChatID  string
	Client  *http.Client
}

// NewTelegram returns nil when the bot is not configured.
func NewTelegram(apiBase, token, chatID string) *Telegram {
	if token == "" || chatID == "" {
		return nil
	}
	if apiBase == "" {
		apiBase = DefaultTelegramAPI
	}
	return &Telegram{
		APIBase: strings.TrimRight(apiBase, "/"),
		Token:   token,
		ChatID:  chatID,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (t *Telegram) endpoint() string {
	return t.APIBase + "/bot" + t.Token + "/sendMessage"
}

func (t *Telegram) Send(ctx context.Context, text string) (string, error) {
	if t == nil {
		return "", errors.New("telegram disabled")
	}
	form := url.Values{}
	form.Set("chat_id", t.ChatID)
	form.Set("text", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint(), strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("telegram request: %w", redactToken(err, t.Token))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("telegram send: %w", redactToken(err, t.Token))
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	body := strings.TrimSpace(string(raw))
	if resp.StatusCode/100 != 2 {
		return "", fmt.Errorf("telegram status %d: %s", resp.StatusCode, body)
	}
	return strings.TrimSpace(fmt.Sprintf("telegram %d %s", resp.StatusCode, body)), nil
}

// redactToken keeps the bot token out of logged url.Error values.
func redactToken(err error, token string) error {
	if token == "" || !strings.Contains(err.Error(), token) {
		return err
	}
	return errors.New(strings.ReplaceAll(err.Error(), token, "<redacted>"))
}
