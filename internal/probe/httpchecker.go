package probe

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type HTTPChecker struct {
	Client *http.Client
	// ClassifyDNS annotates transport failures with the DNS state of the host.
	ClassifyDNS bool
}

func NewHTTPChecker(timeout time.Duration) *HTTPChecker {
	return &HTTPChecker{
		Client:      &http.Client{Timeout: timeout},
		ClassifyDNS: true,
	}
}

// Check issues a GET; only an exact 200 counts as healthy.
func (h *HTTPChecker) Check(ctx context.Context, target string) CheckResult {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return CheckResult{Success: false, Message: "invalid url: " + err.Error()}
	}

	resp, err := h.Client.Do(req)
	latency := time.Since(start).Seconds() * 1000 // ms
	if err != nil {
		msg := "unreachable: " + err.Error()
		if h.ClassifyDNS {
			if host := extractHost(target); host != "" {
				msg = fmt.Sprintf("%s (dns=%s)", msg, CheckDNS(host).Class)
			}
		}
		return CheckResult{Success: false, Message: msg, LatencyMS: latency}
	}
	defer resp.Body.Close()

	return CheckResult{
		Success:    resp.StatusCode == http.StatusOK,
		Message:    fmt.Sprintf("status: %d", resp.StatusCode),
		StatusCode: resp.StatusCode,
		LatencyMS:  latency,
	}
}

func extractHost(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
