package probe

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

type TCPChecker struct {
	Timeout time.Duration
	dialer  net.Dialer
}

func NewTCPChecker(timeout time.Duration) *TCPChecker {
	return &TCPChecker{Timeout: timeout}
}

// ParseHostPort splits "host:port" on the first colon and validates the port.
func ParseHostPort(target string) (host string, port int, err error) {
	host, rawPort, ok := strings.Cut(strings.TrimSpace(target), ":")
	if !ok {
		return "", 0, fmt.Errorf("invalid tcp target %q: missing port", target)
	}
	if host == "" {
		return "", 0, fmt.Errorf("invalid tcp target %q: missing host", target)
	}
	port, err = strconv.Atoi(rawPort)
	if err != nil || port < 1 || port > 65535 {
		return "", 0, fmt.Errorf("invalid tcp target %q: port %q is not a number in 1-65535", target, rawPort)
	}
	return host, port, nil
}

func (t *TCPChecker) Check(ctx context.Context, target string) CheckResult {
	host, port, err := ParseHostPort(target)
	if err != nil {
		return CheckResult{Success: false, Message: err.Error()}
	}

	if t.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.Timeout)
		defer cancel()
	}

	start := time.Now()
	conn, err := t.dialer.DialContext(ctx, "tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	latency := time.Since(start).Seconds() * 1000
	if err != nil {
		return CheckResult{Success: false, Message: "connect failed: " + err.Error(), LatencyMS: latency}
	}
	_ = conn.Close()
	return CheckResult{Success: true, Message: "connected", LatencyMS: latency}
}
