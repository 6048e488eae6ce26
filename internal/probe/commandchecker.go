package probe

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"
)

// HealthyMarker is what a command has to print for its dependency to count
// as up. The exit code is ignored.
const HealthyMarker = "200 OK"

type CommandChecker struct {
	// Shell runs the endpoint as its -c argument.
	Shell string
	// Timeout bounds the command; zero means it may run forever.
	Timeout time.Duration
}

func NewCommandChecker(timeout time.Duration) *CommandChecker {
	return &CommandChecker{Shell: "sh", Timeout: timeout}
}

func (c *CommandChecker) Check(ctx context.Context, target string) CheckResult {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	start := time.Now()
	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, c.Shell, "-c", target)
	cmd.Stdout = &stdout
	// Children of the shell can keep stdout open after it is killed.
	cmd.WaitDelay = time.Second
	err := cmd.Run()
	latency := time.Since(start).Seconds() * 1000
	out := strings.TrimSpace(stdout.String())

	var exitErr *exec.ExitError
	switch {
	case ctx.Err() != nil:
		return CheckResult{Success: false, Message: "command timed out: " + ctx.Err().Error(), LatencyMS: latency}
	case err != nil && !errors.As(err, &exitErr):
		return CheckResult{Success: false, Message: "command execution failed: " + err.Error(), LatencyMS: latency}
	}

	if strings.Contains(out, HealthyMarker) {
		return CheckResult{Success: true, Message: out, LatencyMS: latency}
	}
	return CheckResult{Success: false, Message: "output: " + out, LatencyMS: latency}
}
