package probe

import "context"

// CheckResult is the unified result of a single check.
//
// Fields:
//   - Message: human-readable cause, e.g. "status: 500" or the captured command output.
//   - StatusCode: HTTP status code when available; 0 for transport, command and TCP checks.
type CheckResult struct {
	Success    bool
	LatencyMS  float64
	Message    string
	StatusCode int
}

// Checker performs a single check against one endpoint. Implementations
// report every failure through CheckResult and never panic.
type Checker interface {
	Check(ctx context.Context, target string) CheckResult
}

// CheckerFunc adapts a plain function to Checker.
type CheckerFunc func(ctx context.Context, target string) CheckResult

func (f CheckerFunc) Check(ctx context.Context, target string) CheckResult { return f(ctx, target) }
