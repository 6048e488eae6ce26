package probe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/hamed0406/uptimeping/internal/domain"
)

type recordAlerts struct{ msgs []string }

func (r *recordAlerts) Notify(_ context.Context, message string) { r.msgs = append(r.msgs, message) }

func fixed(out CheckResult) Checker {
	return CheckerFunc(func(context.Context, string) CheckResult { return out })
}

func TestProber_HealthyIssuesNoAlert(t *testing.T) {
	alerts := &recordAlerts{}
	p := NewProber(nil, Registry{domain.KindHTTP: fixed(CheckResult{Success: true, StatusCode: 200, Message: "status: 200"})}, alerts)

	res := p.Probe(context.Background(), domain.Target{Name: "Api", Kind: domain.KindHTTP, Endpoint: "http://x"})
	require.True(t, res.Healthy)
	require.Equal(t, 200, res.StatusCode)
	require.False(t, res.CheckedAt.IsZero())
	require.Empty(t, alerts.msgs)
}

func TestProber_FailureAlertsOnceWithDetail(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	alerts := &recordAlerts{}
	p := NewProber(zap.New(core), Registry{domain.KindHTTP: fixed(CheckResult{Success: false, StatusCode: 500, Message: "status: 500"})}, alerts)

	res := p.Probe(context.Background(), domain.Target{Name: "Api", Kind: domain.KindHTTP, Endpoint: "http://x"})
	require.False(t, res.Healthy)
	require.Equal(t, []string{"Alert: Api is DOWN. status: 500"}, alerts.msgs)
	require.Equal(t, 1, logs.FilterMessage("probe_failed").Len())
}

func TestProber_PassesEndpointToChecker(t *testing.T) {
	var got string
	reg := Registry{domain.KindCommand: CheckerFunc(func(_ context.Context, target string) CheckResult {
		got = target
		return CheckResult{Success: true}
	})}
	NewProber(nil, reg, nil).Probe(context.Background(), domain.Target{Name: "Validator", Kind: domain.KindCommand, Endpoint: "curl -sI http://v"})
	require.Equal(t, "curl -sI http://v", got)
}

func TestProber_PanicBecomesFailedResult(t *testing.T) {
	alerts := &recordAlerts{}
	reg := Registry{domain.KindTCP: CheckerFunc(func(context.Context, string) CheckResult { panic("bad dialer") })}

	res := NewProber(nil, reg, alerts).Probe(context.Background(), domain.Target{Name: "Peer", Kind: domain.KindTCP, Endpoint: "h:1"})
	require.False(t, res.Healthy)
	require.Contains(t, res.Detail, "bad dialer")
	require.Len(t, alerts.msgs, 1)
}

func TestProber_UnregisteredKind(t *testing.T) {
	alerts := &recordAlerts{}
	res := NewProber(nil, Registry{}, alerts).Probe(context.Background(), domain.Target{Name: "Peer", Kind: domain.KindTCP, Endpoint: "h:1"})
	require.False(t, res.Healthy)
	require.Contains(t, res.Detail, "no checker registered")
	require.Len(t, alerts.msgs, 1)
}

func TestNewRegistry_CoversEveryKind(t *testing.T) {
	reg := NewRegistry(Timeouts{})
	for _, k := range []domain.Kind{domain.KindHTTP, domain.KindCommand, domain.KindTCP} {
		_, err := reg.For(k)
		require.NoError(t, err, k.String())
	}
}

func TestAlertMessage(t *testing.T) {
	require.Equal(t, "Alert: Node is DOWN", AlertMessage(domain.Result{Target: domain.Target{Name: "Node"}}))
}
