package heartbeat

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestPinger_OK(t *testing.T) {
	var hits atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			hits.Add(1)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	core, logs := observer.New(zapcore.InfoLevel)
	NewPinger(zap.New(core), ts.URL, time.Second).Ping(context.Background())

	require.Equal(t, int32(1), hits.Load())
	require.Equal(t, 1, logs.FilterMessage("heartbeat_ok").Len())
}

func TestPinger_Non2xxIsLogged(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	core, logs := observer.New(zapcore.InfoLevel)
	NewPinger(zap.New(core), ts.URL, time.Second).Ping(context.Background())

	failed := logs.FilterMessage("heartbeat_failed").All()
	require.Len(t, failed, 1)
	require.EqualValues(t, http.StatusBadGateway, failed[0].ContextMap()["status"])
}

func TestPinger_TransportErrorIsLogged(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	core, logs := observer.New(zapcore.InfoLevel)
	NewPinger(zap.New(core), url, time.Second).Ping(context.Background())
	require.Equal(t, 1, logs.FilterMessage("heartbeat_failed").Len())
}

func TestPinger_EmptyURLSkips(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	NewPinger(zap.New(core), "", 0).Ping(context.Background())
	require.Equal(t, 1, logs.FilterMessage("heartbeat_skipped").Len())

	var p *Pinger
	p.Ping(context.Background())
}

func TestNewPinger_DefaultTimeout(t *testing.T) {
	require.Equal(t, DefaultTimeout, NewPinger(nil, "http://x", 0).Client.Timeout)
}
