package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hamed0406/uptimeping/internal/config"
	"github.com/hamed0406/uptimeping/internal/heartbeat"
	"github.com/hamed0406/uptimeping/internal/logging"
	"github.com/hamed0406/uptimeping/internal/notify"
	"github.com/hamed0406/uptimeping/internal/probe"
	"github.com/hamed0406/uptimeping/internal/runner"
)

// exitError carries a process exit code without being reported as a crash.
type exitError struct{ code int }

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

type flags struct {
	targetsFile string
	logDir      string
	concurrency int
}

// app is built once per invocation, before any subcommand runs.
type app struct {
	cfg    config.Config
	logger *zap.Logger
	sink   *notify.Sink
	out    io.Writer
}

func (a *app) runner() *runner.Runner {
	reg := probe.NewRegistry(probe.Timeouts{
		HTTP:    a.cfg.HTTPTimeout,
		TCP:     a.cfg.TCPTimeout,
		Command: a.cfg.CommandTimeout,
	})
	prober := probe.NewProber(a.logger, reg, a.sink)
	hb := heartbeat.NewPinger(a.logger, a.cfg.HeartbeatURL, a.cfg.HeartbeatTimeout)
	return runner.NewRunner(a.logger, prober, hb, a.cfg.MaxConcurrentChecks)
}

func newSink(logger *zap.Logger, cfg config.Config) *notify.Sink {
	return notify.FromChannels(logger,
		notify.NewTelegram(cfg.TelegramAPI, cfg.BotToken, cfg.ChatID),
		notify.NewSlack(cfg.SlackWebhook),
	)
}

func newRootCmd(a *app) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:           "uptimeping",
		Short:         "Check HTTP, command and TCP dependencies once and report the result",
		Long:          "uptimeping probes every configured dependency, alerts on each failure and pings a heartbeat URL when all of them are healthy.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" {
				return nil
			}
			cfg, err := config.Load(f.targetsFile)
			a.cfg = cfg
			if f.logDir != "" {
				a.cfg.LogDir = f.logDir
			}
			if f.concurrency > 0 {
				a.cfg.MaxConcurrentChecks = f.concurrency
			}

			logger, lerr := logging.NewLogger(a.cfg.LogDir, a.cfg.LogLevel)
			if lerr != nil {
				return fmt.Errorf("logger: %w", lerr)
			}
			a.logger = logger
			a.sink = newSink(logger, a.cfg)
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnce(cmd.Context(), a)
		},
	}

	cmd.PersistentFlags().StringVar(&f.targetsFile, "targets-file", "", "YAML file with additional targets (overrides TARGETS_FILE)")
	cmd.PersistentFlags().StringVar(&f.logDir, "log-dir", "", "Directory for rotating JSON logs (overrides LOG_DIR)")
	cmd.PersistentFlags().IntVarP(&f.concurrency, "concurrency", "c", 0, "Probes to run at once (overrides MAX_CONCURRENT_CHECKS)")

	cmd.AddCommand(
		newRunCmd(a),
		newTargetsCmd(a),
		newPreflightCmd(a),
		newServeCmd(a),
	)
	return cmd
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	return execute(context.Background(), os.Args[1:], os.Stdout)
}

func execute(ctx context.Context, args []string, out io.Writer) (code int) {
	a := &app{out: out}
	defer func() {
		if r := recover(); r != nil {
			code = critical(ctx, a, fmt.Errorf("panic: %v", r))
		}
		if a.logger != nil {
			_ = a.logger.Sync()
		}
	}()

	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(out)
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return critical(ctx, a, err)
}

// critical reports an error that escaped the run itself through the alert
// channel and turns it into a failing exit code.
func critical(ctx context.Context, a *app, err error) int {
	if a.logger == nil {
		a.logger = zap.NewNop()
	}
	if a.sink == nil {
		a.sink = newSink(a.logger, config.FromEnv())
	}
	msg := fmt.Sprintf("Script encountered a critical error: %v", err)
	a.logger.Error("critical_error", zap.Error(err))
	fmt.Fprintln(os.Stderr, msg)
	a.sink.Notify(ctx, msg)
	return 1
}
