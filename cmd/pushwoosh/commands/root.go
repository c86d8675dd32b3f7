package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/i9si-sistemas/pushwoosh"
	"github.com/i9si-sistemas/pushwoosh/internal/config"
)

var (
	cfgPath  string
	envFiles []string
	debug    bool

	client *pushwoosh.Client
	logger = zap.NewNop()
)

// Execute runs the CLI. Errors, including flag and argument errors, are
// logged once through the zap logger and returned for the exit code.
func Execute() error {
	root := &cobra.Command{
		Use:           "pushwoosh",
		Short:         "Send push notifications and manage devices through Pushwoosh",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotEnv(envFiles...); err != nil {
				return err
			}
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if debug || cfg.Log.Debug {
				if logger, err = newLogger(true); err != nil {
					return err
				}
			}
			client = pushwoosh.New(nil, cfg.Credentials(), pushwoosh.WithBaseURL(cfg.Pushwoosh.BaseURL))
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "comma-separated YAML config files")
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, ".env files to load before reading PUSHWOOSH_* variables")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "development logging")

	root.AddCommand(pushCmd(), registerCmd(), unregisterCmd())

	if l, err := newLogger(false); err == nil {
		logger = l
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := root.ExecuteContext(ctx)
	if err != nil {
		logError(err)
	}
	return err
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// logError logs err with the fields of the pushwoosh error kind it wraps.
func logError(err error) {
	var (
		serviceErr   *pushwoosh.ServiceError
		parseErr     *pushwoosh.ParseError
		transportErr *pushwoosh.TransportError
	)
	switch {
	case errors.As(err, &serviceErr):
		logger.Error("request rejected",
			zap.Int("status_code", serviceErr.Code),
			zap.String("status_message", serviceErr.Message))
	case errors.As(err, &parseErr):
		logger.Error("malformed response",
			zap.ByteString("body", parseErr.Body),
			zap.Error(parseErr.Err))
	case errors.As(err, &transportErr):
		logger.Error("request failed",
			zap.String("url", transportErr.URL),
			zap.Error(transportErr.Err))
	default:
		logger.Error("command failed", zap.Error(err))
	}
}

// report logs a successful operation and prints the raw response object, if
// any, to stdout. Errors are passed through for Execute to log.
func report(cmd *cobra.Command, op string, res pushwoosh.Result, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	logger.Info(op+" ok",
		zap.Int("status_code", res.StatusCode),
		zap.String("status_message", res.StatusMessage))
	if len(res.Response) > 0 && strings.TrimSpace(string(res.Response)) != "null" {
		fmt.Fprintln(cmd.OutOrStdout(), string(res.Response))
	}
	return nil
}
