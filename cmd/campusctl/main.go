package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"campus-events/config"
	"campus-events/internal/client"
	"campus-events/internal/client/api"
	"campus-events/internal/client/localstore"
	"campus-events/internal/model"
	"campus-events/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app 一次指令執行期間共用的元件
type app struct {
	cfg      config.ClientConfig
	out      io.Writer
	output   string
	store    *localstore.BadgerStore
	state    *client.State
	api      *api.Client
	notifier client.Notifier
	session  *client.SessionStore
	geo      client.Geolocation
}

func (a *app) open() error {
	cfg, err := config.LoadClientConfig()
	if err != nil {
		return err
	}
	a.cfg = cfg
	setupLogger(cfg.LogLevel)

	if err := os.MkdirAll(cfg.StateDir, 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	store, err := localstore.Open(cfg.StateDir)
	if err != nil {
		return err
	}
	state, err := client.LoadState(store)
	if err != nil {
		_ = store.Close()
		return err
	}

	a.store = store
	a.state = state
	a.notifier = client.NewConsoleNotifier(a.out)

	var sessions *client.SessionStore
	a.api = api.NewClient(cfg.APIURL, cfg.Timeout, func() string {
		if sessions == nil {
			return ""
		}
		return sessions.Token()
	})
	sessions = client.NewSessionStore(state, a.api, a.notifier)
	a.session = sessions

	var coord *model.Coordinate
	if cfg.HasDevicePosition() {
		coord = &model.Coordinate{Lat: *cfg.DeviceLat, Lng: *cfg.DeviceLng}
	}
	a.geo = client.NewFixedGeolocation(coord)
	return nil
}

func (a *app) close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}

func setupLogger(level string) {
	zcfg := zap.NewDevelopmentConfig()
	lvl := zapcore.WarnLevel
	_ = lvl.UnmarshalText([]byte(level))
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{"stderr"}
	l, err := zcfg.Build()
	if err != nil {
		return
	}
	logger.Replace(l)
}

func newRootCmd(a *app) *cobra.Command {

	root := &cobra.Command{
		Use:           "campusctl",
		Short:         "Browse, submit and review campus events",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch a.output {
			case "text", "json", "yaml":
			default:
				return fmt.Errorf("unsupported output format %q", a.output)
			}
			return a.open()
		},
	}
	root.SetOut(a.out)
	root.PersistentFlags().StringVarP(&a.output, "output", "o", "text", "output format: text|json|yaml")

	root.AddCommand(
		newSignUpCmd(a),
		newSignInCmd(a),
		newAdminLoginCmd(a),
		newSignOutCmd(a),
		newWhoAmICmd(a),
		newEventsCmd(a),
		newMapCmd(a),
		newSaveCmd(a),
		newRegisterCmd(a),
		newRegistrationsCmd(a),
		newDirectionsCmd(a),
		newSubmitCmd(a),
		newAdminCmd(a),
	)
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	a := &app{out: os.Stdout}
	err := newRootCmd(a).ExecuteContext(ctx)
	if closeErr := a.close(); closeErr != nil && err == nil {
		err = closeErr
	}
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
