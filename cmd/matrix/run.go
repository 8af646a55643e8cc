package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yourusername/matrix/internal/config"
	"github.com/yourusername/matrix/internal/event"
	"github.com/yourusername/matrix/internal/logging"
	"github.com/yourusername/matrix/internal/reconcile"
	"github.com/yourusername/matrix/internal/state"
	"github.com/yourusername/matrix/internal/wm"
	"github.com/yourusername/matrix/internal/x11"
)

// eventBuffer bounds how far the X reader can run ahead of the loop
const eventBuffer = 256

// runCmd manages the display until exit
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Manage windows on the X display",
	Long: `Connects to the X server, tiles the windows that are already mapped and
then handles window, focus and key events until the exit command runs or the
process is interrupted. The config file is reloaded when it changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		conn, err := x11.Dial(displayName)
		if err != nil {
			return err
		}
		defer conn.Close()

		space, err := wm.New(conn, cfg.Settings)
		if err != nil {
			return err
		}
		if err := conn.Bind(cfg.Bindings); err != nil {
			logging.Warn().Err(err).Msg("some key bindings are unavailable")
		}

		windows, err := conn.Windows()
		if err != nil {
			logging.Warn().Err(err).Msg("could not list existing windows")
		} else if _, err := reconcile.Sync(windows, space); err != nil {
			logging.Warn().Err(err).Msg("existing windows not fully adopted")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		events := make(chan event.Event, eventBuffer)
		conn.Events(ctx, events)
		watchConfig(ctx, events)

		status := state.NewRecorder(state.GetStatePath())
		defer status.Clear()

		logging.Info().Str("session", logging.Session()).Msg("window manager running")
		return wm.Run(ctx, space, events, status.Record)
	},
}

// watchConfig posts a reload event whenever the config file changes. With
// no config file on disk there is nothing to watch.
func watchConfig(ctx context.Context, events chan<- event.Event) {
	path, err := config.ResolvePath(configPath)
	if errors.Is(err, config.ErrNotFound) {
		logging.Info().Msg("no config file, reload disabled")
		return
	}
	if err != nil {
		logging.Warn().Err(err).Msg("config reload disabled")
		return
	}

	go func() {
		err := config.Watch(ctx, path, config.DefaultDebounce, func(cfg *config.Config) {
			select {
			case events <- event.NewReload(cfg):
			case <-ctx.Done():
			}
		})
		if err != nil {
			logging.Warn().Err(err).Str("path", path).Msg("config watcher stopped")
		}
	}()
}
