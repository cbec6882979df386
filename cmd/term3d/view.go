package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/term3d/internal/config"
	"github.com/Faultbox/term3d/internal/engine/scene"
	"github.com/Faultbox/term3d/internal/engine/viewer"
)

func newViewCmd(a *app) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Show the scene as an interactive terminal wireframe",
		Long: `Open the configured scene full screen. Arrow keys orbit, +/- and the mouse
wheel zoom, a click selects the object under the cursor. b toggles bounds,
c back-face culling, f refits the camera, h the status line, q quits.
Logs go to --log-file only.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationFullscreen: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runView(a, cmd, watch)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Reload the scene when the config file changes")
	return cmd
}

func runView(a *app, cmd *cobra.Command, watch bool) error {
	s, err := scene.Build(a.cfg, a.log)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer screen.Fini()

	v, err := viewer.New(screen, s, a.log)
	if err != nil {
		return err
	}
	defer v.Renderer().Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
	defer stop()

	if watch {
		path := config.ResolvePath(a.flags)
		if path == "" {
			return errNoConfigFile
		}
		go func() {
			err := config.Watch(ctx, path, config.DefaultDebounce, func() {
				cfg, err := config.Load(a.flags)
				if err != nil {
					a.log.Error("reload failed", zap.Error(err))
					return
				}
				next, err := scene.Build(cfg, a.log)
				if err != nil {
					a.log.Error("rebuild failed", zap.Error(err))
					return
				}
				v.Replace(next)
			})
			if err != nil {
				a.log.Error("config watch stopped", zap.Error(err))
			}
		}()
	}

	return v.Run(ctx)
}
