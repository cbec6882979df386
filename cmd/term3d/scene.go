package main

import (
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/term3d/internal/config"
	"github.com/Faultbox/term3d/internal/engine/renderer"
	"github.com/Faultbox/term3d/internal/engine/scene"
)

var errNoConfigFile = errors.New("no config file to watch; pass --config or create " + config.FileName)

func newSceneCmd(a *app) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "scene",
		Short: "Build the configured scene and report on it",
		Long: `Build every object of the configured scene, render one frame without
output and print per-object statistics, the camera and the frame counters.
With --watch the report is printed again whenever the config file changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := runScene(a, cmd, a.cfg); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			return watchScene(a, cmd)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Rebuild when the config file changes")
	return cmd
}

func runScene(a *app, cmd *cobra.Command, cfg *config.Config) error {
	s, err := scene.Build(cfg, a.log)
	if err != nil {
		return err
	}

	r := renderer.NewNull(a.log)
	if err := r.Init(renderer.Config{Width: 1920, Height: 1080, Title: "term3d"}); err != nil {
		return err
	}
	defer r.Close()
	s.Render(r)

	rep := a.report(cmd)
	vertices, triangles := s.Counts()
	rep.title("Scene")
	rep.field("Objects", "%d", len(s.Objects))
	rep.field("Vertices", "%d", vertices)
	rep.field("Triangles", "%d", triangles)

	rep.section("Bounds")
	rep.bounds(s.Bounds)

	rep.section("Objects")
	for _, obj := range s.Objects {
		status := "ok"
		if err := obj.Mesh.Validate(); err != nil {
			status = err.Error()
		}
		rep.line("%-10s %-9s %6d verts %6d tris  center %s  %s",
			obj.Name, obj.Primitive, obj.Mesh.VertexCount(), obj.Mesh.TriangleCount(),
			vec(obj.Mesh.Bounds.Center()), status)
	}

	cam := s.Camera
	rep.section("Camera")
	rep.field("Position", "%s", vec(cam.Position()))
	rep.field("Target", "%s", vec(cam.Center))
	rep.field("Distance", "%.4g", cam.Distance)
	rep.field("Clip", "%.4g .. %.4g", cam.Near, cam.Far)

	rep.section("Lighting")
	if s.Lit {
		rep.field("Sun", "%s", vec(s.Light.Sun.Direction))
		rep.field("Ambient", "%.3g", s.Light.Ambient)
		rep.field("Points", "%d", len(s.Light.Points))
	} else {
		rep.line("off")
	}

	stats := r.Stats()
	rep.section("Frame")
	rep.field("Draw calls", "%d", stats.DrawCalls)
	rep.field("Triangles", "%d", stats.Triangles)
	rep.field("Lines", "%d", stats.Lines)
	return nil
}

// watchScene reprints the report on every config change until
// interrupted. Reload errors are logged and the previous report stands.
func watchScene(a *app, cmd *cobra.Command) error {
	path := config.ResolvePath(a.flags)
	if path == "" {
		return errNoConfigFile
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.log.Info("watching config", zap.String("path", path))
	return config.Watch(ctx, path, config.DefaultDebounce, func() {
		cfg, err := config.Load(a.flags)
		if err != nil {
			a.log.Error("reload failed", zap.Error(err))
			return
		}
		if err := runScene(a, cmd, cfg); err != nil {
			a.log.Error("rebuild failed", zap.Error(err))
		}
	})
}
