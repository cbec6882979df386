package main

import (
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/term3d/internal/config"
	"github.com/Faultbox/term3d/internal/logger"
)

// app carries state shared by the subcommands after the root pre-run.
type app struct {
	flags   *config.Flags
	noColor bool

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "term3d",
		Short: "Procedural meshes rendered as terminal wireframes",
		Long: `term3d builds cubes, planes, spheres and cylinders with full tangent
frames, places them in a scene described by a YAML or TOML file and draws
the result as a wireframe in the terminal.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			logger.Sync()
		},
	}

	a.flags = config.RegisterFlags(root.PersistentFlags())
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(
		newInfoCmd(a),
		newSceneCmd(a),
		newViewCmd(a),
		newConfigCmd(a),
	)
	return root
}

// setup loads the config and initializes logging. Commands that draw to
// the terminal only log to a file.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.flags)
	if err != nil {
		return err
	}
	a.cfg = cfg

	opts := logger.Options{Level: cfg.Logging.Level}
	if cfg.Logging.LogFile != "" {
		opts.File = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	if cmd.Annotations[annotationFullscreen] == "" {
		opts.Console = cmd.ErrOrStderr()
	}
	if err := logger.InitWithOptions(opts); err != nil {
		return err
	}
	a.log = logger.Log

	a.log.Debug("config loaded",
		zap.String("path", config.ResolvePath(a.flags)),
		zap.Int("objects", len(cfg.Scene.Objects)),
	)
	return nil
}

func (a *app) report(cmd *cobra.Command) *report {
	var opts []termenv.OutputOption
	if a.noColor {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return newReport(cmd.OutOrStdout(), opts...)
}

// annotationFullscreen marks commands that own the terminal.
const annotationFullscreen = "fullscreen"
