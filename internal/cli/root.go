package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thruflo/turing/internal/config"
	"github.com/thruflo/turing/internal/logging"
	"github.com/thruflo/turing/internal/render"
)

// Version is set at build time via ldflags.
var Version = "dev"

// options holds the persistent flags and the settings resolved from them
// before any subcommand runs.
type options struct {
	configPath string
	logLevel   string
	color      string

	cfg    *config.Config
	log    *logging.Logger
	styler render.Styler
}

// NewRootCmd builds the turing command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "turing",
		Short: "Drive an unbounded Turing-machine tape from the command line",
		Long: `Turing builds tapes from strings, moves their head, scans them and runs
algorithms written purely against the tape, such as a duplicate-symbol check.

Defaults are read from .turing/config.yaml in the current directory, or from
the file named by --config.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}
	cmd.SetVersionTemplate("turing version {{.Version}}\n")

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to a config file (default .turing/config.yaml)")
	flags.StringVar(&opts.logLevel, "log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	flags.StringVar(&opts.color, "color", config.DefaultColor, "colour output: auto, always, never")

	cmd.AddCommand(
		newShowCmd(opts),
		newScanCmd(opts),
		newNoDupesCmd(opts),
	)
	return cmd
}

// load reads the config file and applies flag overrides on top of it.
func (o *options) load(cmd *cobra.Command) error {
	var (
		cfg *config.Config
		err error
	)
	path := o.configPath
	if path != "" {
		cfg, err = config.LoadFile(path, true)
	} else {
		cwd, wdErr := os.Getwd()
		if wdErr != nil {
			return fmt.Errorf("failed to get current directory: %w", wdErr)
		}
		path = config.Path(cwd)
		cfg, err = config.LoadConfig(cwd)
	}
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if cmd.Flags().Changed("color") {
		cfg.Display.Color = o.color
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	o.log = logging.New(cmd.ErrOrStderr()).With("cmd", cmd.Name())
	o.log.SetLevel(level)
	o.cfg = cfg
	o.styler = render.Styler{Color: render.ColorEnabled(cfg.Display.Color, cmd.OutOrStdout())}

	o.log.Debug("config loaded", "path", path, "color", o.styler.Color)
	return nil
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
