package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/testkit/internal/config"
	"github.com/vango-dev/testkit/internal/logging"
	"github.com/vango-dev/testkit/internal/report"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	color      string
	logLevel   string

	cfg        *config.Config
	log        *slog.Logger
	printer    *report.Printer
	errPrinter *report.Printer
}

func main() {
	a := &app{stdout: os.Stdout, stderr: os.Stderr}
	os.Exit(a.run(os.Args[1:]))
}

// run executes the command line and returns the process exit code.
func (a *app) run(args []string) int {
	root := a.rootCmd()
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		p := a.errPrinter
		if p == nil {
			p = report.New(a.stderr, report.Options{})
		}
		fmt.Fprint(a.stderr, p.Error(err))
		return 1
	}
	return 0
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "vtestkit",
		Short: "Test hooks and prop contracts for Vango components",
		Long: `vtestkit checks rendered components from the command line.

  • locate   find nodes by their data-test attribute in rendered HTML
  • check    validate a props file against a prop contract
  • version  print build information

Configuration is read from vtestkit.yaml in the project root and may be
overridden with VTESTKIT_* environment variables.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return a.setup() },
	}

	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Path to vtestkit.yaml (default: nearest project root)")
	flags.StringVar(&a.color, "color", "", "Color output: auto, always or never")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn or error")

	root.AddCommand(
		a.locateCmd(),
		a.checkCmd(),
		versionCmd(),
	)
	return root
}

// setup loads configuration and builds the logger and printers.
func (a *app) setup() error {
	var (
		cfg *config.Config
		err error
	)
	if a.configPath != "" {
		cfg, err = config.LoadFile(a.configPath)
	} else {
		cfg, err = config.LoadFromWorkingDir()
	}
	if err != nil {
		return err
	}

	if a.color != "" {
		cfg.Output.Color = a.color
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logging.New(a.stderr, cfg.Log)
	a.printer = report.New(a.stdout, report.Options{
		Color:  cfg.ColorEnabled(asFile(a.stdout)),
		Pretty: cfg.Output.Pretty,
	})
	a.errPrinter = report.New(a.stderr, report.Options{Color: cfg.ColorEnabled(asFile(a.stderr))})

	a.log.Debug("config loaded", "path", cfg.Path(), "color", cfg.Output.Color, "fail_fast", cfg.Check.FailFast)
	return nil
}

func asFile(w io.Writer) *os.File {
	f, _ := w.(*os.File)
	return f
}

// openInput opens path for reading; "-" is stdin.
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}
