package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/akyairhashvil/tdelta/internal/config"
	"github.com/akyairhashvil/tdelta/internal/countdown"
	"github.com/akyairhashvil/tdelta/internal/models"
	"github.com/akyairhashvil/tdelta/internal/tui"
	"github.com/akyairhashvil/tdelta/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type options struct {
	target     string
	targetSet  bool
	theme      string
	configPath string
	plain      bool
	once       bool
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:          config.AppName,
		Short:        "Count down to a date and time",
		Version:      tui.VersionLabel(),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.targetSet = cmd.Flags().Changed("target")
			return run(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	cmd.Flags().StringVarP(&opts.target, "target", "t", "", "Target date and time (YYYY-MM-DDTHH:MM, default tomorrow 09:00)")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "Theme: "+strings.Join(tui.ThemeNames(), ", "))
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Settings file (default $XDG_CONFIG_HOME/tdelta/config.yaml)")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Print one line per second instead of the interactive view")
	cmd.Flags().BoolVar(&opts.once, "once", false, "Print the remaining time once and exit")
	return cmd
}

func run(ctx context.Context, out io.Writer, opts options) error {
	path := opts.configPath
	if path == "" {
		path = filepath.Join(util.ConfigDir(config.AppName), config.SettingsFileName)
	}
	settings, err := config.LoadSettings(path)
	if err != nil {
		return err
	}
	theme := settings.Theme
	if opts.theme != "" {
		theme = opts.theme
	}
	if !tui.HasTheme(theme) {
		return fmt.Errorf("unknown theme %q (available: %s)", theme, strings.Join(tui.ThemeNames(), ", "))
	}

	clock := countdown.RealClock{}
	target := opts.target
	if !opts.targetSet {
		target = countdown.DefaultTarget(clock.Now())
	}

	if opts.once || opts.plain || !term.IsTerminal(int(os.Stdout.Fd())) {
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runPlain(ctx, out, clock, target, opts.once, config.TickInterval)
	}
	return runTUI(target, theme, settings.AltScreen)
}

// runPlain prints the current state, then one line per tick until the
// countdown finishes or ctx is done. once prints a single line.
func runPlain(ctx context.Context, out io.Writer, clock countdown.Clock, target string, once bool, interval time.Duration) error {
	first := countdown.Evaluate(target, clock.Now())
	fmt.Fprintln(out, tui.FormatSnapshotLine(first))
	if first.Err != nil {
		return first.Err
	}
	if once || first.Mode != models.ModeCounting {
		return nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	updates := make(chan countdown.Snapshot)
	driver := countdown.NewDriver(target, func(s countdown.Snapshot) {
		select {
		case updates <- s:
		case <-runCtx.Done():
		}
	}, countdown.WithClock(clock), countdown.WithInterval(interval))
	driver.Start(runCtx)
	defer driver.Stop()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return nil
		case s := <-updates:
			fmt.Fprintln(out, tui.FormatSnapshotLine(s))
			if s.Mode != models.ModeCounting {
				return nil
			}
		}
	}
}

func runTUI(target, theme string, altScreen bool) error {
	if value := strings.TrimSpace(os.Getenv(config.DebugEnvVar)); value != "" {
		path, err := debugLogPath(value)
		if err != nil {
			return err
		}
		f, err := tea.LogToFile(path, config.AppName)
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	model := tui.NewMainModel(tui.WithTarget(target), tui.WithTheme(theme), tui.WithVersion(tui.VersionLabel()))
	var programOpts []tea.ProgramOption
	if altScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, programOpts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// debugLogPath maps the debug variable to a log file. "1" and "true" select
// the default file under the state dir, creating the dir; anything else is a path.
func debugLogPath(value string) (string, error) {
	if value != "1" && value != "true" {
		return value, nil
	}
	path := filepath.Join(util.StateDir(config.AppName), config.DebugLogFileName)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create debug log dir: %w", err)
	}
	return path, nil
}
