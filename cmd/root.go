package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ftahirops/logradar/collector"
	"github.com/ftahirops/logradar/config"
	"github.com/ftahirops/logradar/engine"
	"github.com/ftahirops/logradar/model"
	"github.com/ftahirops/logradar/ui"
)

// Version is set at build time via ldflags.
var Version = "0.1.0"

// repeatedFlag collects every occurrence of a flag passed more than once,
// e.g. `--docker web --docker worker`.
type repeatedFlag []string

func (r *repeatedFlag) String() string     { return strings.Join(*r, ",") }
func (r *repeatedFlag) Set(v string) error { *r = append(*r, v); return nil }

func printUsage() {
	fmt.Fprintf(os.Stderr, `logradar v%s — interactive log pattern dashboard

Usage:
  logradar [OPTIONS]

Options:
  --profile NAME    Active profile (default, ops, network, or one defined in the config file)
  --docker NAME     Attach a docker container's logs (repeatable)
  --cmd SHELL       Attach an arbitrary shell command's stdout (repeatable)
  --file PATH       Attach a local file, followed like tail -f (repeatable)
  --config PATH     Config file path (default: ./logradar.toml, then $XDG_CONFIG_HOME/logradar/config.toml)
  --theme NAME      Color theme: matrix (default), mono
  --no-banner       Suppress the startup banner
  --record PATH     Record raw source events to PATH for later --replay
  --replay PATH     Replay a recorded session instead of attaching live sources
  --version         Print version and exit

With no --docker/--cmd/--file and no --replay, logradar opens the add-source
menu on startup instead of an empty dashboard.

Examples:
  logradar --docker web --docker worker
  logradar --profile ops --file /var/log/app.log
  logradar --cmd "kubectl logs -f deploy/api" --theme mono
  logradar --replay session.jsonl
`, Version)
}

// Run parses flags, resolves config and theme, wires the source supervisor,
// and runs the TUI. Exactly one of --replay or live --docker/--cmd/--file
// attachment (or the add-source menu) feeds the pattern store.
func Run() error {
	var dockerNames, cmdShells, filePaths repeatedFlag
	var profileName, configPath, themeName, recordPath, replayPath string
	var noBanner, showVersion bool

	flag.Var(&dockerNames, "docker", "attach a docker container's logs (repeatable)")
	flag.Var(&cmdShells, "cmd", "attach a shell command's stdout (repeatable)")
	flag.Var(&filePaths, "file", "attach a local file (repeatable)")
	flag.StringVar(&profileName, "profile", "", "active profile name")
	flag.StringVar(&configPath, "config", "", "config file path")
	flag.StringVar(&themeName, "theme", "", "color theme")
	flag.BoolVar(&noBanner, "no-banner", false, "suppress the startup banner")
	flag.StringVar(&recordPath, "record", "", "record raw source events to PATH")
	flag.StringVar(&replayPath, "replay", "", "replay a recorded session instead of live sources")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Usage = printUsage
	flag.Parse()

	if showVersion {
		fmt.Printf("logradar v%s\n", Version)
		return nil
	}

	cfgFile := config.Load(config.Path(configPath))
	profile, err := cfgFile.Resolve(profileName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logradar: %v\n", err)
		return ExitCodeError{Code: 1}
	}

	// A config-sourced theme name falls back to matrix silently on an
	// unrecognized value (matching the config loader's own "a bad file is
	// never fatal" policy); only an explicit --theme flag is fatal.
	theme, ok := ui.LookupTheme(profile.Theme)
	if !ok {
		theme, _ = ui.LookupTheme("")
	}
	if themeName != "" {
		explicit, ok := ui.LookupTheme(themeName)
		if !ok {
			fmt.Fprintf(os.Stderr, "logradar: unknown theme %q\n", themeName)
			return ExitCodeError{Code: 1}
		}
		theme = explicit
	}

	var recorder *engine.Recorder
	if recordPath != "" {
		f, err := os.OpenFile(recordPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("cannot create record file: %w", err)
		}
		defer f.Close()
		recorder = engine.NewRecorder(f)
	}

	sup := collector.NewSupervisor()
	var ticker engine.Ticker
	if replayPath != "" {
		f, err := os.Open(replayPath)
		if err != nil {
			return fmt.Errorf("cannot open replay file: %w", err)
		}
		defer f.Close()
		ticker = engine.NewPlayer(f)
	} else {
		ticker = engine.ChanTicker{Events: sup.Events()}
	}

	m := ui.NewModel(sup, ticker, cfgFile.Profiles(), profile.Name, theme, !noBanner, recorder)

	for _, name := range dockerNames {
		m.AttachSource(name, model.SourceDocker, name, collector.DockerProducer{Container: name})
	}
	for _, shell := range cmdShells {
		m.AttachSource(shell, model.SourceCommand, shell, collector.CommandProducer{Shell: shell})
	}
	for _, path := range filePaths {
		m.AttachSource(path, model.SourceFile, path, collector.FileProducer{Path: path})
	}
	if len(dockerNames) == 0 && len(cmdShells) == 0 && len(filePaths) == 0 && replayPath == "" {
		m.OpenSourceMenuOnStart()
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, runErr := p.Run()
	sup.StopAll()
	return runErr
}
