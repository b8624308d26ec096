package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/term"

	"github.com/andyrewlee/amterm/internal/config"
	"github.com/andyrewlee/amterm/internal/logging"
	"github.com/andyrewlee/amterm/internal/session"
	"github.com/andyrewlee/amterm/internal/ui"
)

// Version info set by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// initialCols and initialRows size the session until the first
// WindowSizeMsg arrives.
const (
	initialCols = 80
	initialRows = 24
)

func main() {
	var shellFlag string
	for _, arg := range os.Args[1:] {
		switch {
		case arg == "--version" || arg == "-v":
			fmt.Printf("amterm %s (commit: %s, built: %s)\n", version, commit, date)
			os.Exit(0)
		case arg == "--help" || arg == "-h":
			usage()
			os.Exit(0)
		case strings.HasPrefix(arg, "--shell="):
			shellFlag = strings.TrimPrefix(arg, "--shell=")
		default:
			fmt.Fprintf(os.Stderr, "amterm: unknown argument %q\n", arg)
			usage()
			os.Exit(2)
		}
	}

	if !term.IsTerminal(os.Stdin.Fd()) || !term.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "amterm: stdin and stdout must be a terminal")
		os.Exit(1)
	}

	cfgPath, err := config.DefaultPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "amterm: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "amterm: %v\n", err)
		os.Exit(1)
	}
	if shellFlag != "" {
		cfg.Shell = shellFlag
	}

	if logDir, err := config.LogDir(); err == nil {
		if err := logging.Initialize(logDir, logging.ParseLevel(cfg.LogLevel)); err != nil {
			fmt.Fprintf(os.Stderr, "amterm: logging disabled: %v\n", err)
		}
	}
	logging.Info("amterm %s starting", version)

	sess, err := session.New(initialCols, initialRows, session.Config{
		Shell:         cfg.Shell,
		MaxScrollback: cfg.MaxScrollback,
	})
	if err != nil {
		logging.Error("failed to start session: %v", err)
		fmt.Fprintf(os.Stderr, "amterm: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(ui.New(sess, cfg))

	// Live-reload the config file while the program runs
	stopWatch, err := config.Watch(cfgPath, func(c config.Config) {
		p.Send(ui.ConfigReloadedMsg{Config: c})
	})
	if err != nil {
		logging.Warn("config watching disabled: %v", err)
	} else {
		defer stopWatch()
	}

	_, runErr := p.Run()
	sess.Close()
	if runErr != nil {
		logging.Error("program exited with error: %v", runErr)
		fmt.Fprintf(os.Stderr, "amterm: %v\n", runErr)
		os.Exit(1)
	}
	logging.Info("amterm shutdown complete")
}

func usage() {
	name := filepath.Base(os.Args[0])
	fmt.Printf(`%s - a terminal emulator

Usage:
  %s [--shell=/path/to/shell]

Flags:
  --shell=PATH   run PATH instead of $SHELL
  -v, --version  print version
  -h, --help     this help
`, name, name)
}
