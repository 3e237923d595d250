// Package main is the entry point for the minvi editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/minvi/minvi/internal/config"
	"github.com/minvi/minvi/internal/editor"
	"github.com/minvi/minvi/internal/storage"
	"github.com/minvi/minvi/internal/term"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger, err := openLogger(cfg, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer logger.Close()

	terminal, err := term.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := terminal.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}
	// Restore the terminal on every exit path, including panics.
	defer terminal.Fini()

	// Release the terminal before dying on a signal so the shell is never
	// left in raw mode.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		terminal.Fini()
		os.Exit(1)
	}()

	ed := editor.New(terminal, storage.Disk{}, editor.Options{
		Filename: opts.filename,
		Config:   cfg,
		Logger:   logger,
	})

	if err := ed.Run(); err != nil {
		if errors.Is(err, editor.ErrQuit) {
			return 0
		}
		terminal.Fini()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// openLogger builds the file logger selected by config and flags, or a nil
// logger (which discards everything) when no log file is configured.
func openLogger(cfg config.Config, opts options) (*editor.Logger, error) {
	path := cfg.Log.File
	if opts.logFile != "" {
		path = opts.logFile
	}
	if path == "" {
		return nil, nil
	}

	level := cfg.Log.Level
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	return editor.OpenFileLogger(path, editor.ParseLogLevel(level))
}

type options struct {
	configPath string
	logFile    string
	logLevel   string
	filename   string
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", config.DefaultPath(), "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", config.DefaultPath(), "Path to configuration file (shorthand)")
	flag.StringVar(&opts.logFile, "log-file", "", "Write diagnostics to this file")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "minvi - a minimal modal terminal editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: minvi [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  minvi                 Open an unnamed scratch buffer\n")
		fmt.Fprintf(os.Stderr, "  minvi notes.txt       Open or create notes.txt\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("minvi %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	if opts.logLevel != "" {
		switch opts.logLevel {
		case "debug", "info", "warn", "error":
		default:
			fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.logLevel)
			os.Exit(1)
		}
	}

	// An optional single positional argument names the file to edit.
	opts.filename = flag.Arg(0)

	return opts
}
