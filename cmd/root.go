// Package cmd wires up the CLI flags and dispatches to the chat core.
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"p2pchat/config"
	"p2pchat/internal/core"
	chaterr "p2pchat/internal/errors"
	"p2pchat/internal/metrics"
	"p2pchat/util"
)

// version is overridable at link time:
//
//	go build -ldflags "-X p2pchat/cmd.version=2.0.0"
var version = "1.0.0" //nolint:gochecknoglobals

// flagValues holds what was typed on the command line.  Only flags the
// user actually set override the file and environment layers.
type flagValues struct {
	verbose    int
	quiet      bool
	framing    string
	maxMessage int
	buffer     int
	timeoutSec int
	noDNS      bool
	label      string
	configFile string
	stats      bool
}

// Execute parses args and runs the requested mode.
func Execute(ctx context.Context, args []string) error {
	var fv flagValues
	fs := newFlagSet(&fv)

	var showVersion, showHelp bool
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")

	fs.Usage = func() { printUsage(fs) }

	// ── parse ────────────────────────────────────────────────────
	if err := fs.Parse(args); err != nil {
		return err
	}

	if showHelp {
		printUsage(fs)
		return nil
	}
	if showVersion {
		fmt.Printf("p2pchat %s\n", version)
		return nil
	}

	cfg, err := buildConfig(fs, &fv)
	if err != nil {
		if chaterr.IsUsage(err) {
			printUsage(fs)
		}
		return err
	}

	// ── build components ─────────────────────────────────────────
	logger := util.NewLogger(cfg.Verbose)
	if cfg.ConfigFile != "" {
		logger.Verbose("loaded config from %s", cfg.ConfigFile)
	}

	mode, err := core.Build(cfg, core.Runtime{
		Logger:      logger,
		Metrics:     metrics.New(),
		Console:     util.NewConsole(os.Stdout, cfg.Quiet),
		Stdin:       os.Stdin,
		Interactive: util.IsInteractive(os.Stdin),
	})
	if err != nil {
		return err
	}
	return mode.Run(ctx)
}

// newFlagSet registers every configuration flag against fv.
func newFlagSet(fv *flagValues) *flag.FlagSet {
	fs := flag.NewFlagSet("p2pchat", flag.ContinueOnError)

	// ── session ──────────────────────────────────────────────────
	fs.StringVarP(&fv.framing, "framing", "f", config.DefaultFraming, "Inbound framing: line or chunk")
	fs.IntVarP(&fv.maxMessage, "max-message", "m", config.DefaultMaxMessage, "Maximum outbound message size in bytes, newline included")
	fs.IntVarP(&fv.buffer, "buffer", "b", config.DefaultBufferSize, "Inbound read buffer size in bytes")
	fs.StringVarP(&fv.label, "label", "l", config.DefaultLabel, "Label shown before inbound messages")

	// ── connection ───────────────────────────────────────────────
	fs.IntVarP(&fv.timeoutSec, "timeout", "w", 0, "Connect timeout in seconds (client)")
	fs.BoolVarP(&fv.noDNS, "no-dns", "n", false, "Numeric-only host, no DNS resolution (client)")

	// ── output ───────────────────────────────────────────────────
	fs.CountVarP(&fv.verbose, "verbose", "v", "Increase diagnostic verbosity (repeatable)")
	fs.BoolVarP(&fv.quiet, "quiet", "q", false, "Suppress banner and status lines")
	fs.BoolVar(&fv.stats, "stats", false, "Print a session summary on exit")
	fs.StringVar(&fv.configFile, "config", "", "TOML config file")

	return fs
}

// buildConfig layers defaults, config file, environment, and the flags
// the user set, then applies the positional arguments and validates.
func buildConfig(fs *flag.FlagSet, fv *flagValues) (*config.Config, error) {
	cfg := config.Default()

	path := fv.configFile
	if path == "" {
		path = os.Getenv(config.ConfigFileEnv)
	}
	if path != "" {
		if err := config.LoadFile(path, cfg); err != nil {
			return nil, err
		}
		cfg.ConfigFile = path
	}
	config.LoadFromEnv(cfg)

	if fs.Changed("framing") {
		cfg.Framing = fv.framing
	}
	if fs.Changed("max-message") {
		cfg.MaxMessage = fv.maxMessage
	}
	if fs.Changed("buffer") {
		cfg.BufferSize = fv.buffer
	}
	if fs.Changed("label") {
		cfg.Label = fv.label
	}
	if fs.Changed("timeout") {
		cfg.Timeout = time.Duration(fv.timeoutSec) * time.Second
	}
	if fs.Changed("no-dns") {
		cfg.NoDNS = fv.noDNS
	}
	if fs.Changed("verbose") {
		cfg.Verbose = config.DefaultVerbosity + fv.verbose
	}
	if fs.Changed("quiet") {
		cfg.Quiet = fv.quiet
	}
	if fs.Changed("stats") {
		cfg.Stats = fv.stats
	}

	if err := parsePositional(cfg, fs.Args()); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ── helpers ──────────────────────────────────────────────────────────

func parsePositional(cfg *config.Config, remaining []string) error {
	if len(remaining) == 0 {
		return chaterr.Usagef("mode required: server or client")
	}

	switch config.Mode(remaining[0]) {
	case config.ModeServer:
		if len(remaining) != 2 {
			return chaterr.Usagef("server usage: p2pchat server <port>")
		}
		port, err := config.ParsePort(remaining[1])
		if err != nil {
			return err
		}
		cfg.Mode = config.ModeServer
		cfg.Port = port

	case config.ModeClient:
		if len(remaining) != 3 {
			return chaterr.Usagef("client usage: p2pchat client <host> <port>")
		}
		port, err := config.ParsePort(remaining[2])
		if err != nil {
			return err
		}
		cfg.Mode = config.ModeClient
		cfg.Host = remaining[1]
		cfg.Port = port

	default:
		return chaterr.Usagef("invalid mode %q: use 'server' or 'client'", remaining[0])
	}
	return nil
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, `p2pchat – one-to-one TCP chat v%s

Usage:
  p2pchat [options] server <port>            Wait for one peer on <port>
  p2pchat [options] client <host> <port>     Connect to a waiting peer

Options:
`, version)
	fs.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Examples:
  p2pchat server 9009                         Listen on every interface
  p2pchat client 192.168.1.20 9009            Connect to a listener
  p2pchat -n -w 5 client 10.0.0.7 9009        Numeric host, 5s connect timeout
  p2pchat --framing chunk server 9009         One read = one message
`)
}
