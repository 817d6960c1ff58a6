// Package cmd wires up the CLI flags and boots the game server.
package cmd

import (
	"context"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"gomud/config"
	"gomud/game"
	"gomud/internal/auth"
	"gomud/internal/metrics"
	"gomud/internal/store"
	"gomud/server"
	"gomud/util"
)

// version is overridable at link time:
//
//	go build -ldflags "-X gomud/cmd.version=2.0.0"
var version = "1.0.0" //nolint:gochecknoglobals

// Execute parses args and runs the server until ctx is cancelled.
//
// Precedence is CLI flags > environment > defaults: the environment is
// loaded first so that flag defaults reflect it, and explicit flags
// overwrite whatever it set.
func Execute(ctx context.Context, args []string) error {
	cfg := &config.Config{}
	if err := config.LoadFromEnv(cfg); err != nil {
		return err
	}

	fs := flag.NewFlagSet("gomud", flag.ContinueOnError)

	// ── listener ─────────────────────────────────────────────────
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "SSH listen port")

	// ── host key ─────────────────────────────────────────────────
	fs.StringVar(&cfg.HostKeyPEM, "host-key", cfg.HostKeyPEM, "Host private key (PEM contents)")
	fs.StringVar(&cfg.HostKeyFile, "host-key-file", cfg.HostKeyFile, "Host private key file")

	// ── persistence ──────────────────────────────────────────────
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite file for characters (empty disables)")

	// ── shutdown ─────────────────────────────────────────────────
	fs.DurationVar(&cfg.GracePeriod, "grace-period", cfg.GracePeriod, "Shutdown drain period")

	// ── output ───────────────────────────────────────────────────
	fs.CountVarP(&cfg.Verbose, "verbose", "v", "Increase verbosity (repeatable)")

	var showVersion, showHelp, dryRun bool
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")
	fs.BoolVar(&dryRun, "dry-run", false, "Validate configuration and exit")

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
		fmt.Printf("gomud %s\n", version)
		return nil
	}

	// ── validate ─────────────────────────────────────────────────
	if err := cfg.Validate(); err != nil {
		return err
	}
	if dryRun {
		return nil
	}

	// ── build components ─────────────────────────────────────────
	logger := util.NewLogger(cfg.Verbose)
	collector := metrics.New()

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer st.Close()
	if st == nil {
		logger.Verbose("persistence disabled (no --db path)")
	}

	world := game.NewWorld(game.DemoArea(), logger, st, collector)
	srv := server.New(cfg, logger, world, auth.AllowAll{}, collector)
	return srv.ListenAndServe(ctx)
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, `gomud – a multi-user dungeon over SSH v%s

Every connection gets its own character-creation flow into a shared
world. Any username and password are accepted.

Usage:
  gomud [options]

Options:
`, version)
	fs.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Environment:
  GOMUD_PORT            Listen port (default 8022)
  GOMUD_HOST_KEY        Host private key, PEM contents
  GOMUD_HOST_KEY_FILE   Host private key file
  GOMUD_DB              SQLite file for characters
  GOMUD_GRACE_PERIOD    Shutdown drain period (e.g. 5s)
  GOMUD_VERBOSE         Verbosity level

Examples:
  ssh-keygen -t ed25519 -f host_key -N ""
  gomud --host-key-file host_key               Serve on 8022
  GOMUD_HOST_KEY="$(cat host_key)" gomud -p 2222
  ssh -p 8022 localhost                        Connect and play
`)
}
