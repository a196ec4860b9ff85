package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/friber/move-to-go/internal/config"
	"github.com/friber/move-to-go/internal/logging"
)

type app struct {
	v   *viper.Viper
	cfg config.Config
	log logr.Logger
}

// NewRootCommand builds the move-to-go command tree. Settings come from flags, then
// MOVETOGO_* environment variables, then defaults.
func NewRootCommand() *cobra.Command {
	a := &app{v: config.NewViper(), log: logr.Discard()}

	root := &cobra.Command{
		Use:   "move-to-go",
		Short: "Validate, serialize and push CRM entities to Lime Go",
		Long: `move-to-go reads an import document (YAML or JSON) of coworkers, organizations,
persons and deals, validates and serializes them, and pushes the payloads to the remote
CRM. Every push is recorded as a run in a local sqlite database so unchanged entities are
skipped next time.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromViper(a.v)
			if err != nil {
				return err
			}
			a.cfg = cfg
			log, err := logging.New(cfg.LogLevel, cfg.DevLog)
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.String("remote-url", "", "base URL of the remote CRM API")
	flags.String("token", "", "API token for the remote CRM")
	flags.String("db-path", "move-to-go.db", "sqlite database recording sync runs")
	flags.String("listen-addr", ":8080", "address the HTTP API listens on")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.Bool("dev-log", false, "human readable console logs")
	flags.Duration("fingerprint-ttl", 10*time.Minute, "how long payload fingerprints stay cached in memory")
	flags.Bool("json", false, "output JSON")

	for key, flag := range map[string]string{
		config.KeyRemoteURL:      "remote-url",
		config.KeyToken:          "token",
		config.KeyDBPath:         "db-path",
		config.KeyListenAddr:     "listen-addr",
		config.KeyLogLevel:       "log-level",
		config.KeyDevLog:         "dev-log",
		config.KeyFingerprintTTL: "fingerprint-ttl",
		"json":                   "json",
	} {
		_ = a.v.BindPFlag(key, flags.Lookup(flag))
	}

	root.AddCommand(
		a.validateCmd(),
		a.serializeCmd(),
		a.pushCmd(),
		a.runsCmd(),
		a.serveCmd(),
	)
	return root
}

func (a *app) jsonOutput() bool {
	return a.v.GetBool("json")
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
