package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const EnvPrefix = "MOVETOGO"

const (
	KeyRemoteURL      = "remote_url"
	KeyToken          = "token"
	KeyDBPath         = "db_path"
	KeyListenAddr     = "listen_addr"
	KeyLogLevel       = "log_level"
	KeyDevLog         = "dev_log"
	KeyFingerprintTTL = "fingerprint_ttl"
)

type Config struct {
	RemoteURL      string
	Token          string
	DBPath         string
	ListenAddr     string
	LogLevel       string
	DevLog         bool
	FingerprintTTL time.Duration
}

// LoadDotEnv loads .env files into the process environment. Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// NewViper returns a viper instance reading MOVETOGO_* environment variables, with
// defaults set for every key.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyRemoteURL, "")
	v.SetDefault(KeyToken, "")
	v.SetDefault(KeyDBPath, "move-to-go.db")
	v.SetDefault(KeyListenAddr, ":8080")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyDevLog, false)
	v.SetDefault(KeyFingerprintTTL, 10*time.Minute)
	return v
}

func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		RemoteURL:      v.GetString(KeyRemoteURL),
		Token:          v.GetString(KeyToken),
		DBPath:         v.GetString(KeyDBPath),
		ListenAddr:     v.GetString(KeyListenAddr),
		LogLevel:       v.GetString(KeyLogLevel),
		DevLog:         v.GetBool(KeyDevLog),
		FingerprintTTL: v.GetDuration(KeyFingerprintTTL),
	}
	if cfg.DBPath == "" {
		return cfg, fmt.Errorf("%s must not be empty", KeyDBPath)
	}
	if cfg.FingerprintTTL < 0 {
		return cfg, fmt.Errorf("%s must not be negative", KeyFingerprintTTL)
	}
	return cfg, nil
}

// RequireRemote checks the settings needed to push to the remote system.
func (c Config) RequireRemote() error {
	if c.Token == "" {
		return fmt.Errorf("%s_%s is not set", EnvPrefix, strings.ToUpper(KeyToken))
	}
	return nil
}
