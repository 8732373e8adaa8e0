package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// GitHub App credentials. The private key may be supplied inline
	// (PEM) or as a file path; exactly one is required.
	GithubAppID          int64  `env:"GITHUB_APP_ID,required"`
	GithubInstallationID int64  `env:"GITHUB_INSTALLATION_ID,required"`
	GithubPrivateKey     string `env:"GITHUB_APP_PRIVATE_KEY"`
	GithubPrivateKeyFile string `env:"GITHUB_APP_PRIVATE_KEY_FILE"`

	GithubOrg     string `env:"GITHUB_ORG,required"`
	BotLogin      string `env:"BOT_LOGIN" envDefault:"compliance-bot[bot]"`
	WebhookSecret string `env:"GITHUB_WEBHOOK_SECRET,required"`

	ListenAddr  string `env:"LISTEN_ADDR" envDefault:":8080"`
	DatabaseDSN string `env:"DATABASE_DSN" envDefault:"compliance.db"`

	// Location of the compliance config document.
	ConfigRepo string `env:"COMPLIANCE_CONFIG_REPO" envDefault:"compliance-config"`
	ConfigPath string `env:"COMPLIANCE_CONFIG_PATH" envDefault:"compliance.yml"`

	ScanInterval time.Duration `env:"SCAN_INTERVAL" envDefault:"24h"`
	ScanOnStart  bool          `env:"SCAN_ON_START" envDefault:"false"`
	WorkerCount  int           `env:"WORKER_COUNT" envDefault:"4"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if cfg.GithubPrivateKey == "" && cfg.GithubPrivateKeyFile == "" {
		return nil, fmt.Errorf("one of GITHUB_APP_PRIVATE_KEY or GITHUB_APP_PRIVATE_KEY_FILE is required")
	}
	return &cfg, nil
}

// PrivateKeyPEM returns the App private key bytes, reading the key
// file if the key was not supplied inline.
func (c *Config) PrivateKeyPEM() ([]byte, error) {
	if c.GithubPrivateKey != "" {
		return []byte(c.GithubPrivateKey), nil
	}
	data, err := os.ReadFile(c.GithubPrivateKeyFile)
	if err != nil {
		return nil, fmt.Errorf("reading private key file: %w", err)
	}
	return data, nil
}
