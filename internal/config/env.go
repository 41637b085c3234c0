// Package config defines environment configuration structs and loaders.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type AppConfig struct {
	SampleEnvConfig
	RemoteEnvConfig
	ReportEnvConfig
}

func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SampleEnvConfig locates the on-disk sample store.
type SampleEnvConfig struct {
	SampleDir string `env:"SAMPLE_DIR" envDefault:"./samples"`
	Era       string `env:"ERA" envDefault:"2017"`
}

// RemoteEnvConfig configures the remote sample fetcher. An empty base URL
// disables remote fetching.
type RemoteEnvConfig struct {
	SampleBaseURL string        `env:"SAMPLE_BASE_URL" envDefault:""`
	ClientTimeout time.Duration `env:"CLIENT_TIMEOUT" envDefault:"30s"`
}

// ReportEnvConfig configures report output.
type ReportEnvConfig struct {
	OutputDir       string `env:"OUTPUT_DIR" envDefault:"./output"`
	DefaultBins     int    `env:"DEFAULT_BINS" envDefault:"20"`
	CompressReports bool   `env:"COMPRESS_REPORTS" envDefault:"false"`
}
