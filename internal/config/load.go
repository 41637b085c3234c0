package config

import (
	"os"
	"strconv"
	"time"
)

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiWithDefault(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func durationWithDefault(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		// try seconds as int
		if i, err2 := strconv.Atoi(s); err2 == nil {
			return time.Duration(i) * time.Second
		}
		return def
	}
	return d
}

func LoadSampleEnv() (*SampleEnvConfig, error) {
	cfg := &SampleEnvConfig{
		SampleDir: getenv("SAMPLE_DIR", "./samples"),
		Era:       getenv("ERA", "2017"),
	}
	return cfg, nil
}

func LoadRemoteEnv() (*RemoteEnvConfig, error) {
	cfg := &RemoteEnvConfig{
		SampleBaseURL: getenv("SAMPLE_BASE_URL", ""),
		ClientTimeout: durationWithDefault(getenv("CLIENT_TIMEOUT", "30s"), 30*time.Second),
	}
	return cfg, nil
}

func LoadReportEnv() (*ReportEnvConfig, error) {
	cfg := &ReportEnvConfig{
		OutputDir:       getenv("OUTPUT_DIR", "./output"),
		DefaultBins:     atoiWithDefault(getenv("DEFAULT_BINS", "20"), 20),
		CompressReports: getenv("COMPRESS_REPORTS", "false") == "true",
	}
	return cfg, nil
}
