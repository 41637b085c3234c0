// Package report serializes analysis results for downstream plotting.
package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog/log"

	"github.com/hepkit/ttreco/internal/residuals"
)

// VariableReport holds, for one kinematic variable, the per-bin statistics
// of every reconstruction method, keyed method → statistic → per-bin array.
type VariableReport struct {
	Variable string                          `json:"variable"`
	Methods  map[string]map[string][]float64 `json:"methods"`
}

// Report is one full analysis run.
type Report struct {
	Era       string           `json:"era"`
	Events    int              `json:"events"`
	Variables []VariableReport `json:"variables"`
}

// FromQuality flattens per-method quality summaries into a VariableReport.
func FromQuality(variable string, quality map[string]residuals.MethodQuality) VariableReport {
	vr := VariableReport{
		Variable: variable,
		Methods:  make(map[string]map[string][]float64, len(quality)),
	}
	for name, q := range quality {
		vr.Methods[name] = q.Stats.AsMap()
	}
	return vr
}

// Write stores the report as JSON under dir, zstd-compressed when compress
// is set. It returns the written path.
func Write(dir, name string, rep *Report, compress bool) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	data, err := sonic.Marshal(rep)
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}

	path := filepath.Join(dir, name+".json")
	if compress {
		path += ".zst"
		f, err := os.Create(path)
		if err != nil {
			return "", fmt.Errorf("create report: %w", err)
		}
		defer f.Close()
		zw, err := zstd.NewWriter(f)
		if err != nil {
			return "", fmt.Errorf("open zstd stream: %w", err)
		}
		if _, err := zw.Write(data); err != nil {
			zw.Close()
			return "", fmt.Errorf("write report: %w", err)
		}
		if err := zw.Close(); err != nil {
			return "", fmt.Errorf("flush report: %w", err)
		}
	} else if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	log.Info().Str("path", path).Int("variables", len(rep.Variables)).Msg("report written")
	return path, nil
}
