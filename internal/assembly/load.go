package assembly

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog/log"
)

// Dataset is the merged analysis input across sub-samples: one
// generator-level batch plus one aligned batch per reconstruction method.
type Dataset struct {
	Gen     EventBatch
	Methods map[string]EventBatch
}

// LoadSample reads one sample file from disk. Files ending in .zst are
// decompressed transparently; the payload is JSON either way.
func LoadSample(path string) (*Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sample: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open zstd stream %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read sample %s: %w", path, err)
	}

	var s Sample
	if err := sonic.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode sample %s: %w", path, err)
	}
	if s.Weights == nil {
		return nil, fmt.Errorf("%w: %s has no weights", ErrBadSample, path)
	}
	log.Debug().Str("path", path).Str("sample", s.Name).Int("events", len(s.Weights)).Msg("loaded sample")
	return &s, nil
}

// LoadSamples loads several sample files and merges them into one dataset.
// Every sub-sample must carry the same set of reconstruction methods.
func LoadSamples(paths []string) (*Dataset, error) {
	samples := make([]*Sample, 0, len(paths))
	for _, path := range paths {
		s, err := LoadSample(path)
		if err != nil {
			return nil, err
		}
		samples = append(samples, s)
	}
	return MergeSamples(samples)
}

// MergeSamples assembles loaded samples into one dataset.
func MergeSamples(samples []*Sample) (*Dataset, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: no samples", ErrBadSample)
	}

	ds := &Dataset{Methods: make(map[string]EventBatch)}
	for i, s := range samples {
		gen, err := s.GenBatch()
		if err != nil {
			return nil, err
		}
		methods, err := s.MethodBatches()
		if err != nil {
			return nil, err
		}

		if i == 0 {
			ds.Gen = gen
			ds.Methods = methods
			continue
		}
		if len(methods) != len(ds.Methods) {
			return nil, fmt.Errorf("%w: sample %q has %d methods, expected %d",
				ErrBadSample, s.Name, len(methods), len(ds.Methods))
		}
		ds.Gen = Concat(ds.Gen, gen)
		for name, b := range methods {
			prev, ok := ds.Methods[name]
			if !ok {
				return nil, fmt.Errorf("%w: sample %q introduces unknown method %q", ErrBadSample, s.Name, name)
			}
			ds.Methods[name] = Concat(prev, b)
		}
	}
	return ds, nil
}
