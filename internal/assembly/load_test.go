package assembly

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSampleFile(t *testing.T, dir, name string, s *Sample, compress bool) string {
	t.Helper()
	data, err := sonic.Marshal(s)
	require.NoError(t, err)

	path := filepath.Join(dir, name)
	if compress {
		zw, err := zstd.NewWriter(nil)
		require.NoError(t, err)
		data = zw.EncodeAll(data, nil)
		require.NoError(t, zw.Close())
	}
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoadSample(t *testing.T) {
	dir := t.TempDir()
	path := writeSampleFile(t, dir, "ttbar.json", testSample("ttbar", 3), false)

	s, err := LoadSample(path)
	require.NoError(t, err)
	assert.Equal(t, "ttbar", s.Name)
	assert.Len(t, s.Weights, 3)
}

func TestLoadSampleZstd(t *testing.T) {
	dir := t.TempDir()
	path := writeSampleFile(t, dir, "ttbar.json.zst", testSample("ttbar", 4), true)

	s, err := LoadSample(path)
	require.NoError(t, err)
	assert.Equal(t, "ttbar", s.Name)
	assert.Len(t, s.Weights, 4)
}

func TestLoadSampleMissingWeights(t *testing.T) {
	dir := t.TempDir()
	s := testSample("noweights", 2)
	s.Weights = nil
	path := writeSampleFile(t, dir, "bad.json", s, false)

	_, err := LoadSample(path)
	assert.ErrorIs(t, err, ErrBadSample)
}

func TestLoadSampleMissingFile(t *testing.T) {
	_, err := LoadSample(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadSampleGarbage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "garbage.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err := LoadSample(path)
	assert.Error(t, err)
}

func TestLoadSamplesMerges(t *testing.T) {
	dir := t.TempDir()
	p1 := writeSampleFile(t, dir, "a.json", testSample("a", 2), false)
	p2 := writeSampleFile(t, dir, "b.json.zst", testSample("b", 3), true)

	ds, err := LoadSamples([]string{p1, p2})
	require.NoError(t, err)
	assert.Equal(t, 5, ds.Gen.Len())
	assert.Equal(t, 5, ds.Methods["transformer"].Len())
}
