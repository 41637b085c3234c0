package assembly

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSampleServer(t *testing.T, samples map[string]*Sample) *Fetcher {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Path[len("/samples/"):]
		s, ok := samples[name]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		data, _ := sonic.Marshal(s)
		w.Write(data)
	}))
	t.Cleanup(ts.Close)
	return NewFetcher(ts.URL, 5*time.Second)
}

func TestFetchSample(t *testing.T) {
	f := newSampleServer(t, map[string]*Sample{"ttbar_2017": testSample("ttbar_2017", 3)})

	s, err := f.FetchSample("ttbar_2017")
	require.NoError(t, err)
	assert.Equal(t, "ttbar_2017", s.Name)
	assert.Len(t, s.Weights, 3)
}

func TestFetchSampleNotFound(t *testing.T) {
	f := newSampleServer(t, nil)
	_, err := f.FetchSample("absent")
	assert.Error(t, err)
}

func TestFetchSamplesMerges(t *testing.T) {
	f := newSampleServer(t, map[string]*Sample{
		"a": testSample("a", 2),
		"b": testSample("b", 4),
	})

	ds, err := f.FetchSamples([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, 6, ds.Gen.Len())
	assert.Equal(t, 6, ds.Methods["transformer"].Len())
}
