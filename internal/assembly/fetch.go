package assembly

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog/log"
)

// Fetcher pulls sample files from a remote sample store over HTTP.
type Fetcher struct {
	client  *resty.Client
	BaseURL string
}

// NewFetcher builds a Fetcher for the given base URL. Transient failures
// are retried by the underlying transport.
func NewFetcher(baseURL string, timeout time.Duration) *Fetcher {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 5
	retryClient.RetryWaitMin = 500 * time.Millisecond
	retryClient.RetryWaitMax = 20 * time.Second
	retryClient.HTTPClient.Timeout = timeout
	retryClient.Logger = nil

	client := resty.NewWithClient(retryClient.StandardClient()).
		SetBaseURL(baseURL).
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal)

	return &Fetcher{client: client, BaseURL: baseURL}
}

// FetchSample downloads one sample by name, e.g. "ttbar_2017_powheg".
func (f *Fetcher) FetchSample(name string) (*Sample, error) {
	var s Sample
	resp, err := f.client.R().
		SetResult(&s).
		Get("/samples/" + name)
	if err != nil {
		log.Error().Err(err).Str("sample", name).Msg("sample fetch failed")
		return nil, fmt.Errorf("fetch sample %s: %w", name, err)
	}
	if resp.IsError() {
		log.Error().Int("status", resp.StatusCode()).Str("sample", name).Msg("sample fetch non-2xx")
		return nil, fmt.Errorf("fetch sample %s: status %d", name, resp.StatusCode())
	}
	if s.Weights == nil {
		return nil, fmt.Errorf("%w: remote sample %s has no weights", ErrBadSample, name)
	}
	log.Debug().Str("sample", s.Name).Int("events", len(s.Weights)).Msg("fetched sample")
	return &s, nil
}

// FetchSamples downloads several samples and merges them into one dataset.
func (f *Fetcher) FetchSamples(names []string) (*Dataset, error) {
	samples := make([]*Sample, 0, len(names))
	for _, name := range names {
		s, err := f.FetchSample(name)
		if err != nil {
			return nil, err
		}
		samples = append(samples, s)
	}
	return MergeSamples(samples)
}
