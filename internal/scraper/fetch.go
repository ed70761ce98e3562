package scraper

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"

	"github.com/jiundev/gongmo/internal/logger"
)

// Browser-like request headers; the source site serves stripped-down markup
// to unrecognized clients.
var defaultHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
	"Accept-Language": "ko-KR,ko;q=0.9,en-US;q=0.8,en;q=0.7",
	"Connection":      "keep-alive",
}

// Fetcher retrieves source pages with bounded exponential-backoff retries
// and decodes them from the site's native EUC-KR encoding.
type Fetcher struct {
	client          *http.Client
	maxRetries      int
	initialInterval time.Duration
	maxInterval     time.Duration
}

// NewFetcher creates a Fetcher with the given per-request timeout and
// attempt ceiling.
func NewFetcher(timeout time.Duration, maxRetries int) *Fetcher {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &Fetcher{
		client:          &http.Client{Timeout: timeout},
		maxRetries:      maxRetries,
		initialInterval: 2 * time.Second,
		maxInterval:     10 * time.Second,
	}
}

// Fetch retrieves url and returns the page body as UTF-8 text. Transient
// failures are retried with exponential backoff up to the attempt ceiling;
// exhausting the retries is a fatal error for the collection run.
func (f *Fetcher) Fetch(url string) (string, error) {
	var body string

	operation := func() error {
		text, err := f.fetchOnce(url)
		if err != nil {
			logger.Debug("fetch attempt failed", logger.Fields{"url": url, "reason": err.Error()})
			return err
		}
		body = text
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = f.initialInterval
	policy.MaxInterval = f.maxInterval
	policy.MaxElapsedTime = 0

	err := backoff.Retry(operation, backoff.WithMaxRetries(policy, uint64(f.maxRetries-1)))
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}

	return body, nil
}

func (f *Fetcher) fetchOnce(url string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	for k, v := range defaultHeaders {
		req.Header.Set(k, v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("requesting page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	// The site serves EUC-KR regardless of what the client asks for.
	decoded := transform.NewReader(resp.Body, korean.EUCKR.NewDecoder())
	data, err := io.ReadAll(decoded)
	if err != nil {
		return "", fmt.Errorf("decoding body: %w", err)
	}

	return string(data), nil
}
