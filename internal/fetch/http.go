package fetch

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"log"
	"net/http"
	"path"
	"time"

	// Register decoders for the artwork formats we accept.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"fyne.io/fyne/v2"
	"github.com/google/uuid"

	"github.com/tunedeck/tunedeck/internal/model"
)

// Fetch limits
const (
	DefaultFetchTimeout = 15 * time.Second
	MaxArtworkBytes     = 8 << 20 // 8 MiB
)

// HTTPFetcher loads artwork over HTTP. Each subscription is single-shot:
// one request, one terminal phase, no retries.
type HTTPFetcher struct {
	client  *http.Client
	timeout time.Duration
}

// NewHTTPFetcher creates a fetcher with the default timeout.
func NewHTTPFetcher() *HTTPFetcher {
	return NewHTTPFetcherWithTimeout(DefaultFetchTimeout)
}

// NewHTTPFetcherWithTimeout creates a fetcher with a custom per-request timeout.
func NewHTTPFetcherWithTimeout(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &HTTPFetcher{
		client:  &http.Client{},
		timeout: timeout,
	}
}

// Subscribe starts loading url. The Empty phase is delivered synchronously
// before Subscribe returns; the terminal phase is delivered later on the UI
// thread via fyne.Do. Cancelling discards the pending result.
func (f *HTTPFetcher) Subscribe(url string, onPhase PhaseFunc) (cancel func()) {
	if onPhase == nil {
		log.Printf("Warning: Subscribe called with nil onPhase for %s", url)
		return func() {}
	}

	onPhase(model.ArtworkEmpty, nil)

	ctx, cancelCtx := context.WithCancel(context.Background())
	reqID := uuid.NewString()

	go func() {
		res, err := f.fetchResource(ctx, url)

		// A cancelled subscription must stay silent even if the request
		// happened to complete first.
		if ctx.Err() != nil {
			log.Printf("artwork fetch %s cancelled: %s", reqID, url)
			return
		}

		fyne.Do(func() {
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				log.Printf("artwork fetch %s failed: %v", reqID, err)
				onPhase(model.ArtworkFailure, nil)
				return
			}
			onPhase(model.ArtworkSuccess, res)
		})
	}()

	return cancelCtx
}

// fetchResource downloads and validates a single image.
func (f *HTTPFetcher) fetchResource(ctx context.Context, url string) (fyne.Resource, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get %s: unexpected status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxArtworkBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	if len(data) > MaxArtworkBytes {
		return nil, fmt.Errorf("read %s: artwork exceeds %d bytes", url, MaxArtworkBytes)
	}

	if _, _, err := image.Decode(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}

	return fyne.NewStaticResource(path.Base(url), data), nil
}
