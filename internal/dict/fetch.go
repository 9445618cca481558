package dict

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Fetch loads the table from an HTTP resource. Any failure (network
// error, non-2xx status, malformed JSON) leaves the dictionary in its
// previous state.
func (d *Dictionary) Fetch(ctx context.Context, url string, timeout time.Duration) error {
	client := &http.Client{Timeout: timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("dict: request %s: %w", url, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("dict: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("dict: fetch %s: status %s", url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("dict: fetch %s: %w", url, err)
	}
	return d.LoadBytes(data)
}

// LoadAsync starts loading in the background, preferring a local file
// over the URL when both are configured. Load failures are swallowed:
// the dictionary simply stays not-ready and lookups keep reporting the
// loading state.
func (d *Dictionary) LoadAsync(ctx context.Context, path, url string, timeout time.Duration) {
	go func() {
		var err error
		switch {
		case path != "":
			err = d.LoadFile(path)
		case url != "":
			err = d.Fetch(ctx, url, timeout)
		default:
			return
		}
		if err != nil {
			slog.Debug("dictionary load failed", "error", err)
			return
		}
		slog.Debug("dictionary loaded", "entries", d.Len())
	}()
}
