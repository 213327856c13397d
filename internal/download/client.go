package download

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mediasaver/media-saver/internal/model"
)

// Backend endpoint paths
const (
	DownloadPath = "/download"
	HealthPath   = "/health"
)

// RequestTimeout bounds a single download request. The backend fetches and
// transcodes the whole file before answering, so this has to be generous.
const RequestTimeout = 10 * time.Minute

// ErrBackendUnreachable is returned when no response was received at all.
// Its text is shown to the user as-is.
var ErrBackendUnreachable = errors.New("cannot connect to the download server, it may be offline")

// errorBody is the JSON error shape the backend sends with non-2xx statuses.
type errorBody struct {
	Detail string `json:"detail"`
}

// Client talks to the media backend over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

// NewClient creates a backend client for the given base URL. A nil logger is
// replaced with a no-op one.
func NewClient(baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: RequestTimeout},
		log:        logger,
	}
}

// BaseURL returns the backend base address the client was configured with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// RequestDownload sends one POST {baseURL}/download with a JSON {url, kind}
// body. An unspecified kind defaults to mp4. No retries: at most one request
// is in flight because the UI disables the trigger while loading.
func (c *Client) RequestDownload(ctx context.Context, url string, kind model.Kind) (*model.DownloadResponse, error) {
	if strings.TrimSpace(url) == "" {
		return nil, errors.New("url must not be empty")
	}
	if !kind.IsValid() {
		kind = model.KindMP4
	}

	body, err := json.Marshal(model.DownloadRequest{URL: url, Kind: kind})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+DownloadPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.Info("requesting download",
		zap.String("url", url),
		zap.String("kind", kind.String()))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("backend not reachable", zap.Error(err))
		return nil, ErrBackendUnreachable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.translateHTTPError(resp)
	}

	var result model.DownloadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.log.Warn("malformed success body", zap.Error(err))
		return nil, errors.New("unexpected response from the download server")
	}

	return &result, nil
}

// Health checks GET {baseURL}/health. Any 2xx answer counts as reachable.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+HealthPath, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ErrBackendUnreachable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("backend health check returned status %d", resp.StatusCode)
	}
	return nil
}

// translateHTTPError turns a non-2xx response into a single error. The
// backend sends {"detail": "..."} bodies; when that parse fails the status
// code is all we can report.
func (c *Client) translateHTTPError(resp *http.Response) error {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err == nil {
		var eb errorBody
		if jsonErr := json.Unmarshal(raw, &eb); jsonErr == nil && eb.Detail != "" {
			return errors.New(eb.Detail)
		}
	}
	return fmt.Errorf("download failed with status %d", resp.StatusCode)
}
