package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/clipshelf/clipshelf/internal/domain"
	"github.com/clipshelf/clipshelf/internal/logger"
)

// Client fetches video statistics and tags from the YouTube Data API v3.
//
// Unavailability is never fatal: every failure mode (missing key, network
// error, non-2xx response, unknown video, bad payload) resolves to
// (nil, false) so the enrichment pipeline can degrade gracefully.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	logger  logger.Logger
}

// New creates a metadata client. baseURL is the API root
// (https://www.googleapis.com/youtube/v3 in production, an httptest
// server in tests). An empty apiKey disables lookups entirely.
func New(apiKey, baseURL string, timeout time.Duration, log logger.Logger) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		http: &http.Client{
			Timeout: timeout,
		},
		logger: log,
	}
}

// Enabled reports whether the client has credentials to perform lookups.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// videosResponse mirrors the subset of the Data API v3 videos.list
// payload the catalog cares about. Counts arrive as decimal strings.
type videosResponse struct {
	Items []struct {
		Snippet struct {
			Tags []string `json:"tags"`
		} `json:"snippet"`
		Statistics struct {
			ViewCount    string `json:"viewCount"`
			LikeCount    string `json:"likeCount"`
			CommentCount string `json:"commentCount"`
		} `json:"statistics"`
	} `json:"items"`
}

// Stats fetches statistics and tags for a resolved video ID.
// The second return value is false when the provider is unavailable.
func (c *Client) Stats(ctx context.Context, videoID string) (*domain.VideoStats, bool) {
	if !c.Enabled() {
		c.logger.Debug("youtube lookup skipped, no API key configured")
		return nil, false
	}

	reqURL := fmt.Sprintf("%s/videos?part=%s&id=%s&key=%s",
		c.baseURL,
		url.QueryEscape("statistics,snippet"),
		url.QueryEscape(videoID),
		url.QueryEscape(c.apiKey),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		c.logger.Warn("failed to build youtube request", logger.Error(err))
		return nil, false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("youtube lookup failed",
			logger.String("video_id", videoID),
			logger.Error(err))
		return nil, false
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("youtube lookup returned non-success status",
			logger.String("video_id", videoID),
			logger.Int("status", resp.StatusCode))
		return nil, false
	}

	var payload videosResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.Warn("failed to decode youtube response",
			logger.String("video_id", videoID),
			logger.Error(err))
		return nil, false
	}

	if len(payload.Items) == 0 {
		c.logger.Debug("youtube returned no items",
			logger.String("video_id", videoID))
		return nil, false
	}

	item := payload.Items[0]
	stats := &domain.VideoStats{
		Views:    parseCount(item.Statistics.ViewCount),
		Likes:    parseCount(item.Statistics.LikeCount),
		Comments: parseCount(item.Statistics.CommentCount),
		Tags:     item.Snippet.Tags,
	}

	c.logger.Debug("youtube lookup succeeded",
		logger.String("video_id", videoID),
		logger.Int64("views", stats.Views),
		logger.Int("tags", len(stats.Tags)))

	return stats, true
}

// parseCount converts a Data API decimal string to int64.
// Counts are optional in the API; missing or malformed values default to 0.
func parseCount(s string) int64 {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
