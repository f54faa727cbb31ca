// Package board is a client for the bulletin-board service's post API.
package board

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"board-chatbot/internal/contextutil"
	"board-chatbot/internal/intent"
)

const maxBodyBytes = 4 << 20

// SearchError describes a failed call to the board service.
type SearchError struct {
	Op         string
	URL        string
	StatusCode int
	Err        error
}

func (e *SearchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("board %s %s: status %d", e.Op, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("board %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *SearchError) Unwrap() error {
	return e.Err
}

// Client queries the board service. It is safe for concurrent use.
type Client struct {
	BaseURL    string
	httpClient *http.Client
}

// NewClient creates a board client for baseURL (without a trailing slash).
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SearchParams builds the query string for a search intent. The search and
// category parameters are omitted when empty; sort, limit and page are
// always sent.
func SearchParams(in intent.Intent) url.Values {
	q := url.Values{}
	if in.Keyword != "" {
		q.Set("search", in.Keyword)
	}
	if in.Category != "" {
		q.Set("category", in.Category)
	}

	sort := in.Sort
	if sort == "" {
		sort = intent.SortLatest
	}
	limit := in.Limit
	if limit <= 0 {
		limit = intent.DefaultLimit
	}
	q.Set("sort", string(sort))
	q.Set("limit", strconv.Itoa(limit))
	q.Set("page", "1")
	return q
}

// Search returns the posts matching in. Failures are logged and yield an
// empty, non-nil slice.
func (c *Client) Search(ctx context.Context, in intent.Intent) []Post {
	posts, err := c.TrySearch(ctx, in)
	if err != nil {
		contextutil.LoggerFromContext(ctx).Warn("board search failed, returning no results",
			zap.Error(err),
			zap.String("keyword", in.Keyword),
			zap.String("sort", string(in.Sort)),
		)
		return []Post{}
	}
	return posts
}

// TrySearch issues a single GET /posts for in.
func (c *Client) TrySearch(ctx context.Context, in intent.Intent) ([]Post, error) {
	endpoint := c.BaseURL + "/posts?" + SearchParams(in).Encode()

	body, err := c.get(ctx, "search", endpoint)
	if err != nil {
		return nil, err
	}

	page, err := DecodePosts(body)
	if err != nil {
		return nil, &SearchError{Op: "search", URL: endpoint, Err: err}
	}

	contextutil.LoggerFromContext(ctx).Debug("board search completed",
		zap.Int("posts", len(page.Posts)),
		zap.Int("current_page", page.CurrentPage),
		zap.Int("total_pages", page.TotalPages),
	)
	return page.Posts, nil
}

// GetPost fetches a single post by id.
func (c *Client) GetPost(ctx context.Context, id string) (Post, error) {
	endpoint := c.BaseURL + "/posts/" + url.PathEscape(id)

	body, err := c.get(ctx, "get post", endpoint)
	if err != nil {
		return nil, err
	}

	var post Post
	if err := decodeStrict(body, &post); err != nil {
		return nil, &SearchError{Op: "get post", URL: endpoint, Err: err}
	}
	if post == nil {
		return nil, &SearchError{Op: "get post", URL: endpoint, Err: errUnknownShape}
	}
	return post, nil
}

func (c *Client) get(ctx context.Context, op, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &SearchError{Op: op, URL: endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &SearchError{Op: op, URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, &SearchError{
			Op:         op,
			URL:        endpoint,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &SearchError{Op: op, URL: endpoint, Err: fmt.Errorf("read body: %w", err)}
	}
	return body, nil
}
