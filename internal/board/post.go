package board

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Post is a board post as the board service returns it. Only a few fields
// are read here; the rest pass through to the caller untouched.
type Post map[string]any

// Title returns the post title, or "N/A" when absent.
func (p Post) Title() string {
	if s, ok := p["title"].(string); ok && s != "" {
		return s
	}
	return "N/A"
}

// Views returns the post view count, or 0 when absent or not numeric.
func (p Post) Views() int64 {
	switch v := p["views"].(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			f, ferr := v.Float64()
			if ferr != nil {
				return 0
			}
			return int64(f)
		}
		return n
	case float64:
		return int64(v)
	case int:
		return int64(v)
	case int64:
		return v
	default:
		return 0
	}
}

// Page is the paginated response shape of GET /posts.
type Page struct {
	Posts       []Post `json:"posts"`
	CurrentPage int    `json:"currentPage"`
	TotalPages  int    `json:"totalPages"`
}

var errUnknownShape = errors.New("response is neither a post array nor an object with posts")

// DecodePosts accepts the two response shapes of GET /posts: a bare array of
// posts, or an object with a "posts" array plus pagination. Anything else is
// an error. Numbers are kept as json.Number so ids and counts round-trip
// exactly.
func DecodePosts(body []byte) (Page, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return Page{}, errors.New("empty response body")
	}

	switch trimmed[0] {
	case '[':
		var posts []Post
		if err := decodeStrict(trimmed, &posts); err != nil {
			return Page{}, fmt.Errorf("decode post array: %w", err)
		}
		return Page{Posts: nonNil(posts), CurrentPage: 1, TotalPages: 1}, nil
	case '{':
		var obj map[string]json.RawMessage
		if err := decodeStrict(trimmed, &obj); err != nil {
			return Page{}, fmt.Errorf("decode page object: %w", err)
		}
		rawPosts, ok := obj["posts"]
		if !ok {
			return Page{}, errUnknownShape
		}

		var page Page
		if err := decodeStrict(rawPosts, &page.Posts); err != nil {
			return Page{}, fmt.Errorf("decode posts field: %w", err)
		}
		page.Posts = nonNil(page.Posts)
		if raw, ok := obj["currentPage"]; ok {
			_ = json.Unmarshal(raw, &page.CurrentPage)
		}
		if raw, ok := obj["totalPages"]; ok {
			_ = json.Unmarshal(raw, &page.TotalPages)
		}
		return page, nil
	default:
		return Page{}, errUnknownShape
	}
}

func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

func nonNil(posts []Post) []Post {
	if posts == nil {
		return []Post{}
	}
	return posts
}
