package intent

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Type tags an Intent.
type Type string

const (
	TypeSearch  Type = "search"
	TypeGeneral Type = "general"
)

// Sort orders board search results.
type Sort string

const (
	SortLatest   Sort = "latest"
	SortPopular  Sort = "popular"
	SortComments Sort = "comments"
)

const (
	// DefaultLimit is the number of posts requested when the model gives none.
	DefaultLimit = 3
	// MaxLimit caps the number of posts a single request may ask for.
	MaxLimit = 20
	// HistoryWindow is the number of trailing history entries sent to the model.
	HistoryWindow = 5
)

// Message is one turn of caller-supplied conversation history.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Intent is the classified purpose of a chat message. Keyword, Category,
// Sort and Limit are meaningful only for TypeSearch; Message only for
// TypeGeneral.
type Intent struct {
	Type     Type
	Keyword  string
	Category string
	Sort     Sort
	Limit    int
	Message  string
}

// Search builds a search intent with defaults applied.
func Search(keyword, category string, sort Sort, limit int) Intent {
	return Intent{
		Type:     TypeSearch,
		Keyword:  keyword,
		Category: category,
		Sort:     ParseSort(string(sort)),
		Limit:    clampLimit(limit),
	}
}

// General builds a general-conversation intent.
func General(message string) Intent {
	return Intent{Type: TypeGeneral, Message: message}
}

// IsSearch reports whether the intent asks for a board search.
func (i Intent) IsSearch() bool {
	return i.Type == TypeSearch
}

// MarshalJSON renders only the fields that belong to the intent's variant.
func (i Intent) MarshalJSON() ([]byte, error) {
	switch i.Type {
	case TypeSearch:
		return json.Marshal(struct {
			Type     Type   `json:"type"`
			Keyword  string `json:"keyword"`
			Category string `json:"category,omitempty"`
			Sort     Sort   `json:"sort"`
			Limit    int    `json:"limit"`
		}{i.Type, i.Keyword, i.Category, i.Sort, i.Limit})
	case TypeGeneral:
		return json.Marshal(struct {
			Type    Type   `json:"type"`
			Message string `json:"message"`
		}{i.Type, i.Message})
	default:
		return nil, fmt.Errorf("cannot marshal intent with type %q", i.Type)
	}
}

// ParseSort maps model output onto a known Sort. "views" and "popularity"
// mean popular; anything unrecognized falls back to latest.
func ParseSort(raw string) Sort {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "popular", "views", "popularity", "hot":
		return SortPopular
	case "comments", "comment", "comment_count", "comments_count":
		return SortComments
	}
	return SortLatest
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
