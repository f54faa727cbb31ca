package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_post_fetcher.go -package=mocks board-chatbot/internal/service PostFetcher

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"board-chatbot/internal/board"
	"board-chatbot/internal/contextutil"
)

// PostFetcher loads a single board post.
type PostFetcher interface {
	GetPost(ctx context.Context, id string) (board.Post, error)
}

// PostService looks up individual posts on the board service.
type PostService struct {
	fetcher PostFetcher
}

// NewPostService creates a new PostService.
func NewPostService(fetcher PostFetcher) *PostService {
	return &PostService{fetcher: fetcher}
}

// GetPost returns the post with id. A 404 from the board maps to
// ErrNotFound; any other board failure maps to ErrExternalService.
func (s *PostService) GetPost(ctx context.Context, id string) (board.Post, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, &ValidationError{Field: "id", Message: "cannot be empty"}
	}

	post, err := s.fetcher.GetPost(ctx, id)
	if err == nil {
		return post, nil
	}

	contextutil.LoggerFromContext(ctx).Warn("failed to fetch post", zap.String("id", id), zap.Error(err))

	var searchErr *board.SearchError
	if errors.As(err, &searchErr) && searchErr.StatusCode == http.StatusNotFound {
		return nil, WrapError(ErrNotFound, "post "+id)
	}
	return nil, errors.Join(ErrExternalService, err)
}
