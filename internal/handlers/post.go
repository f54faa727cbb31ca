package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"board-chatbot/internal/board"
)

// PostGetter loads a single board post.
type PostGetter interface {
	GetPost(ctx context.Context, id string) (board.Post, error)
}

// PostHandler proxies single-post lookups to the board service.
type PostHandler struct {
	posts PostGetter
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(posts PostGetter) *PostHandler {
	return &PostHandler{posts: posts}
}

// ServeHTTP handles GET /api/posts/{id}.
func (h *PostHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	post, err := h.posts.GetPost(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, post)
}
