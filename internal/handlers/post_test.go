package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"board-chatbot/internal/board"
	"board-chatbot/internal/service"
)

type stubPosts struct {
	post  board.Post
	err   error
	gotID string
}

func (s *stubPosts) GetPost(_ context.Context, id string) (board.Post, error) {
	s.gotID = id
	return s.post, s.err
}

func TestPostHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name       string
		stub       *stubPosts
		wantStatus int
		wantBody   string
	}{
		{
			name:       "found",
			stub:       &stubPosts{post: board.Post{"id": "42", "title": "Docker 입문"}},
			wantStatus: http.StatusOK,
			wantBody:   `{"id":"42","title":"Docker 입문"}`,
		},
		{
			name:       "not found",
			stub:       &stubPosts{err: service.WrapError(service.ErrNotFound, "post 42")},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"detail":"Resource not found"}`,
		},
		{
			name:       "board down",
			stub:       &stubPosts{err: service.ErrExternalService},
			wantStatus: http.StatusBadGateway,
			wantBody:   `{"detail":"External service error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := chi.NewRouter()
			r.Method(http.MethodGet, "/api/posts/{id}", NewPostHandler(tt.stub))

			req := httptest.NewRequest(http.MethodGet, "/api/posts/42", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("ServeHTTP() status = %v, want %v", w.Code, tt.wantStatus)
			}
			if got := strings.TrimSpace(w.Body.String()); got != tt.wantBody {
				t.Errorf("ServeHTTP() body = %s, want %s", got, tt.wantBody)
			}
			if tt.stub.gotID != "42" {
				t.Errorf("GetPost() id = %q, want 42", tt.stub.gotID)
			}
		})
	}
}
