package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"board-chatbot/internal/handlers"
	"board-chatbot/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	ChatService    service.ChatService
	PostService    handlers.PostGetter
	Logger         *zap.Logger
	ServiceName    string
	Version        string
	AllowedOrigins []string
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()

	r.Use(LoggerMiddleware(logger))
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(CORS(deps.AllowedOrigins))

	r.Method(http.MethodGet, "/health", handlers.NewHealthHandler(deps.ServiceName, deps.Version))

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodPost, "/chat", handlers.NewChatHandler(deps.ChatService))
		if deps.PostService != nil {
			r.Method(http.MethodGet, "/posts/{id}", handlers.NewPostHandler(deps.PostService))
		}
	})

	return r
}
