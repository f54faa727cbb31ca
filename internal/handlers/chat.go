package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"board-chatbot/internal/board"
	"board-chatbot/internal/contextutil"
	"board-chatbot/internal/intent"
	"board-chatbot/internal/service"
)

// InternalErrorDetail is the only detail a 500 response ever carries.
const InternalErrorDetail = "서버 내부 오류가 발생했습니다."

const maxRequestBytes = 1 << 20

// statusClientClosedRequest is the nginx convention for a request the client
// abandoned before a response was ready.
const statusClientClosedRequest = 499

// ChatHandler handles HTTP requests for chat.
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// ChatRequest represents the HTTP request payload for chat.
type ChatRequest struct {
	Message             string           `json:"message"`
	ConversationHistory []intent.Message `json:"conversation_history"`
}

// ChatResponse represents the HTTP response payload for chat.
// Posts is null for general conversation.
type ChatResponse struct {
	Message   string         `json:"message"`
	Posts     []board.Post   `json:"posts"`
	QueryInfo *intent.Intent `json:"query_info"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ServeHTTP handles HTTP requests for chat.
func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.Warn("method not allowed", zap.String("method", r.Method))
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil {
		logger.Warn("invalid request body", zap.Error(err))
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Convert HTTP request to service request
	svcReq := service.ChatRequest{
		Message: req.Message,
		History: req.ConversationHistory,
	}

	svcResp, err := h.chatService.HandleChat(ctx, svcReq)
	if err != nil {
		handleServiceError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, ChatResponse{
		Message:   svcResp.Message,
		Posts:     svcResp.Posts,
		QueryInfo: svcResp.QueryInfo,
	})
}

// handleServiceError maps service errors to HTTP status codes. Internal
// detail is logged, never returned.
func handleServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	logger := contextutil.LoggerFromContext(ctx)

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		logger.Warn("request rejected", zap.Error(err))
		writeError(w, http.StatusBadRequest, validationErr.Error())
		return
	}

	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("client closed request", zap.Error(err))
		writeError(w, statusClientClosedRequest, "Client closed request")
	case errors.Is(err, service.ErrInvalidInput):
		logger.Warn("request rejected", zap.Error(err))
		writeError(w, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, service.ErrNotFound):
		logger.Info("resource not found", zap.Error(err))
		writeError(w, http.StatusNotFound, "Resource not found")
	case errors.Is(err, service.ErrExternalService):
		logger.Error("external service error", zap.Error(err))
		writeError(w, http.StatusBadGateway, "External service error")
	default:
		logger.Error("service error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, InternalErrorDetail)
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		contextutil.LoggerFromContext(ctx).Error("failed to encode response", zap.Error(err))
	}
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, statusCode int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Detail: detail,
	})
}
