package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_pipeline.go -package=mocks board-chatbot/internal/service IntentClassifier,PostSearcher,ResultFormatter,QueryRecorder
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_chat_service.go -package=mocks -mock_names=ChatService=MockChatService board-chatbot/internal/service ChatService

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"board-chatbot/internal/board"
	"board-chatbot/internal/contextutil"
	"board-chatbot/internal/intent"
	"board-chatbot/internal/llm"
	"board-chatbot/internal/storage"
)

// IntentClassifier classifies a chat message. It never fails; failures come
// back as a General intent.
type IntentClassifier interface {
	Classify(ctx context.Context, message string, history []intent.Message) intent.Intent
}

// PostSearcher runs a board search. It never fails; failures come back as
// an empty slice.
type PostSearcher interface {
	Search(ctx context.Context, in intent.Intent) []board.Post
}

// ResultFormatter summarizes search results for the user.
type ResultFormatter interface {
	Format(ctx context.Context, posts []board.Post, query string) string
}

// QueryRecorder persists handled requests for later inspection.
type QueryRecorder interface {
	Record(ctx context.Context, rec *storage.QueryRecord) error
}

// ChatRequest represents a chat request in the domain layer.
type ChatRequest struct {
	Message string
	History []intent.Message
}

// ChatResponse represents a chat response in the domain layer.
// Posts is nil unless the intent was a search; QueryInfo is always set.
type ChatResponse struct {
	Message   string
	Posts     []board.Post
	QueryInfo *intent.Intent
}

// ChatService provides chat functionality.
type ChatService interface {
	// HandleChat classifies the message, searches the board when asked to,
	// and builds the reply.
	HandleChat(ctx context.Context, req ChatRequest) (ChatResponse, error)
}

// chatService implements ChatService.
type chatService struct {
	classifier IntentClassifier
	searcher   PostSearcher
	formatter  ResultFormatter
	recorder   QueryRecorder
}

// NewChatService creates a new ChatService. recorder may be nil.
func NewChatService(classifier IntentClassifier, searcher PostSearcher, formatter ResultFormatter, recorder QueryRecorder) ChatService {
	return &chatService{
		classifier: classifier,
		searcher:   searcher,
		formatter:  formatter,
		recorder:   recorder,
	}
}

// HandleChat processes a chat request.
func (s *chatService) HandleChat(ctx context.Context, req ChatRequest) (resp ChatResponse, err error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := validate(req); err != nil {
		logger.Warn("invalid chat request", zap.Error(err))
		return ChatResponse{}, err
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Error("chat pipeline panicked", zap.Any("panic", r), zap.Stack("stack"))
			resp = ChatResponse{}
			err = fmt.Errorf("%w: panic: %v", ErrInternal, r)
		}
	}()

	start := time.Now()

	in := s.classifier.Classify(ctx, req.Message, req.History)
	if err := ctx.Err(); err != nil {
		return ChatResponse{}, WrapError(err, "chat request canceled during classification")
	}

	switch in.Type {
	case intent.TypeSearch:
		posts := s.searcher.Search(ctx, in)
		if err := ctx.Err(); err != nil {
			return ChatResponse{}, WrapError(err, "chat request canceled during search")
		}
		if posts == nil {
			posts = []board.Post{}
		}
		resp = ChatResponse{
			Message:   s.formatter.Format(ctx, posts, req.Message),
			Posts:     posts,
			QueryInfo: &in,
		}
	case intent.TypeGeneral:
		resp = ChatResponse{
			Message:   in.Message,
			QueryInfo: &in,
		}
	default:
		return ChatResponse{}, fmt.Errorf("%w: unexpected intent type %q", ErrInternal, in.Type)
	}

	elapsed := time.Since(start)
	logger.Info("chat request processed",
		zap.String("intent", string(in.Type)),
		zap.Int("posts", len(resp.Posts)),
		zap.Duration("elapsed", elapsed),
	)

	s.record(ctx, req, resp, elapsed)
	return resp, nil
}

// record writes a query log entry. Failures are logged only.
func (s *chatService) record(ctx context.Context, req ChatRequest, resp ChatResponse, elapsed time.Duration) {
	if s.recorder == nil {
		return
	}

	in := resp.QueryInfo
	rec := &storage.QueryRecord{
		RequestID:  contextutil.RequestIDFromContext(ctx),
		Message:    req.Message,
		IntentType: string(in.Type),
		PostCount:  len(resp.Posts),
		Reply:      resp.Message,
		Duration:   elapsed,
	}
	if in.IsSearch() {
		rec.Keyword = in.Keyword
		rec.Sort = string(in.Sort)
		rec.Limit = in.Limit
	}

	if err := s.recorder.Record(ctx, rec); err != nil {
		contextutil.LoggerFromContext(ctx).Warn("failed to record query", zap.Error(err))
	}
}

func validate(req ChatRequest) error {
	if strings.TrimSpace(req.Message) == "" {
		return &ValidationError{Field: "message", Message: "cannot be empty"}
	}
	for i, m := range req.History {
		switch m.Role {
		case llm.RoleSystem, llm.RoleUser, llm.RoleAssistant:
		default:
			return &ValidationError{
				Field:   fmt.Sprintf("conversation_history[%d].role", i),
				Message: fmt.Sprintf("must be one of system, user, assistant; got %q", m.Role),
			}
		}
	}
	return nil
}
