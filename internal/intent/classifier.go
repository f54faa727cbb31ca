// Package intent classifies chat messages into board searches or general
// conversation using a language model.
package intent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"board-chatbot/internal/contextutil"
	"board-chatbot/internal/keyword"
	"board-chatbot/internal/llm"
)

const (
	// FallbackMessage is returned as a General intent whenever classification fails.
	FallbackMessage = "죄송합니다. 요청을 처리하는 중 오류가 발생했습니다."

	// HelpMessage replaces blank or generic general-conversation replies.
	HelpMessage = "게시판 글을 찾아드릴 수 있어요. \"최신글 보여줘\", \"인기글 알려줘\", \"React 관련 글 찾아줘\"처럼 물어보세요."

	classifyTemperature = 0.1
)

// Classification stages reported in ClassifyError.
const (
	StageCall  = "call"
	StageParse = "parse"
	StageShape = "shape"
)

const systemPrompt = `당신은 게시판 검색 어시스턴트입니다.
사용자의 질문을 분석하여 다음 두 가지 중 하나의 JSON 객체로만 응답하세요.

1. 게시글 검색이 필요한 경우:
   {"type": "search", "keyword": "<검색어, 없으면 빈 문자열>", "category": "<카테고리, 선택>", "sort": "latest" | "popular" | "comments", "limit": <결과 개수, 기본 3>}
   - 최신/최근 글 → sort "latest"
   - 인기/조회수 많은 글 → sort "popular"
   - 댓글 많은 글 → sort "comments"
   - keyword에는 기술 이름이나 주제만 넣고 "글", "게시글", "보여줘" 같은 말은 넣지 마세요.
2. 일반 대화인 경우:
   {"type": "general", "message": "<사용자에게 전달할 응답>"}

JSON 외의 텍스트는 절대 포함하지 마세요.

예시:
- "최신글 보여줘" → {"type": "search", "keyword": "", "sort": "latest", "limit": 3}
- "인기 있는 글 5개 알려줘" → {"type": "search", "keyword": "", "sort": "popular", "limit": 5}
- "React 관련 글 찾아줘" → {"type": "search", "keyword": "React", "sort": "latest", "limit": 3}
- "댓글 많은 도커 글" → {"type": "search", "keyword": "Docker", "sort": "comments", "limit": 3}
- "안녕" → {"type": "general", "message": "안녕하세요! 게시판 글 검색을 도와드릴게요."}`

// genericReplies are model replies too vague to show; they are replaced by
// HelpMessage. Entries are lower-cased and trimmed.
var genericReplies = map[string]struct{}{
	"무엇을 도와드릴까요?":            {},
	"무엇을 도와드릴까요":             {},
	"안녕하세요! 무엇을 도와드릴까요?":     {},
	"안녕하세요. 무엇을 도와드릴까요?":     {},
	"도와드릴 일이 있을까요?":          {},
	"how can i help you?":      {},
	"how can i help you today?": {},
	"what can i do for you?":   {},
}

// ClassifyError reports why a message could not be classified.
type ClassifyError struct {
	Stage string
	Raw   string
	Err   error
}

func (e *ClassifyError) Error() string {
	return fmt.Sprintf("classify %s: %v", e.Stage, e.Err)
}

func (e *ClassifyError) Unwrap() error {
	return e.Err
}

// Classifier turns chat messages into Intents.
type Classifier struct {
	llm llm.Completer
}

// NewClassifier creates a Classifier backed by completer.
func NewClassifier(completer llm.Completer) *Classifier {
	return &Classifier{llm: completer}
}

// Classify never fails: any error from TryClassify yields a General intent
// carrying FallbackMessage.
func (c *Classifier) Classify(ctx context.Context, message string, history []Message) Intent {
	in, err := c.TryClassify(ctx, message, history)
	if err != nil {
		fields := []zap.Field{zap.Error(err)}
		var classifyErr *ClassifyError
		if errors.As(err, &classifyErr) && classifyErr.Raw != "" {
			fields = append(fields, zap.String("raw", truncate(classifyErr.Raw, 500)))
		}
		contextutil.LoggerFromContext(ctx).Warn("intent classification failed, using fallback", fields...)
		return General(FallbackMessage)
	}
	return in
}

// TryClassify makes exactly one model call and parses its reply.
func (c *Classifier) TryClassify(ctx context.Context, message string, history []Message) (Intent, error) {
	logger := contextutil.LoggerFromContext(ctx)

	messages := BuildMessages(message, history)
	logger.Debug("classifying message",
		zap.Int("history_len", len(history)),
		zap.Int("prompt_messages", len(messages)),
	)

	raw, err := c.llm.Complete(ctx, messages, llm.ChatParams{
		Temperature: classifyTemperature,
		JSON:        true,
	})
	if err != nil {
		return Intent{}, &ClassifyError{Stage: StageCall, Err: err}
	}

	in, err := ParseIntent(raw)
	if err != nil {
		return Intent{}, err
	}

	logger.Info("message classified",
		zap.String("type", string(in.Type)),
		zap.String("keyword", in.Keyword),
		zap.String("sort", string(in.Sort)),
		zap.Int("limit", in.Limit),
	)
	return in, nil
}

// BuildMessages assembles the system prompt, the last HistoryWindow history
// entries, and the current message.
func BuildMessages(message string, history []Message) []llm.Message {
	if len(history) > HistoryWindow {
		history = history[len(history)-HistoryWindow:]
	}

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: systemPrompt})
	for _, h := range history {
		messages = append(messages, llm.Message{Role: h.Role, Content: h.Content})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: message})
	return messages
}

// rawIntent is the loosely typed JSON the model returns.
type rawIntent struct {
	Type     string `json:"type"`
	Keyword  any    `json:"keyword"`
	Category any    `json:"category"`
	Sort     any    `json:"sort"`
	Limit    any    `json:"limit"`
	Message  any    `json:"message"`
}

// ParseIntent repairs and decodes a model reply into an Intent with defaults
// and keyword normalization applied.
func ParseIntent(raw string) (Intent, error) {
	obj, err := extractJSONObject(raw)
	if err != nil {
		return Intent{}, &ClassifyError{Stage: StageParse, Raw: raw, Err: err}
	}

	var r rawIntent
	if err := json.Unmarshal([]byte(obj), &r); err != nil {
		return Intent{}, &ClassifyError{Stage: StageParse, Raw: raw, Err: err}
	}

	switch Type(strings.ToLower(strings.TrimSpace(r.Type))) {
	case TypeSearch:
		return Search(
			keyword.Normalize(asString(r.Keyword)),
			strings.TrimSpace(asString(r.Category)),
			Sort(asString(r.Sort)),
			asInt(r.Limit),
		), nil
	case TypeGeneral:
		msg := strings.TrimSpace(asString(r.Message))
		if isGenericReply(msg) {
			msg = HelpMessage
		}
		return General(msg), nil
	default:
		return Intent{}, &ClassifyError{
			Stage: StageShape,
			Raw:   raw,
			Err:   fmt.Errorf("unknown intent type %q", r.Type),
		}
	}
}

// extractJSONObject strips Markdown code fences and surrounding prose and
// returns the outermost {...} span.
func extractJSONObject(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		if nl := strings.IndexByte(s, '\n'); nl >= 0 {
			s = s[nl+1:]
		} else {
			s = strings.TrimPrefix(s, "```")
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}

	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end < start {
		return "", errors.New("no JSON object in model reply")
	}
	return s[start : end+1], nil
}

func isGenericReply(msg string) bool {
	if msg == "" {
		return true
	}
	_, ok := genericReplies[strings.ToLower(msg)]
	return ok
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

func asInt(v any) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
