// Package formatter turns board search results into a short reply.
package formatter

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"board-chatbot/internal/board"
	"board-chatbot/internal/config"
	"board-chatbot/internal/contextutil"
	"board-chatbot/internal/keyword"
	"board-chatbot/internal/llm"
)

// NoResultsMessage is returned for an empty post list.
const NoResultsMessage = "아쉽지만 검색 결과가 없습니다. 다른 키워드로 다시 시도해 보세요."

// Formatter summarizes posts found for a user query.
type Formatter interface {
	Format(ctx context.Context, posts []board.Post, query string) string
}

// New returns the Formatter selected by cfg.FormatterMode. The LLM strategy
// shares completer with the intent classifier.
func New(cfg *config.Config, completer llm.Completer) (Formatter, error) {
	switch cfg.FormatterMode {
	case config.FormatterTemplate, "":
		return NewTemplateFormatter(), nil
	case config.FormatterLLM:
		return NewLLMFormatter(completer), nil
	default:
		return nil, fmt.Errorf("unknown formatter mode %q", cfg.FormatterMode)
	}
}

// Category is the kind of listing a query asks for.
type Category int

const (
	CategoryKeyword Category = iota
	CategoryLatest
	CategoryPopular
	CategoryComments
)

// categoryHints is checked in order; the first category with a matching hint
// wins. Korean hints match as substrings because particles attach to them.
// English hints match whole words, case-insensitively.
var categoryHints = []struct {
	category Category
	korean   []string
	english  []string
}{
	{CategoryComments, []string{"댓글"}, []string{"comment", "comments"}},
	{CategoryPopular, []string{"인기", "조회수"}, []string{"popular", "views", "most viewed"}},
	{CategoryLatest, []string{"최신", "최근", "새로운", "새 글", "새글"}, []string{"latest", "recent", "newest"}},
}

// DetectCategory inspects query for sort hints.
func DetectCategory(query string) Category {
	lower := strings.ToLower(query)
	words := " " + strings.Join(strings.FieldsFunc(lower, isWordBreak), " ") + " "
	for _, c := range categoryHints {
		for _, h := range c.korean {
			if strings.Contains(lower, h) {
				return c.category
			}
		}
		for _, h := range c.english {
			if strings.Contains(words, " "+h+" ") {
				return c.category
			}
		}
	}
	return CategoryKeyword
}

func isWordBreak(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// TemplateFormatter builds a deterministic sentence from the post count and
// the detected category or keyword.
type TemplateFormatter struct{}

// NewTemplateFormatter creates a TemplateFormatter.
func NewTemplateFormatter() *TemplateFormatter {
	return &TemplateFormatter{}
}

// Format implements Formatter.
func (f *TemplateFormatter) Format(_ context.Context, posts []board.Post, query string) string {
	if len(posts) == 0 {
		return NoResultsMessage
	}
	return templateSentence(len(posts), query)
}

func templateSentence(n int, query string) string {
	switch DetectCategory(query) {
	case CategoryComments:
		return fmt.Sprintf("댓글이 많은 게시글 %d개를 찾았습니다.", n)
	case CategoryPopular:
		return fmt.Sprintf("인기 게시글 %d개를 찾았습니다.", n)
	case CategoryLatest:
		return fmt.Sprintf("최신 게시글 %d개를 찾았습니다.", n)
	}

	if subject := keyword.Normalize(query); subject != "" {
		return fmt.Sprintf("'%s' 관련 게시글 %d개를 찾았습니다.", subject, n)
	}
	return fmt.Sprintf("게시글 %d개를 찾았습니다.", n)
}

const (
	summaryTemperature = 0.7
	summaryMaxTokens   = 250
	summaryPostLimit   = 5
)

// LLMFormatter asks the model for a two to three sentence summary of the
// first few posts.
type LLMFormatter struct {
	llm llm.Completer
}

// NewLLMFormatter creates an LLMFormatter backed by completer.
func NewLLMFormatter(completer llm.Completer) *LLMFormatter {
	return &LLMFormatter{llm: completer}
}

// Format implements Formatter. A failed or blank completion degrades to a
// fixed sentence with the post count.
func (f *LLMFormatter) Format(ctx context.Context, posts []board.Post, query string) string {
	if len(posts) == 0 {
		return NoResultsMessage
	}

	reply, err := f.llm.Complete(ctx, []llm.Message{
		{Role: llm.RoleUser, Content: SummaryPrompt(posts, query)},
	}, llm.ChatParams{
		Temperature: summaryTemperature,
		MaxTokens:   summaryMaxTokens,
	})
	if err != nil {
		contextutil.LoggerFromContext(ctx).Warn("summary completion failed, using fallback", zap.Error(err))
		return fallbackSentence(len(posts))
	}

	summary := PlainText(reply)
	if summary == "" {
		contextutil.LoggerFromContext(ctx).Warn("summary completion was blank, using fallback")
		return fallbackSentence(len(posts))
	}
	return summary
}

// SummaryPrompt lists up to five posts by title and view count.
func SummaryPrompt(posts []board.Post, query string) string {
	shown := posts
	if len(shown) > summaryPostLimit {
		shown = shown[:summaryPostLimit]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "사용자가 \"%s\"(이)라고 질문하여 아래와 같은 게시글 %d개를 찾았습니다.\n\n", query, len(posts))
	for _, p := range shown {
		fmt.Fprintf(&b, "- 제목: %s (조회수: %d)\n", p.Title(), p.Views())
	}
	b.WriteString("\n위 검색 결과를 바탕으로, 찾은 게시글들을 친절하고 자연스럽게 요약해서 안내해주세요.\n")
	b.WriteString("- 몇 개의 게시글을 찾았는지 알려주세요.\n")
	b.WriteString("- 게시글들의 핵심 내용을 간단히 언급해주세요.\n")
	b.WriteString("- 2~3 문장으로 간결하게 한국어로 작성해주세요.")
	return b.String()
}

func fallbackSentence(n int) string {
	return fmt.Sprintf("총 %d개의 게시글을 찾았습니다. 직접 확인해보세요.", n)
}
