package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"board-chatbot/internal/storage"
)

// setupEnv points the configuration at fake model and board servers.
func setupEnv(t *testing.T, queryLog bool) {
	t.Helper()

	model := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":     "test-id",
			"object": "chat.completion",
			"model":  "test-model",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]string{"role": "assistant", "content": `{"type":"search","keyword":"","sort":"latest","limit":2}`},
				"finish_reason": "stop",
			}},
		})
	}))
	t.Cleanup(model.Close)

	boardSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/posts":
			_, _ = w.Write([]byte(`[{"id":1,"title":"첫 글"},{"id":2,"title":"둘째 글"}]`))
		case "/posts/1":
			_, _ = w.Write([]byte(`{"id":1,"title":"첫 글","views":12}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(boardSrv.Close)

	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("LLM_BASE_URL", model.URL+"/v1")
	t.Setenv("LLM_MODEL", "test-model")
	t.Setenv("BOARD_BASE_URL", boardSrv.URL)
	t.Setenv("FORMATTER_MODE", "template")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("CONFIG_FILE", "")
	if queryLog {
		t.Setenv("QUERY_LOG_PATH", filepath.Join(t.TempDir(), "queries.db"))
	} else {
		t.Setenv("QUERY_LOG_PATH", "")
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAskCommand(t *testing.T) {
	setupEnv(t, false)

	out, err := execute(t, "ask", "최신글", "보여줘")
	require.NoError(t, err)

	var resp struct {
		Message   string           `json:"message"`
		Posts     []map[string]any `json:"posts"`
		QueryInfo map[string]any   `json:"query_info"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "최신 게시글 2개를 찾았습니다.", resp.Message)
	assert.Len(t, resp.Posts, 2)
	assert.Equal(t, "search", resp.QueryInfo["type"])
	assert.Equal(t, "latest", resp.QueryInfo["sort"])
}

func TestPostCommand(t *testing.T) {
	setupEnv(t, false)

	out, err := execute(t, "post", "1")
	require.NoError(t, err)
	assert.Contains(t, out, `"title": "첫 글"`)

	_, err = execute(t, "post", "99")
	assert.Error(t, err)
}

func TestQueriesCommand(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		setupEnv(t, false)

		_, err := execute(t, "queries")
		assert.ErrorIs(t, err, errQueryLogDisabled)
	})

	t.Run("lists recorded asks", func(t *testing.T) {
		setupEnv(t, true)

		_, err := execute(t, "ask", "최신글 보여줘")
		require.NoError(t, err)

		out, err := execute(t, "queries", "--limit", "5")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 2)
		assert.True(t, strings.HasPrefix(lines[0], "TIME"))
		assert.Contains(t, lines[1], "search")
		assert.Contains(t, lines[1], "최신글 보여줘")
	})
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	setupEnv(t, false)
	t.Setenv("FORMATTER_MODE", "poetry")

	_, err := execute(t, "ask", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FORMATTER_MODE")
}

func TestAppClose(t *testing.T) {
	db, err := storage.New(filepath.Join(t.TempDir(), "queries.db"))
	require.NoError(t, err)

	core, logs := observer.New(zapcore.DebugLevel)
	a := &app{logger: zap.New(core), db: db}
	a.Close()

	assert.Error(t, db.Ping(), "query log must be closed")
	assert.Zero(t, logs.FilterLevelExact(zapcore.WarnLevel).Len())

	// Without a query log only the logger is flushed.
	(&app{logger: zap.NewNop()}).Close()
}
