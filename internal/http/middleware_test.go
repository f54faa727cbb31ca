package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"board-chatbot/internal/contextutil"
)

func TestLoggerMiddleware(t *testing.T) {
	tests := []struct {
		name        string
		incomingID  string
		wantReuseID bool
	}{
		{name: "generates request id", incomingID: ""},
		{name: "reuses incoming request id", incomingID: "abc-123", wantReuseID: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var capturedCtx context.Context
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				capturedCtx = r.Context()
				w.WriteHeader(http.StatusOK)
			})

			base := zap.NewNop()
			mw := LoggerMiddleware(base)(handler)

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.incomingID != "" {
				req.Header.Set(RequestIDHeader, tt.incomingID)
			}
			w := httptest.NewRecorder()

			mw.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("LoggerMiddleware() status = %v, want %v", w.Code, http.StatusOK)
			}
			if capturedCtx == nil {
				t.Fatal("LoggerMiddleware() should capture context")
			}
			if contextutil.LoggerFromContext(capturedCtx) == zap.L() {
				t.Error("LoggerMiddleware() should add logger to context")
			}

			id := contextutil.RequestIDFromContext(capturedCtx)
			if id == "" {
				t.Fatal("LoggerMiddleware() should add request id to context")
			}
			if tt.wantReuseID && id != tt.incomingID {
				t.Errorf("request id = %q, want %q", id, tt.incomingID)
			}
			if got := w.Header().Get(RequestIDHeader); got != id {
				t.Errorf("%s header = %q, want %q", RequestIDHeader, got, id)
			}
		})
	}
}

func TestRequestLogger(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
		shouldLog  bool
		wantLevel  zapcore.Level
	}{
		{
			name:       "regular request",
			method:     http.MethodPost,
			path:       "/api/chat",
			statusCode: http.StatusOK,
			shouldLog:  true,
			wantLevel:  zapcore.InfoLevel,
		},
		{
			name:       "health check skipped",
			method:     http.MethodGet,
			path:       "/health",
			statusCode: http.StatusOK,
			shouldLog:  false,
		},
		{
			name:       "non-200 health check logged",
			method:     http.MethodGet,
			path:       "/health",
			statusCode: http.StatusServiceUnavailable,
			shouldLog:  true,
			wantLevel:  zapcore.ErrorLevel,
		},
		{
			name:       "client error logged as warning",
			method:     http.MethodPost,
			path:       "/api/chat",
			statusCode: http.StatusBadRequest,
			shouldLog:  true,
			wantLevel:  zapcore.WarnLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			})

			mw := LoggerMiddleware(zap.New(core))(RequestLogger(handler))
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			mw.ServeHTTP(w, req)

			if w.Code != tt.statusCode {
				t.Errorf("RequestLogger() status = %v, want %v", w.Code, tt.statusCode)
			}
			if got := logs.Len() > 0; got != tt.shouldLog {
				t.Fatalf("RequestLogger() logged = %v, want %v", got, tt.shouldLog)
			}
			if tt.shouldLog {
				entry := logs.All()[0]
				if entry.Level != tt.wantLevel {
					t.Errorf("RequestLogger() level = %v, want %v", entry.Level, tt.wantLevel)
				}
				if entry.ContextMap()["status"] != int64(tt.statusCode) {
					t.Errorf("RequestLogger() status field = %v, want %d", entry.ContextMap()["status"], tt.statusCode)
				}
			}
		})
	}
}

func TestResponseWriter_WriteHeader(t *testing.T) {
	w := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

	rw.WriteHeader(http.StatusNotFound)

	if rw.statusCode != http.StatusNotFound {
		t.Errorf("responseWriter.WriteHeader() statusCode = %v, want %v", rw.statusCode, http.StatusNotFound)
	}

	if w.Code != http.StatusNotFound {
		t.Errorf("responseWriter.WriteHeader() underlying status = %v, want %v", w.Code, http.StatusNotFound)
	}
}

func TestCORS(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name           string
		allowed        []string
		method         string
		origin         string
		preflight      bool
		wantStatusCode int
		wantOrigin     string
	}{
		{
			name:           "preflight from allowed origin",
			allowed:        []string{"http://localhost:3000"},
			method:         http.MethodOptions,
			origin:         "http://localhost:3000",
			preflight:      true,
			wantStatusCode: http.StatusNoContent,
			wantOrigin:     "http://localhost:3000",
		},
		{
			name:           "request from allowed origin",
			allowed:        []string{"http://localhost:3000"},
			method:         http.MethodPost,
			origin:         "http://localhost:3000",
			wantStatusCode: http.StatusOK,
			wantOrigin:     "http://localhost:3000",
		},
		{
			name:           "request from other origin",
			allowed:        []string{"http://localhost:3000"},
			method:         http.MethodPost,
			origin:         "http://evil.example",
			wantStatusCode: http.StatusOK,
			wantOrigin:     "",
		},
		{
			name:           "wildcard echoes origin",
			allowed:        []string{"*"},
			method:         http.MethodGet,
			origin:         "http://anything.example",
			wantStatusCode: http.StatusOK,
			wantOrigin:     "http://anything.example",
		},
		{
			name:           "request without origin",
			allowed:        []string{"http://localhost:3000"},
			method:         http.MethodPost,
			wantStatusCode: http.StatusOK,
			wantOrigin:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/test", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}
			w := httptest.NewRecorder()

			CORS(tt.allowed)(handler).ServeHTTP(w, req)

			if w.Code != tt.wantStatusCode {
				t.Errorf("CORS() status = %v, want %v", w.Code, tt.wantStatusCode)
			}
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantOrigin)
			}
		})
	}
}

func TestCORS_Headers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()

	CORS([]string{"http://localhost:3000"})(handler).ServeHTTP(w, req)

	headers := map[string]string{
		"Access-Control-Allow-Origin":      "http://localhost:3000",
		"Access-Control-Allow-Credentials": "true",
		"Access-Control-Allow-Methods":     "GET, POST, OPTIONS",
		"Access-Control-Allow-Headers":     "Content-Type, Authorization, X-Request-ID",
		"Access-Control-Max-Age":           "3600",
		"Vary":                             "Origin",
	}

	for header, wantValue := range headers {
		gotValue := w.Header().Get(header)
		if gotValue != wantValue {
			t.Errorf("CORS() header %s = %v, want %v", header, gotValue, wantValue)
		}
	}
}
