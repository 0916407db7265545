package generator_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"case-studio/generator"
	"case-studio/metrics"
	"case-studio/models"
)

func newGeminiAgainst(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *generator.GeminiGenerator {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	g, err := generator.NewGemini(context.Background(), generator.GeminiConfig{
		APIKey:  "test-key",
		Model:   "gemini-2.5-flash",
		Timeout: timeout,
		BaseURL: srv.URL + "/",
	})
	require.NoError(t, err)
	return g
}

func TestGeminiGenerateReturnsText(t *testing.T) {
	var (
		mu      sync.Mutex
		gotPath string
		gotBody string
	)
	g := newGeminiAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		gotPath = r.URL.Path
		gotBody = string(body)
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"## Case Study\nOK"}]}}]}`))
	}, time.Second)

	out, err := g.Generate(context.Background(), "hello provider")
	require.NoError(t, err)
	assert.Equal(t, "## Case Study\nOK", out)

	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, gotPath, "gemini-2.5-flash:generateContent")
	assert.Contains(t, gotBody, "hello provider")
	assert.Contains(t, gotBody, `"role":"user"`)
	assert.Equal(t, "gemini-2.5-flash", g.Model())
}

func TestGeminiGenerateProviderError(t *testing.T) {
	g := newGeminiAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`))
	}, time.Second)

	_, err := g.Generate(context.Background(), "hello")
	require.Error(t, err)

	var genErr *generator.GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, generator.KindProvider, genErr.Kind)
	assert.Equal(t, "API key not valid", genErr.Message)
}

func TestGeminiGenerateTimeout(t *testing.T) {
	g := newGeminiAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}, 50*time.Millisecond)

	_, err := g.Generate(context.Background(), "slow")
	require.Error(t, err)
	assert.ErrorIs(t, err, generator.ErrTimeout)
	assert.Equal(t, generator.KindTimeout, generator.KindOf(err))
}

func TestGeminiGenerateEmptyResponse(t *testing.T) {
	g := newGeminiAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}, time.Second)

	_, err := g.Generate(context.Background(), "hello")
	assert.ErrorIs(t, err, generator.ErrEmptyResponse)
}

func TestGeminiGenerateWhitespaceOnlyTextIsEmptyResponse(t *testing.T) {
	g := newGeminiAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"  \n "}]}}]}`))
	}, time.Second)

	out, err := g.Generate(context.Background(), "hello")
	assert.Empty(t, out)
	assert.ErrorIs(t, err, generator.ErrEmptyResponse)
	assert.Equal(t, generator.KindEmptyResponse, generator.KindOf(err))
}

func TestGeminiGenerateRejectsBlankPrompt(t *testing.T) {
	var calls atomic.Int32
	g := newGeminiAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}, time.Second)

	_, err := g.Generate(context.Background(), "   ")
	assert.ErrorIs(t, err, generator.ErrInvalidPrompt)
	assert.Zero(t, calls.Load())
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		wantKind generator.Kind
		wantMsg  string
	}{
		{name: "deadline", err: fmt.Errorf("doRequest: %w", context.DeadlineExceeded), wantKind: generator.KindTimeout, wantMsg: "generation timed out"},
		{name: "canceled", err: context.Canceled, wantKind: generator.KindCanceled},
		{name: "api error", err: genai.APIError{Code: 429, Message: "quota exceeded", Status: "RESOURCE_EXHAUSTED"}, wantKind: generator.KindProvider, wantMsg: "quota exceeded"},
		{name: "plain error", err: errors.New("boom"), wantKind: generator.KindProvider, wantMsg: "boom"},
		{name: "already classified", err: generator.ErrEmptyResponse, wantKind: generator.KindEmptyResponse, wantMsg: "provider returned no text"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			got := generator.Classify(testCase.err)
			require.NotNil(t, got)
			assert.Equal(t, testCase.wantKind, got.Kind)
			if testCase.wantMsg != "" {
				assert.Equal(t, testCase.wantMsg, got.Error())
			}
		})
	}

	assert.Nil(t, generator.Classify(nil))
	assert.Equal(t, generator.Kind(""), generator.KindOf(errors.New("plain")))
}

func TestRouteContext(t *testing.T) {
	assert.Equal(t, "unknown", generator.RouteFrom(context.Background()))
	ctx := generator.WithRoute(context.Background(), "chat")
	assert.Equal(t, "chat", generator.RouteFrom(ctx))
}

func TestInstrumentedCountsOutcomes(t *testing.T) {
	route := "instrumented-test"
	ctx := generator.WithRoute(context.Background(), route)

	success := metrics.GenerationRequests.WithLabelValues(route, "success", "")
	failure := metrics.GenerationRequests.WithLabelValues(route, "failure", string(generator.KindTimeout))
	beforeSuccess := testutil.ToFloat64(success)
	beforeFailure := testutil.ToFloat64(failure)

	ok := generator.NewInstrumented(generator.Func(func(ctx context.Context, prompt string) (string, error) {
		return "OK", nil
	}))
	out, err := ok.Generate(ctx, "p")
	require.NoError(t, err)
	assert.Equal(t, "OK", out)

	failing := generator.NewInstrumented(generator.Func(func(ctx context.Context, prompt string) (string, error) {
		return "", generator.ErrTimeout
	}))
	_, err = failing.Generate(ctx, "p")
	assert.ErrorIs(t, err, generator.ErrTimeout)

	assert.Equal(t, beforeSuccess+1, testutil.ToFloat64(success))
	assert.Equal(t, beforeFailure+1, testutil.ToFloat64(failure))
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.GenerationsInFlight.WithLabelValues(route)))
}

type fakeRecorder struct {
	mu   sync.Mutex
	logs []models.GenerationLog
	err  error
}

func (r *fakeRecorder) Insert(ctx context.Context, log models.GenerationLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, log)
	return r.err
}

func TestAuditedRecordsSuccess(t *testing.T) {
	rec := &fakeRecorder{}
	g := generator.NewAudited(
		generator.Func(func(ctx context.Context, prompt string) (string, error) { return "résumé", nil }),
		rec,
		"gemini-2.5-flash",
		func(context.Context) string { return "req-1" },
	)

	out, err := g.Generate(generator.WithRoute(context.Background(), "generate-case-study"), "prompt text")
	require.NoError(t, err)
	assert.Equal(t, "résumé", out)

	require.Len(t, rec.logs, 1)
	entry := rec.logs[0]
	assert.Equal(t, "req-1", entry.RequestID)
	assert.Equal(t, "generate-case-study", entry.Route)
	assert.Equal(t, "gemini-2.5-flash", entry.ModelName)
	assert.Equal(t, len("prompt text"), entry.PromptChars)
	assert.Equal(t, 6, entry.OutputChars)
	assert.True(t, entry.Success)
	assert.Nil(t, entry.ErrorMessage)
	assert.False(t, entry.CompletedAt.Before(entry.RequestedAt))
}

func TestAuditedRecordsFailureAndIgnoresRecorderError(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("mongo down")}
	g := generator.NewAudited(
		generator.Func(func(ctx context.Context, prompt string) (string, error) { return "", errors.New("quota") }),
		rec,
		"m",
		nil,
	)

	_, err := g.Generate(context.Background(), "p")
	require.EqualError(t, err, "quota")

	require.Len(t, rec.logs, 1)
	entry := rec.logs[0]
	assert.False(t, entry.Success)
	assert.Equal(t, string(generator.KindProvider), entry.ErrorKind)
	require.NotNil(t, entry.ErrorMessage)
	assert.Equal(t, "quota", *entry.ErrorMessage)
	assert.Equal(t, "unknown", entry.Route)
}
