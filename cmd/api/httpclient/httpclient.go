package httpclient

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"case-studio/cmd/api/trace"
	"case-studio/internal/logger"
)

const maxBodyLog = 1024

// Config 는 outbound HTTP 클라이언트 공통 설정이다.
type Config struct {
	// Timeout 은 http.Client 전체 타임아웃이다. 0 이면 제한하지 않는다.
	// 생성 모델 호출은 generator 의 context deadline 으로 제한한다.
	Timeout time.Duration
	// Transport 가 nil 이면 http.DefaultTransport 를 사용한다.
	Transport http.RoundTripper
}

// loggingRoundTripper 는 모든 outbound 호출에 X-Request-Id / X-Span-Id 를 붙이고
// 결과를 구조화 로그로 남긴다. 생성 모델(genai) 호출이 이 경로를 탄다.
type loggingRoundTripper struct {
	inner http.RoundTripper
}

func (l *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	requestID, spanID := trace.NextSpanID(req.Context())
	// RoundTripper 는 원본 요청을 수정하면 안 되므로 복제본에 헤더를 단다.
	out := req.Clone(req.Context())
	out.Header.Set("X-Request-Id", requestID)
	out.Header.Set("X-Span-Id", spanID)

	var bodySnippet string
	if req.Body != nil && req.Body != http.NoBody {
		// RoundTripper 는 에러가 나더라도 요청 body 를 닫아야 한다.
		bodyBytes, err := io.ReadAll(req.Body)
		req.Body.Close()
		if err != nil {
			return nil, err
		}
		bodySnippet = snippet(bodyBytes)
		out.Body = io.NopCloser(bytes.NewReader(bodyBytes))
	}

	fields := logger.Fields{
		"method":     req.Method,
		"host":       req.URL.Host,
		"path":       req.URL.Path,
		"request_id": requestID,
		"span_id":    spanID,
	}

	resp, err := l.inner.RoundTrip(out)
	fields["duration"] = time.Since(start).String()
	if err != nil {
		fields["error"] = err.Error()
		if bodySnippet != "" {
			fields["body"] = bodySnippet
		}
		logger.ErrorWithFields("httpclient request failed", fields)
		return nil, err
	}

	fields["status"] = resp.StatusCode
	if resp.StatusCode >= http.StatusBadRequest {
		logger.WarnWithFields("httpclient request returned error status", fields)
		return resp, nil
	}
	if bodySnippet != "" {
		fields["body"] = bodySnippet
	}
	logger.DebugWithFields("httpclient request success", fields)
	return resp, nil
}

func snippet(b []byte) string {
	if len(b) > maxBodyLog {
		return string(b[:maxBodyLog])
	}
	return string(b)
}

// New 는 주어진 설정으로 로깅 트랜스포트를 장착한 http.Client 를 생성한다.
func New(cfg Config) *http.Client {
	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &http.Client{
		Timeout:   cfg.Timeout,
		Transport: &loggingRoundTripper{inner: transport},
	}
}
