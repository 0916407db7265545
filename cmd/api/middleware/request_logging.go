package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"case-studio/internal/logger"
	"case-studio/metrics"
)

// RequestLoggingMiddleware 는 요청 처리 시간을 debug 로그로 남기고 HTTP 요청 카운터를 올린다.
// path 라벨은 라우트 템플릿을 사용해 정적 파일 경로로 카디널리티가 늘지 않게 한다.
func RequestLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := c.Writer.Status()
		metrics.HTTPRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(status)).Inc()

		logger.Log.Debugf(
			"api_request method=%s path=%s status=%d duration_ms=%d",
			c.Request.Method,
			c.Request.URL.Path,
			status,
			time.Since(start).Milliseconds(),
		)
	}
}
