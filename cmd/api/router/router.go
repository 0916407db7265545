package router

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"case-studio/cmd/api/dto"
	"case-studio/cmd/api/handlers"
	"case-studio/cmd/api/middleware"
	"case-studio/cmd/api/services"
	"case-studio/db"
	_ "case-studio/docs"
)

// Options 는 라우터 구성에 필요한 의존성이다.
type Options struct {
	Generation *services.GenerationService
	// ChatInlineErrors 가 true 이면 /api/chat 실패를 200 + "Error: ..." reply 로 돌려준다.
	ChatInlineErrors bool
	// StaticDir 은 브라우저 UI 번들 디렉터리다. 비어 있거나 없으면 정적 서빙을 하지 않는다.
	StaticDir string
}

func New(opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())
	r.Use(middleware.RequestLoggingMiddleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, dto.HealthResponseDTO{Status: "degraded", Mongo: "down"})
			return
		}
		c.JSON(http.StatusOK, dto.HealthResponseDTO{Status: "ok"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/api/chat", handlers.ChatHandler(opts.Generation, opts.ChatInlineErrors))
	r.POST("/generate-case-study", handlers.GenerateCaseStudyHandler(opts.Generation))
	r.POST("/generate-numericals-only", handlers.GenerateNumericalsHandler(opts.Generation))

	if dir := opts.StaticDir; dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			files := http.FileServer(http.Dir(dir))
			r.NoRoute(func(c *gin.Context) {
				if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
					c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "not_found"})
					return
				}
				files.ServeHTTP(c.Writer, c.Request)
			})
		}
	}

	return r
}

// Handler 는 gin 엔진을 CORS 처리기로 감싼다. allowedOrigins 가 비어 있으면 모든 origin 을 허용한다.
func Handler(engine http.Handler, allowedOrigins []string) http.Handler {
	if len(allowedOrigins) == 0 {
		return cors.AllowAll().Handler(engine)
	}
	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id", "X-Span-Id"},
	}).Handler(engine)
}
