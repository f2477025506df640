package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-boundedqueue/internal/service"
	"github.com/huynhanx03/go-boundedqueue/pkg/common/http/handler"
)

// NewRouter builds the gin engine serving the queue API.
func NewRouter(mode string, svc *service.QueueService, logger *zap.Logger) *gin.Engine {
	gin.SetMode(mode)

	r := gin.New()
	r.Use(requestLogger(logger), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	h := NewQueueHandler(svc)
	v1 := r.Group("/v1/queue")
	{
		v1.GET("", handler.WrapNoBody(h.Snapshot))
		v1.GET("/peek", handler.WrapNoBody(h.Peek))
		v1.POST("/enqueue", handler.Wrap(h.Enqueue))
		v1.POST("/dequeue", handler.WrapNoBody(h.Dequeue))
	}

	return r
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
