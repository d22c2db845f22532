package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"campus-events/internal/model"
	"campus-events/internal/service"
	"campus-events/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/httprate"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	actorContextKey = "actor"
	tokenContextKey = "session_token"
)

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindUri(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindUri(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

// EventURI /events/:id
type EventURI struct {
	ID string `uri:"id" binding:"required,uuid"`
}

func bindEventID(c *gin.Context) (uuid.UUID, bool) {
	var uri EventURI
	if err := BindUri(c, &uri); err != nil {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(uri.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event id"})
		return uuid.Nil, false
	}
	return id, true
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

// SessionMiddleware 每個請求都重新解析 actor；解析失敗一律當作匿名
func SessionMiddleware(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.Request)
		actor, err := auth.CurrentActor(c.Request.Context(), token)
		if err != nil {
			logger.WithComponent("handler").Warn("resolve session failed", zap.Error(err))
			actor = model.AnonymousActor()
		}
		c.Set(actorContextKey, actor)
		c.Set(tokenContextKey, token)
		c.Next()
	}
}

// CurrentActor 取出 SessionMiddleware 放入的 actor
func CurrentActor(c *gin.Context) model.Actor {
	if v, ok := c.Get(actorContextKey); ok {
		if actor, ok := v.(model.Actor); ok {
			return actor
		}
	}
	return model.AnonymousActor()
}

func sessionToken(c *gin.Context) string {
	return c.GetString(tokenContextKey)
}

// RequestLogger 以 zap 記錄每個請求
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log := logger.WithComponent("http")
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			log.Error("request", fields...)
			return
		}
		log.Info("request", fields...)
	}
}

// RateLimitByIP 把 httprate 的 net/http middleware 接到 gin 路由上
func RateLimitByIP(requestLimit int, window time.Duration) gin.HandlerFunc {
	limiter := httprate.Limit(
		requestLimit,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"Too many requests. Please try again later."}`))
		}),
	)

	return func(c *gin.Context) {
		passed := false
		limiter(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			passed = true
			c.Request = r
			c.Next()
		})).ServeHTTP(c.Writer, c.Request)
		if !passed {
			c.Abort()
		}
	}
}
