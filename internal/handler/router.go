package handler

import (
	"time"

	"campus-events/internal/media"
	"campus-events/internal/metrics"
	"campus-events/internal/service"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	EventService  service.EventService
	AdminService  service.AdminService
	ReviewService service.ReviewService
	AuthService   service.AuthService
	MediaStore    media.Store
	// MediaDir 非空時以 /media 提供已上傳檔案
	MediaDir string
	// SubmitPerMinute 每個 IP 每分鐘可送出的活動數，0 表示不限
	SubmitPerMinute int
}

// NewRouter 組裝所有路由
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(), metrics.GinMiddleware(), SessionMiddleware(deps.AuthService))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})
	router.GET("/metrics", metrics.Handler())

	if deps.MediaDir != "" {
		router.Static("/media", deps.MediaDir)
	}

	var submitLimit gin.HandlerFunc
	if deps.SubmitPerMinute > 0 {
		submitLimit = RateLimitByIP(deps.SubmitPerMinute, time.Minute)
	}

	NewEventHandler(deps.EventService, submitLimit).RegisterRoutes(router)
	NewAdminHandler(deps.AdminService, deps.ReviewService).RegisterRoutes(router)
	NewAuthHandler(deps.AuthService).RegisterRoutes(router)
	if deps.MediaStore != nil {
		NewMediaHandler(deps.MediaStore).RegisterRoutes(router)
	}

	return router
}
