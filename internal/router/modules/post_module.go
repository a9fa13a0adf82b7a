package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Subh211/weave-backend/internal/container"
	handlers "github.com/Subh211/weave-backend/internal/interface/http"
	"github.com/Subh211/weave-backend/internal/interface/middleware"
	"github.com/Subh211/weave-backend/pkg/helpers"
)

// PostModule registers post creation, reads, likes and comments.

type PostModule struct {
	Handler *handlers.PostHandler
	JWT     *helpers.JWTManager
}

func NewPostModule(h *handlers.PostHandler, jwt *helpers.JWTManager) *PostModule {
	return &PostModule{Handler: h, JWT: jwt}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	// Creating posts is noticeably cheaper to abuse than reading them
	createLimiter := middleware.RateLimit(container.GetRedis(), 20, time.Minute, middleware.KeyByUserID(), nil)
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/posts", createLimiter, m.Handler.Create)
		auth.GET("/posts/:userId", m.Handler.List)
		auth.GET("/posts/:userId/one", m.Handler.GetOne)
		auth.POST("/posts/:userId/:postId/like", m.Handler.Like)
		auth.POST("/posts/:userId/:postId/comments", m.Handler.Comment)
	}
}
