package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Subh211/weave-backend/internal/container"
	handlers "github.com/Subh211/weave-backend/internal/interface/http"
	"github.com/Subh211/weave-backend/internal/interface/middleware"
	"github.com/Subh211/weave-backend/pkg/helpers"
)

// FriendModule registers the follow graph routes. All routes require a session.

type FriendModule struct {
	Handler *handlers.FriendHandler
	JWT     *helpers.JWTManager
}

func NewFriendModule(h *handlers.FriendHandler, jwt *helpers.JWTManager) *FriendModule {
	return &FriendModule{Handler: h, JWT: jwt}
}

func (m *FriendModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/friends/:friendId", m.Handler.Follow)
		auth.DELETE("/friends/:friendId", m.Handler.Unfollow)
		auth.GET("/friends", m.Handler.Graph)
		auth.GET("/notifications", m.Handler.Notifications)
	}
}
