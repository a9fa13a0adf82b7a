package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Subh211/weave-backend/internal/container"
	handlers "github.com/Subh211/weave-backend/internal/interface/http"
	"github.com/Subh211/weave-backend/internal/interface/middleware"
	"github.com/Subh211/weave-backend/pkg/helpers"
)

// FeedModule registers the feed endpoint. Feed construction scans the whole
// user base, so it gets its own tighter per-user rate limit.

type FeedModule struct {
	Handler *handlers.FeedHandler
	JWT     *helpers.JWTManager
}

func NewFeedModule(h *handlers.FeedHandler, jwt *helpers.JWTManager) *FeedModule {
	return &FeedModule{Handler: h, JWT: jwt}
}

func (m *FeedModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/feed", m.Handler.Get)
	}
}
