package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Subh211/weave-backend/internal/container"
	handlers "github.com/Subh211/weave-backend/internal/interface/http"
	"github.com/Subh211/weave-backend/internal/interface/middleware"
	"github.com/Subh211/weave-backend/pkg/helpers"
)

// SavedModule registers the saved post snapshot routes.

type SavedModule struct {
	Handler *handlers.SavedPostHandler
	JWT     *helpers.JWTManager
}

func NewSavedModule(h *handlers.SavedPostHandler, jwt *helpers.JWTManager) *SavedModule {
	return &SavedModule{Handler: h, JWT: jwt}
}

func (m *SavedModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/saved", m.Handler.Save)
		auth.GET("/saved", m.Handler.List)
	}
}
