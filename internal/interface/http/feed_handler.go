package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Subh211/weave-backend/internal/application"
	"github.com/Subh211/weave-backend/pkg/response"
)

type FeedHandler struct {
	Svc    *application.FeedService
	Logger *logrus.Logger
}

func NewFeedHandler(svc *application.FeedService, logger *logrus.Logger) *FeedHandler {
	return &FeedHandler{Svc: svc, Logger: logger}
}

// Get GET /api/feed
// The requester comes from the session, never from the request body.
func (h *FeedHandler) Get(c *gin.Context) {
	uid := c.GetString("userID")

	items, err := h.Svc.BuildFeed(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, application.ErrMissingRequester) {
			response.Error[any](c, http.StatusBadRequest, "missing requester id", nil)
			return
		}
		h.Logger.WithError(err).WithField("user_id", uid).Error("feed build failed")
		response.Error[any](c, http.StatusInternalServerError, "could not build feed", nil)
		return
	}
	response.Success(c, http.StatusOK, items, "feed", map[string]any{"count": len(items)})
}
