package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Subh211/weave-backend/internal/application"
	"github.com/Subh211/weave-backend/pkg/response"
)

type FriendHandler struct {
	Svc    *application.FriendService
	Logger *logrus.Logger
}

func NewFriendHandler(svc *application.FriendService, logger *logrus.Logger) *FriendHandler {
	return &FriendHandler{Svc: svc, Logger: logger}
}

// Follow POST /api/friends/:friendId
func (h *FriendHandler) Follow(c *gin.Context) {
	uid := c.GetString("userID")
	friendID := c.Param("friendId")

	graph, err := h.Svc.Follow(c.Request.Context(), uid, friendID)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrSelfFollow):
			response.Error[any](c, http.StatusBadRequest, "cannot follow yourself", nil)
		case errors.Is(err, application.ErrAlreadyFollowing):
			response.Error[any](c, http.StatusConflict, "already following", nil)
		case errors.Is(err, application.ErrUserNotFound):
			response.Error[any](c, http.StatusNotFound, "user not found", nil)
		default:
			h.Logger.WithError(err).WithField("user_id", uid).Error("follow failed")
			response.Error[any](c, http.StatusInternalServerError, "follow failed", nil)
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"following": len(graph.Following)}, "now following", nil)
}

// Unfollow DELETE /api/friends/:friendId
func (h *FriendHandler) Unfollow(c *gin.Context) {
	uid := c.GetString("userID")
	friendID := c.Param("friendId")

	if err := h.Svc.Unfollow(c.Request.Context(), uid, friendID); err != nil {
		h.Logger.WithError(err).WithField("user_id", uid).Error("unfollow failed")
		response.Error[any](c, http.StatusInternalServerError, "unfollow failed", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"unfollowed": true}, "no longer following", nil)
}

// Graph GET /api/friends
func (h *FriendHandler) Graph(c *gin.Context) {
	uid := c.GetString("userID")
	g, err := h.Svc.Graph(c.Request.Context(), uid)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", uid).Error("load friend graph failed")
		response.Error[any](c, http.StatusInternalServerError, "could not load friends", nil)
		return
	}
	response.Success(c, http.StatusOK, g, "friend graph", map[string]any{
		"following": len(g.Following),
		"followers": len(g.Followers),
	})
}

// Notifications GET /api/notifications
func (h *FriendHandler) Notifications(c *gin.Context) {
	uid := c.GetString("userID")
	entries, err := h.Svc.ListNotifications(c.Request.Context(), uid)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", uid).Error("load notifications failed")
		response.Error[any](c, http.StatusInternalServerError, "could not load notifications", nil)
		return
	}
	response.Success(c, http.StatusOK, entries, "notifications", map[string]any{"count": len(entries)})
}
