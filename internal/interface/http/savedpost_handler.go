package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Subh211/weave-backend/internal/application"
	"github.com/Subh211/weave-backend/pkg/response"
	"github.com/Subh211/weave-backend/pkg/validation"
)

type SavedPostHandler struct {
	Svc    *application.SavedPostService
	Logger *logrus.Logger
}

func NewSavedPostHandler(svc *application.SavedPostService, logger *logrus.Logger) *SavedPostHandler {
	return &SavedPostHandler{Svc: svc, Logger: logger}
}

type savePostRequest struct {
	OwnerID string `json:"ownerId" binding:"required,uuid"`
	PostID  string `json:"postId" binding:"required,uuid"`
}

// Save POST /api/saved
func (h *SavedPostHandler) Save(c *gin.Context) {
	var req savePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	uid := c.GetString("userID")
	saved, err := h.Svc.SavePost(c.Request.Context(), uid, req.OwnerID, req.PostID)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrUserNotFound):
			response.Error[any](c, http.StatusNotFound, "user not found", nil)
		case errors.Is(err, application.ErrPostNotFound):
			response.Error[any](c, http.StatusNotFound, "post not found", nil)
		case errors.Is(err, application.ErrAlreadySaved):
			response.Error[any](c, http.StatusConflict, "post already saved", nil)
		default:
			h.Logger.WithError(err).WithField("user_id", uid).Error("save post failed")
			response.Error[any](c, http.StatusInternalServerError, "save failed", nil)
		}
		return
	}
	response.Success(c, http.StatusCreated, saved, "post saved", nil)
}

// List GET /api/saved
func (h *SavedPostHandler) List(c *gin.Context) {
	uid := c.GetString("userID")
	saved, err := h.Svc.ListSaved(c.Request.Context(), uid)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", uid).Error("list saved posts failed")
		response.Error[any](c, http.StatusInternalServerError, "could not load saved posts", nil)
		return
	}
	response.Success(c, http.StatusOK, saved, "saved posts", map[string]any{"count": len(saved)})
}
