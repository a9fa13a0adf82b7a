package handlers

import (
	"errors"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Subh211/weave-backend/internal/application"
	"github.com/Subh211/weave-backend/pkg/response"
	"github.com/Subh211/weave-backend/pkg/validation"
)

type PostHandler struct {
	Svc    *application.PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc *application.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

const maxCaptionLen = 2200

type createPostRequest struct {
	Caption string `json:"caption" binding:"required,max=2200"`
}

type commentRequest struct {
	Comment string `json:"comment" binding:"required,max=1000"`
}

// Create POST /api/posts
// Accepts either a JSON body {caption} or a multipart form with "caption"
// and an optional "image" file.
func (h *PostHandler) Create(c *gin.Context) {
	uid := c.GetString("userID")
	in := application.CreatePostInput{}

	if fh, err := c.FormFile("image"); err == nil {
		in.Caption = c.PostForm("caption")
		if in.Caption == "" {
			response.Error[any](c, http.StatusBadRequest, "missing caption", nil)
			return
		}
		// Same bound the JSON branch enforces through binding.
		if utf8.RuneCountInString(in.Caption) > maxCaptionLen {
			response.Error[any](c, http.StatusBadRequest, "caption too long", nil)
			return
		}
		f, err := fh.Open()
		if err != nil {
			response.Error[any](c, http.StatusBadRequest, "unreadable image file", nil)
			return
		}
		defer func() { _ = f.Close() }()
		in.Image = f
		in.Filename = fh.Filename
		in.ContentType = fh.Header.Get("Content-Type")
	} else {
		var req createPostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
			return
		}
		in.Caption = req.Caption
	}

	post, err := h.Svc.CreatePost(c.Request.Context(), uid, in)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error[any](c, http.StatusNotFound, "user not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("user_id", uid).Error("create post failed")
		response.Error[any](c, http.StatusInternalServerError, "create post failed", nil)
		return
	}
	response.Success(c, http.StatusCreated, post, "post created", nil)
}

// List GET /api/posts/:userId
func (h *PostHandler) List(c *gin.Context) {
	userID := c.Param("userId")
	posts, err := h.Svc.GetPosts(c.Request.Context(), userID)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", userID).Error("list posts failed")
		response.Error[any](c, http.StatusInternalServerError, "could not load posts", nil)
		return
	}
	if len(posts) == 0 {
		// No posts is success, not an error
		response.Success(c, http.StatusOK, posts, "no posts yet", nil)
		return
	}
	response.Success(c, http.StatusOK, posts, "posts", map[string]any{"count": len(posts)})
}

// GetOne GET /api/posts/:userId/one?postId=
func (h *PostHandler) GetOne(c *gin.Context) {
	userID := c.Param("userId")
	postID := c.Query("postId")
	if postID == "" {
		response.Error[any](c, http.StatusBadRequest, "missing postId", nil)
		return
	}

	post, err := h.Svc.GetOnePost(c.Request.Context(), userID, postID)
	if err != nil {
		if errors.Is(err, application.ErrPostNotFound) {
			response.Error[any](c, http.StatusNotFound, "post not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("user_id", userID).Error("get post failed")
		response.Error[any](c, http.StatusInternalServerError, "could not load post", nil)
		return
	}
	response.Success(c, http.StatusOK, post, "post found", nil)
}

// Like POST /api/posts/:userId/:postId/like
func (h *PostHandler) Like(c *gin.Context) {
	authorID := c.Param("userId")
	postID := c.Param("postId")
	likerID := c.GetString("userID")
	likerName := c.GetString("userName")

	liked, err := h.Svc.ToggleLike(c.Request.Context(), authorID, postID, likerID, likerName)
	if err != nil {
		if errors.Is(err, application.ErrPostNotFound) {
			response.Error[any](c, http.StatusNotFound, "post not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("post_id", postID).Error("toggle like failed")
		response.Error[any](c, http.StatusInternalServerError, "like failed", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"liked": liked}, "like updated", nil)
}

// Comment POST /api/posts/:userId/:postId/comments
func (h *PostHandler) Comment(c *gin.Context) {
	authorID := c.Param("userId")
	postID := c.Param("postId")

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	comment, err := h.Svc.AddComment(c.Request.Context(), authorID, postID, c.GetString("userID"), c.GetString("userName"), req.Comment)
	if err != nil {
		if errors.Is(err, application.ErrPostNotFound) {
			response.Error[any](c, http.StatusNotFound, "post not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("post_id", postID).Error("add comment failed")
		response.Error[any](c, http.StatusInternalServerError, "comment failed", nil)
		return
	}
	response.Success(c, http.StatusCreated, comment, "comment added", nil)
}
