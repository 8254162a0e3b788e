package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devaldi/portfolio-api/internal/application"
	"github.com/devaldi/portfolio-api/internal/domain/repository"
	"github.com/devaldi/portfolio-api/internal/interface/middleware"
	"github.com/devaldi/portfolio-api/pkg/response"
	"github.com/devaldi/portfolio-api/pkg/validation"
)

// CommentHandler serves the comment routes nested under a blog post.
// Comments are create and list only; removal happens solely through the
// post-delete cascade.
type CommentHandler struct {
	Svc    *application.BlogService
	Logger *logrus.Logger
}

func NewCommentHandler(svc *application.BlogService, logger *logrus.Logger) *CommentHandler {
	return &CommentHandler{Svc: svc, Logger: logger}
}

type createCommentRequest struct {
	Body string `json:"body" binding:"required"`
}

// List GET /api/blog/:id/comments
func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.Svc.ListComments(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Message(c, http.StatusNotFound, "Blog post not found")
			return
		}
		h.Logger.WithError(err).Error("list comments failed")
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// Create POST /api/blog/:id/comments (auth required)
func (h *CommentHandler) Create(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		response.Message(c, http.StatusUnauthorized, "Not authorized, no token")
		return
	}
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, validation.ToMessage(err))
		return
	}
	comment, err := h.Svc.AddComment(c.Request.Context(), actor.ID, c.Param("id"), req.Body)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Message(c, http.StatusNotFound, "Blog post not found")
			return
		}
		h.Logger.WithError(err).Error("create comment failed")
		response.Internal(c)
		return
	}
	c.JSON(http.StatusCreated, comment)
}
