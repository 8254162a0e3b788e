package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devaldi/portfolio-api/internal/application"
	"github.com/devaldi/portfolio-api/internal/domain/entity"
	"github.com/devaldi/portfolio-api/internal/domain/repository"
	"github.com/devaldi/portfolio-api/internal/interface/middleware"
	"github.com/devaldi/portfolio-api/pkg/response"
	"github.com/devaldi/portfolio-api/pkg/validation"
)

type BlogHandler struct {
	Svc    *application.BlogService
	Logger *logrus.Logger
}

func NewBlogHandler(svc *application.BlogService, logger *logrus.Logger) *BlogHandler {
	return &BlogHandler{Svc: svc, Logger: logger}
}

type createPostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type updatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type postWithComments struct {
	entity.BlogPost
	Comments []entity.Comment `json:"comments"`
}

// List GET /api/blog
func (h *BlogHandler) List(c *gin.Context) {
	posts, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list posts failed")
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// Get GET /api/blog/:id
func (h *BlogHandler) Get(c *gin.Context) {
	post, comments, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Message(c, http.StatusNotFound, "Blog post not found")
			return
		}
		h.Logger.WithError(err).Error("get post failed")
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, postWithComments{BlogPost: *post, Comments: comments})
}

// Search GET /api/blog/search?q=...&size=...
func (h *BlogHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Message(c, http.StatusBadRequest, "q is required")
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		h.Logger.WithError(err).Error("post search failed")
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, hits)
}

// Create POST /api/blog (auth required)
func (h *BlogHandler) Create(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		response.Message(c, http.StatusUnauthorized, "Not authorized, no token")
		return
	}
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, validation.ToMessage(err))
		return
	}
	post, err := h.Svc.Create(c.Request.Context(), actor.ID, req.Title, req.Content)
	if err != nil {
		h.Logger.WithError(err).Error("create post failed")
		response.Internal(c)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// Update PUT /api/blog/:id (author only)
func (h *BlogHandler) Update(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		response.Message(c, http.StatusUnauthorized, "Not authorized, no token")
		return
	}
	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, validation.ToMessage(err))
		return
	}
	post, err := h.Svc.Update(c.Request.Context(), actor.ID, c.Param("id"),
		application.UpdatePostInput{Title: req.Title, Content: req.Content})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			response.Message(c, http.StatusNotFound, "Blog post not found")
		case errors.Is(err, application.ErrForbidden):
			response.Message(c, http.StatusForbidden, "Not authorized to update this post")
		default:
			h.Logger.WithError(err).Error("update post failed")
			response.Internal(c)
		}
		return
	}
	c.JSON(http.StatusOK, post)
}

// Delete DELETE /api/blog/:id (author only; cascades comments)
func (h *BlogHandler) Delete(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		response.Message(c, http.StatusUnauthorized, "Not authorized, no token")
		return
	}
	err := h.Svc.Delete(c.Request.Context(), actor.ID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			response.Message(c, http.StatusNotFound, "Blog post not found")
		case errors.Is(err, application.ErrForbidden):
			response.Message(c, http.StatusForbidden, "Not authorized to delete this post")
		default:
			h.Logger.WithError(err).Error("delete post failed")
			response.Internal(c)
		}
		return
	}
	response.Message(c, http.StatusOK, "Blog post removed")
}
