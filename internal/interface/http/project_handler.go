package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devaldi/portfolio-api/internal/application"
	"github.com/devaldi/portfolio-api/internal/domain/repository"
	"github.com/devaldi/portfolio-api/pkg/response"
	"github.com/devaldi/portfolio-api/pkg/validation"
)

// ProjectHandler serves the portfolio project routes. Mutation requires
// authentication but no ownership: projects have no author field, any
// signed-in account manages them.
type ProjectHandler struct {
	Svc    *application.ProjectService
	Logger *logrus.Logger
}

func NewProjectHandler(svc *application.ProjectService, logger *logrus.Logger) *ProjectHandler {
	return &ProjectHandler{Svc: svc, Logger: logger}
}

type createProjectRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl" binding:"omitempty,url"`
	RepoURL     string `json:"repoUrl" binding:"omitempty,url"`
	LiveURL     string `json:"liveUrl" binding:"omitempty,url"`
}

type updateProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl" binding:"omitempty,url"`
	RepoURL     string `json:"repoUrl" binding:"omitempty,url"`
	LiveURL     string `json:"liveUrl" binding:"omitempty,url"`
}

// List GET /api/projects
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list projects failed")
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// Get GET /api/projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Message(c, http.StatusNotFound, "Project not found")
			return
		}
		h.Logger.WithError(err).Error("get project failed")
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, project)
}

// Create POST /api/projects (auth required)
func (h *ProjectHandler) Create(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, validation.ToMessage(err))
		return
	}
	project, err := h.Svc.Create(c.Request.Context(), application.ProjectInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		RepoURL:     req.RepoURL,
		LiveURL:     req.LiveURL,
	})
	if err != nil {
		h.Logger.WithError(err).Error("create project failed")
		response.Internal(c)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// Update PUT /api/projects/:id (auth required)
func (h *ProjectHandler) Update(c *gin.Context) {
	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, validation.ToMessage(err))
		return
	}
	project, err := h.Svc.Update(c.Request.Context(), c.Param("id"), application.ProjectInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		RepoURL:     req.RepoURL,
		LiveURL:     req.LiveURL,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Message(c, http.StatusNotFound, "Project not found")
			return
		}
		h.Logger.WithError(err).Error("update project failed")
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, project)
}

// Delete DELETE /api/projects/:id (auth required)
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Message(c, http.StatusNotFound, "Project not found")
			return
		}
		h.Logger.WithError(err).Error("delete project failed")
		response.Internal(c)
		return
	}
	response.Message(c, http.StatusOK, "Project removed")
}

// UploadImage POST /api/projects/:id/image (auth required, multipart)
func (h *ProjectHandler) UploadImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		response.Message(c, http.StatusBadRequest, "image file is required")
		return
	}
	defer func() { _ = file.Close() }()

	project, err := h.Svc.UploadImage(c.Request.Context(), c.Param("id"), file,
		header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Message(c, http.StatusNotFound, "Project not found")
			return
		}
		h.Logger.WithError(err).Error("project image upload failed")
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, project)
}
