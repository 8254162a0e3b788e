package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devaldi/portfolio-api/internal/application"
	"github.com/devaldi/portfolio-api/pkg/response"
	"github.com/devaldi/portfolio-api/pkg/validation"
)

type ContactHandler struct {
	Svc    *application.ContactService
	Logger *logrus.Logger
}

func NewContactHandler(svc *application.ContactService, logger *logrus.Logger) *ContactHandler {
	return &ContactHandler{Svc: svc, Logger: logger}
}

type sendMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// Send POST /api/contact (public)
func (h *ContactHandler) Send(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, validation.ToMessage(err))
		return
	}
	if _, err := h.Svc.Send(c.Request.Context(), req.Name, req.Email, req.Message); err != nil {
		h.Logger.WithError(err).Error("store contact message failed")
		response.Internal(c)
		return
	}
	response.Message(c, http.StatusCreated, "Message sent")
}

// List GET /api/contact (auth required)
func (h *ContactHandler) List(c *gin.Context) {
	messages, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list contact messages failed")
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, messages)
}
