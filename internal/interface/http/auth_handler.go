package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devaldi/portfolio-api/internal/application"
	"github.com/devaldi/portfolio-api/pkg/response"
	"github.com/devaldi/portfolio-api/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register POST /api/users
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, validation.ToMessage(err))
		return
	}
	res, err := h.Svc.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrUserExists) {
			response.Message(c, http.StatusBadRequest, "User already exists")
			return
		}
		h.Logger.WithError(err).Error("register failed")
		response.Internal(c)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// Login POST /api/users/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, validation.ToMessage(err))
		return
	}
	res, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Message(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, res)
}
