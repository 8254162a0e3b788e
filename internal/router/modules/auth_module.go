package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/devaldi/portfolio-api/internal/interface/http"
)

// AuthModule wires account registration and login.
// Public: POST /api/users, POST /api/users/login
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/users", m.Handler.Register)
	rg.POST("/users/login", m.Handler.Login)
}
