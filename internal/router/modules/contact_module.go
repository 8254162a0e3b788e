package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/devaldi/portfolio-api/internal/interface/http"
)

// ContactModule wires the contact form and inbox.
// Public: POST /api/contact
// Protected: GET /api/contact
type ContactModule struct {
	Handler *handlers.ContactHandler
	Auth    gin.HandlerFunc
}

func NewContactModule(h *handlers.ContactHandler, auth gin.HandlerFunc) *ContactModule {
	return &ContactModule{Handler: h, Auth: auth}
}

func (m *ContactModule) Register(rg *gin.RouterGroup) {
	rg.POST("/contact", m.Handler.Send)
	rg.GET("/contact", m.Auth, m.Handler.List)
}
