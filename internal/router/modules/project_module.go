package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/devaldi/portfolio-api/internal/interface/http"
)

// ProjectModule wires portfolio project routes.
// Public: GET /api/projects, GET /api/projects/:id
// Protected: POST/PUT/DELETE plus POST /api/projects/:id/image
type ProjectModule struct {
	Handler *handlers.ProjectHandler
	Auth    gin.HandlerFunc
}

func NewProjectModule(h *handlers.ProjectHandler, auth gin.HandlerFunc) *ProjectModule {
	return &ProjectModule{Handler: h, Auth: auth}
}

func (m *ProjectModule) Register(rg *gin.RouterGroup) {
	rg.GET("/projects", m.Handler.List)
	rg.GET("/projects/:id", m.Handler.Get)

	auth := rg.Group("/")
	auth.Use(m.Auth)
	{
		auth.POST("/projects", m.Handler.Create)
		auth.PUT("/projects/:id", m.Handler.Update)
		auth.DELETE("/projects/:id", m.Handler.Delete)
		auth.POST("/projects/:id/image", m.Handler.UploadImage)
	}
}
