package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/devaldi/portfolio-api/internal/interface/http"
)

// BlogModule wires blog post and comment routes.
// Public: GET /api/blog, GET /api/blog/search, GET /api/blog/:id,
// GET /api/blog/:id/comments
// Protected: POST /api/blog, PUT/DELETE /api/blog/:id (author only),
// POST /api/blog/:id/comments
type BlogModule struct {
	Posts    *handlers.BlogHandler
	Comments *handlers.CommentHandler
	Auth     gin.HandlerFunc
}

func NewBlogModule(posts *handlers.BlogHandler, comments *handlers.CommentHandler, auth gin.HandlerFunc) *BlogModule {
	return &BlogModule{Posts: posts, Comments: comments, Auth: auth}
}

func (m *BlogModule) Register(rg *gin.RouterGroup) {
	rg.GET("/blog", m.Posts.List)
	rg.GET("/blog/search", m.Posts.Search)
	rg.GET("/blog/:id", m.Posts.Get)
	rg.GET("/blog/:id/comments", m.Comments.List)

	auth := rg.Group("/")
	auth.Use(m.Auth)
	{
		auth.POST("/blog", m.Posts.Create)
		auth.PUT("/blog/:id", m.Posts.Update)
		auth.DELETE("/blog/:id", m.Posts.Delete)
		auth.POST("/blog/:id/comments", m.Comments.Create)
	}
}
