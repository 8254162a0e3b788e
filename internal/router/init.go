package router

import (
	"github.com/devaldi/portfolio-api/internal/application"
	"github.com/devaldi/portfolio-api/internal/container"
	pginfra "github.com/devaldi/portfolio-api/internal/infrastructure/postgres"
	handlers "github.com/devaldi/portfolio-api/internal/interface/http"
	"github.com/devaldi/portfolio-api/internal/interface/middleware"
	"github.com/devaldi/portfolio-api/internal/router/modules"
)

// InitModules constructs every feature module from the container singletons
// and registers it with the router registry. Called once at startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	projects := pginfra.NewProjectRepository(pool)
	posts := pginfra.NewPostRepository(pool)
	comments := pginfra.NewCommentRepository(pool)
	contacts := pginfra.NewContactRepository(pool)

	requireAuth := middleware.RequireAuth(users, container.GetTokenCodec())

	authSvc := application.NewAuthService(users, container.GetTokenCodec(), logger)
	blogSvc := application.NewBlogService(posts, comments, container.GetES(), cfg.ESPostsIndex, logger)
	projectSvc := application.NewProjectService(projects, container.GetRedis(), container.GetGCS(), cfg.GCSBucket, logger)
	contactSvc := application.NewContactService(contacts, container.GetRabbitPub(), cfg.ContactInbox, logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewBlogModule(
		handlers.NewBlogHandler(blogSvc, logger),
		handlers.NewCommentHandler(blogSvc, logger),
		requireAuth,
	))
	r.Add(modules.NewProjectModule(handlers.NewProjectHandler(projectSvc, logger), requireAuth))
	r.Add(modules.NewContactModule(handlers.NewContactHandler(contactSvc, logger), requireAuth))
}
