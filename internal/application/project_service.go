package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/devaldi/portfolio-api/internal/domain/entity"
	"github.com/devaldi/portfolio-api/internal/domain/repository"
	"github.com/devaldi/portfolio-api/pkg/helpers"
)

const projectListKey = "projects:all"
const projectListTTL = 5 * time.Minute

// ProjectService manages portfolio projects. The public list is served
// through a redis read cache invalidated on every mutation; images go to a
// GCS bucket. Both degrade to direct behavior when unconfigured.
type ProjectService struct {
	Repo      repository.ProjectRepository
	Redis     *redis.Client
	GCS       *storage.Client
	GCSBucket string
	Logger    *logrus.Logger
}

func NewProjectService(repo repository.ProjectRepository, rdb *redis.Client, gcs *storage.Client, gcsBucket string, logger *logrus.Logger) *ProjectService {
	return &ProjectService{Repo: repo, Redis: rdb, GCS: gcs, GCSBucket: gcsBucket, Logger: logger}
}

func (s *ProjectService) List(ctx context.Context) ([]entity.Project, error) {
	if s.Redis != nil {
		var cached []entity.Project
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, projectListKey, &cached); err == nil && ok {
			return cached, nil
		}
	}
	projects, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, projectListKey, projects, projectListTTL); err != nil {
			s.Logger.WithError(err).Warn("project list cache write failed")
		}
	}
	return projects, nil
}

func (s *ProjectService) Get(ctx context.Context, id string) (*entity.Project, error) {
	return s.Repo.GetByID(ctx, id)
}

type ProjectInput struct {
	Title       string
	Description string
	ImageURL    string
	RepoURL     string
	LiveURL     string
}

func (s *ProjectService) Create(ctx context.Context, in ProjectInput) (*entity.Project, error) {
	p := &entity.Project{
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		RepoURL:     in.RepoURL,
		LiveURL:     in.LiveURL,
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.invalidateList(ctx)
	return p, nil
}

// Update applies non-empty fields.
func (s *ProjectService) Update(ctx context.Context, id string, in ProjectInput) (*entity.Project, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Title != "" {
		p.Title = in.Title
	}
	if in.Description != "" {
		p.Description = in.Description
	}
	if in.ImageURL != "" {
		p.ImageURL = in.ImageURL
	}
	if in.RepoURL != "" {
		p.RepoURL = in.RepoURL
	}
	if in.LiveURL != "" {
		p.LiveURL = in.LiveURL
	}
	if err := s.Repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.invalidateList(ctx)
	return p, nil
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateList(ctx)
	return nil
}

// UploadImage stores an image in GCS and points the project's imageUrl at it.
func (s *ProjectService) UploadImage(ctx context.Context, id string, r io.Reader, filename, contentType string) (*entity.Project, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return nil, errors.New("gcs not configured")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("projects", p.ID, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return nil, err
	}
	p.ImageURL = url
	if err := s.Repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.invalidateList(ctx)
	return p, nil
}

func (s *ProjectService) invalidateList(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	if err := helpers.RedisDel(ctx, s.Redis, projectListKey); err != nil {
		s.Logger.WithError(err).Warn("project list cache invalidation failed")
	}
}
