package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/devaldi/portfolio-api/internal/domain/entity"
	"github.com/devaldi/portfolio-api/internal/domain/repository"
	"github.com/devaldi/portfolio-api/pkg/helpers"
	"github.com/devaldi/portfolio-api/pkg/mailer"
)

// ContactService stores contact-form submissions and, when a publisher is
// configured, enqueues a notification email to the site owner.
type ContactService struct {
	Repo   repository.ContactRepository
	Pub    *helpers.RabbitPublisher
	Inbox  string
	Logger *logrus.Logger
}

func NewContactService(repo repository.ContactRepository, pub *helpers.RabbitPublisher, inbox string, logger *logrus.Logger) *ContactService {
	return &ContactService{Repo: repo, Pub: pub, Inbox: inbox, Logger: logger}
}

func (s *ContactService) Send(ctx context.Context, name, email, message string) (*entity.ContactMessage, error) {
	m := &entity.ContactMessage{Name: name, Email: email, Message: message}
	if err := s.Repo.Create(ctx, m); err != nil {
		return nil, err
	}
	if s.Pub != nil && s.Inbox != "" {
		job := mailer.EmailJob{
			To:      s.Inbox,
			Subject: "New contact message from " + name,
			Text:    "From: " + name + " <" + email + ">\n\n" + message,
		}
		if err := s.Pub.PublishJSON(ctx, job); err != nil {
			// notification only; the stored message is the source of truth
			s.Logger.WithError(err).Warn("contact notification enqueue failed")
		}
	}
	return m, nil
}

func (s *ContactService) List(ctx context.Context) ([]entity.ContactMessage, error) {
	return s.Repo.List(ctx)
}
