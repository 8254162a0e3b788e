package application

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/devaldi/portfolio-api/internal/domain/entity"
	"github.com/devaldi/portfolio-api/internal/domain/repository"
)

// BlogService owns the post lifecycle: public reads, authenticated create,
// owner-only update and delete with the comment cascade, plus comments and
// optional Elasticsearch search. The existence check always runs before the
// ownership check so a missing post answers 404, never 403.
type BlogService struct {
	Posts    repository.PostRepository
	Comments repository.CommentRepository
	ES       *elasticsearch.Client
	ESIndex  string
	Logger   *logrus.Logger
}

func NewBlogService(posts repository.PostRepository, comments repository.CommentRepository, es *elasticsearch.Client, esIndex string, logger *logrus.Logger) *BlogService {
	return &BlogService{Posts: posts, Comments: comments, ES: es, ESIndex: esIndex, Logger: logger}
}

func (s *BlogService) List(ctx context.Context) ([]entity.BlogPost, error) {
	return s.Posts.List(ctx)
}

// Get returns a post together with its comments, newest first.
func (s *BlogService) Get(ctx context.Context, id string) (*entity.BlogPost, []entity.Comment, error) {
	p, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	comments, err := s.Comments.ListByPost(ctx, p.ID)
	if err != nil {
		return nil, nil, err
	}
	return p, comments, nil
}

// Create stores a post owned by the acting account. The author is taken from
// the authenticated actor, never from the payload.
func (s *BlogService) Create(ctx context.Context, actorID, title, content string) (*entity.BlogPost, error) {
	p := &entity.BlogPost{Title: title, Content: content, AuthorID: actorID}
	if err := s.Posts.Create(ctx, p); err != nil {
		return nil, err
	}
	// re-read for the author username join
	p, err := s.Posts.GetByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	s.indexPost(ctx, p)
	return p, nil
}

type UpdatePostInput struct {
	Title   string
	Content string
}

// Update applies non-empty fields to a post the actor owns.
func (s *BlogService) Update(ctx context.Context, actorID, id string, in UpdatePostInput) (*entity.BlogPost, error) {
	p, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !OwnedBy(actorID, p.AuthorID) {
		return nil, ErrForbidden
	}
	if in.Title != "" {
		p.Title = in.Title
	}
	if in.Content != "" {
		p.Content = in.Content
	}
	if err := s.Posts.Update(ctx, p); err != nil {
		return nil, err
	}
	s.indexPost(ctx, p)
	return p, nil
}

// Delete removes a post the actor owns along with all of its comments.
func (s *BlogService) Delete(ctx context.Context, actorID, id string) error {
	p, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !OwnedBy(actorID, p.AuthorID) {
		return ErrForbidden
	}
	if err := s.Posts.DeleteWithComments(ctx, p.ID); err != nil {
		return err
	}
	s.removeFromIndex(ctx, p.ID)
	s.Logger.WithFields(logrus.Fields{"post_id": p.ID, "actor_id": actorID}).Info("blog post removed")
	return nil
}

// ListComments returns the comments of an existing post.
func (s *BlogService) ListComments(ctx context.Context, postID string) ([]entity.Comment, error) {
	if _, err := s.Posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.Comments.ListByPost(ctx, postID)
}

// AddComment attaches a comment to an existing post. Any authenticated
// account may comment; the author is recorded for attribution only.
func (s *BlogService) AddComment(ctx context.Context, actorID, postID, body string) (*entity.Comment, error) {
	if _, err := s.Posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	c := &entity.Comment{PostID: postID, Body: body, AuthorID: actorID}
	if err := s.Comments.Create(ctx, c); err != nil {
		return nil, err
	}
	return s.Comments.GetByID(ctx, c.ID)
}

// Search queries the Elasticsearch index over title and content. Returns an
// empty result set when search is not configured.
func (s *BlogService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "content"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

// indexPost mirrors a post into Elasticsearch. Indexing is best effort; a
// failed index never fails the write that triggered it.
func (s *BlogService) indexPost(ctx context.Context, p *entity.BlogPost) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	doc := map[string]any{
		"id":         p.ID,
		"title":      p.Title,
		"content":    p.Content,
		"author":     p.AuthorUsername,
		"created_at": p.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: p.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		s.Logger.WithError(err).WithField("post_id", p.ID).Warn("es index failed")
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		s.Logger.WithField("status", res.Status()).WithField("post_id", p.ID).Warn("es index response error")
	}
}

func (s *BlogService) removeFromIndex(ctx context.Context, id string) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		s.Logger.WithError(err).WithField("post_id", id).Warn("es delete failed")
		return
	}
	_ = res.Body.Close()
}
