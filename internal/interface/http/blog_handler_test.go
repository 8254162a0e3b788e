package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devaldi/portfolio-api/internal/application"
	"github.com/devaldi/portfolio-api/internal/domain/entity"
	"github.com/devaldi/portfolio-api/internal/domain/repository"
	"github.com/devaldi/portfolio-api/internal/interface/middleware"
	"github.com/devaldi/portfolio-api/pkg/helpers"
	"github.com/devaldi/portfolio-api/pkg/validation"
)

// in-memory stores wired the same way the real router wires postgres

type fakeUsers struct {
	users map[string]entity.User
}

func (f *fakeUsers) Create(context.Context, *entity.User) error { return nil }

func (f *fakeUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUsers) GetByEmail(context.Context, string) (*entity.User, error) {
	return nil, repository.ErrNotFound
}

func (f *fakeUsers) GetByUsername(context.Context, string) (*entity.User, error) {
	return nil, repository.ErrNotFound
}

type fakeComments struct {
	mu       sync.Mutex
	comments map[string]entity.Comment
}

func (f *fakeComments) Create(_ context.Context, c *entity.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now()
	f.comments[c.ID] = *c
	return nil
}

func (f *fakeComments) GetByID(_ context.Context, id string) (*entity.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.comments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (f *fakeComments) ListByPost(_ context.Context, postID string) ([]entity.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.Comment, 0)
	for _, c := range f.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakePosts struct {
	mu       sync.Mutex
	posts    map[string]entity.BlogPost
	comments *fakeComments
}

func (f *fakePosts) Create(_ context.Context, p *entity.BlogPost) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	f.posts[p.ID] = *p
	return nil
}

func (f *fakePosts) GetByID(_ context.Context, id string) (*entity.BlogPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (f *fakePosts) List(_ context.Context) ([]entity.BlogPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.BlogPost, 0, len(f.posts))
	for _, p := range f.posts {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePosts) Update(_ context.Context, p *entity.BlogPost) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.posts[p.ID]; !ok {
		return repository.ErrNotFound
	}
	p.UpdatedAt = time.Now()
	f.posts[p.ID] = *p
	return nil
}

func (f *fakePosts) DeleteWithComments(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.posts[id]; !ok {
		return repository.ErrNotFound
	}
	f.comments.mu.Lock()
	for cid, c := range f.comments.comments {
		if c.PostID == id {
			delete(f.comments.comments, cid)
		}
	}
	f.comments.mu.Unlock()
	delete(f.posts, id)
	return nil
}

var (
	_ repository.UserRepository    = (*fakeUsers)(nil)
	_ repository.PostRepository    = (*fakePosts)(nil)
	_ repository.CommentRepository = (*fakeComments)(nil)
)

const (
	alice = "aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaaa"
	bob   = "bbbbbbbb-bbbb-4bbb-8bbb-bbbbbbbbbbbb"
)

type blogFixture struct {
	router   *gin.Engine
	codec    *helpers.TokenCodec
	posts    *fakePosts
	comments *fakeComments
}

func newBlogFixture(t *testing.T) *blogFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	users := &fakeUsers{users: map[string]entity.User{
		alice: {ID: alice, Username: "alice", Email: "alice@example.com"},
		bob:   {ID: bob, Username: "bob", Email: "bob@example.com"},
	}}
	comments := &fakeComments{comments: make(map[string]entity.Comment)}
	posts := &fakePosts{posts: make(map[string]entity.BlogPost), comments: comments}

	codec := helpers.NewTokenCodec("testsecret", time.Hour)
	svc := application.NewBlogService(posts, comments, nil, "", logger)
	blog := NewBlogHandler(svc, logger)
	cmts := NewCommentHandler(svc, logger)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/blog", blog.List)
	api.GET("/blog/:id", blog.Get)
	api.GET("/blog/:id/comments", cmts.List)

	authed := api.Group("")
	authed.Use(middleware.RequireAuth(users, codec))
	authed.POST("/blog", blog.Create)
	authed.PUT("/blog/:id", blog.Update)
	authed.DELETE("/blog/:id", blog.Delete)
	authed.POST("/blog/:id/comments", cmts.Create)

	return &blogFixture{router: r, codec: codec, posts: posts, comments: comments}
}

func (f *blogFixture) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *blogFixture) token(t *testing.T, userID string) string {
	t.Helper()
	token, _, err := f.codec.Issue(userID)
	require.NoError(t, err)
	return token
}

func (f *blogFixture) seedPost(t *testing.T, authorID string) entity.BlogPost {
	t.Helper()
	p := entity.BlogPost{Title: "seed title", Content: "seed content", AuthorID: authorID}
	require.NoError(t, f.posts.Create(context.Background(), &p))
	return p
}

func TestBlogRoutes_CreateWithoutToken(t *testing.T) {
	f := newBlogFixture(t)

	w := f.do(t, http.MethodPost, "/api/blog", "", gin.H{"title": "t", "content": "c"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Not authorized, no token"}`, w.Body.String())
}

func TestBlogRoutes_CreateWithForeignToken(t *testing.T) {
	f := newBlogFixture(t)
	other := helpers.NewTokenCodec("othersecret", time.Hour)
	token, _, err := other.Issue(alice)
	require.NoError(t, err)

	w := f.do(t, http.MethodPost, "/api/blog", token, gin.H{"title": "t", "content": "c"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Not authorized, token failed"}`, w.Body.String())
}

func TestBlogRoutes_CreateValidation(t *testing.T) {
	f := newBlogFixture(t)

	w := f.do(t, http.MethodPost, "/api/blog", f.token(t, alice), gin.H{"content": "c"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"title is required"}`, w.Body.String())
}

func TestBlogRoutes_CreateSetsAuthor(t *testing.T) {
	f := newBlogFixture(t)

	w := f.do(t, http.MethodPost, "/api/blog", f.token(t, alice), gin.H{"title": "hello", "content": "world"})
	require.Equal(t, http.StatusCreated, w.Code)

	var created entity.BlogPost
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, alice, created.AuthorID)
	assert.Equal(t, "hello", created.Title)
}

func TestBlogRoutes_UpdateByNonOwner(t *testing.T) {
	f := newBlogFixture(t)
	p := f.seedPost(t, alice)

	w := f.do(t, http.MethodPut, "/api/blog/"+p.ID, f.token(t, bob), gin.H{"title": "hijacked"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"message":"Not authorized to update this post"}`, w.Body.String())

	got, err := f.posts.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "seed title", got.Title)
}

func TestBlogRoutes_UpdateByOwner(t *testing.T) {
	f := newBlogFixture(t)
	p := f.seedPost(t, alice)

	w := f.do(t, http.MethodPut, "/api/blog/"+p.ID, f.token(t, alice), gin.H{"title": "renamed"})
	require.Equal(t, http.StatusOK, w.Code)

	var updated entity.BlogPost
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, "seed content", updated.Content)
	assert.Equal(t, alice, updated.AuthorID)
}

func TestBlogRoutes_UpdateMissingPost(t *testing.T) {
	f := newBlogFixture(t)

	w := f.do(t, http.MethodPut, "/api/blog/"+uuid.NewString(), f.token(t, bob), gin.H{"title": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Blog post not found"}`, w.Body.String())
}

func TestBlogRoutes_DeleteByNonOwner(t *testing.T) {
	f := newBlogFixture(t)
	p := f.seedPost(t, alice)

	w := f.do(t, http.MethodDelete, "/api/blog/"+p.ID, f.token(t, bob), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"message":"Not authorized to delete this post"}`, w.Body.String())

	_, err := f.posts.GetByID(context.Background(), p.ID)
	assert.NoError(t, err)
}

func TestBlogRoutes_DeleteCascadesComments(t *testing.T) {
	f := newBlogFixture(t)
	p := f.seedPost(t, alice)
	for i := 0; i < 3; i++ {
		w := f.do(t, http.MethodPost, "/api/blog/"+p.ID+"/comments", f.token(t, bob), gin.H{"body": "hi"})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := f.do(t, http.MethodDelete, "/api/blog/"+p.ID, f.token(t, alice), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Blog post removed"}`, w.Body.String())

	w = f.do(t, http.MethodGet, "/api/blog/"+p.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, f.comments.comments)
}

func TestBlogRoutes_DeleteMissingPost(t *testing.T) {
	f := newBlogFixture(t)

	w := f.do(t, http.MethodDelete, "/api/blog/"+uuid.NewString(), f.token(t, bob), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Blog post not found"}`, w.Body.String())
}

func TestBlogRoutes_CommentOnMissingPost(t *testing.T) {
	f := newBlogFixture(t)

	w := f.do(t, http.MethodPost, "/api/blog/"+uuid.NewString()+"/comments", f.token(t, bob), gin.H{"body": "hi"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Blog post not found"}`, w.Body.String())
}

func TestBlogRoutes_GetIncludesComments(t *testing.T) {
	f := newBlogFixture(t)
	p := f.seedPost(t, alice)
	w := f.do(t, http.MethodPost, "/api/blog/"+p.ID+"/comments", f.token(t, bob), gin.H{"body": "first"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = f.do(t, http.MethodGet, "/api/blog/"+p.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		entity.BlogPost
		Comments []entity.Comment `json:"comments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, p.ID, got.ID)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, "first", got.Comments[0].Body)
}
