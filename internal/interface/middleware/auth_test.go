package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devaldi/portfolio-api/internal/domain/entity"
	"github.com/devaldi/portfolio-api/internal/domain/repository"
	"github.com/devaldi/portfolio-api/pkg/helpers"
)

type stubUsers struct {
	users map[string]entity.User
}

func (s *stubUsers) Create(context.Context, *entity.User) error { return nil }

func (s *stubUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (s *stubUsers) GetByEmail(context.Context, string) (*entity.User, error) {
	return nil, repository.ErrNotFound
}

func (s *stubUsers) GetByUsername(context.Context, string) (*entity.User, error) {
	return nil, repository.ErrNotFound
}

var _ repository.UserRepository = (*stubUsers)(nil)

const knownUserID = "11111111-1111-4111-8111-111111111111"

func newAuthRouter(codec *helpers.TokenCodec) *gin.Engine {
	gin.SetMode(gin.TestMode)
	users := &stubUsers{users: map[string]entity.User{
		knownUserID: {ID: knownUserID, Username: "devaldi", Email: "dev@example.com", Password: "$2a$10$secret"},
	}}
	r := gin.New()
	r.GET("/protected", RequireAuth(users, codec), func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "no auth user in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": u.ID, "username": u.Username})
	})
	return r
}

func doGet(r *gin.Engine, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	codec := helpers.NewTokenCodec("testsecret", time.Hour)
	w := doGet(newAuthRouter(codec), "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Not authorized, no token"}`, w.Body.String())
}

func TestRequireAuth_HeaderWithoutBearerScheme(t *testing.T) {
	codec := helpers.NewTokenCodec("testsecret", time.Hour)
	token, _, err := codec.Issue(knownUserID)
	require.NoError(t, err)

	for _, header := range []string{"Basic " + token, token, "Bearer"} {
		w := doGet(newAuthRouter(codec), header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		assert.JSONEq(t, `{"message":"Not authorized, no token"}`, w.Body.String())
	}
}

func TestRequireAuth_BadToken(t *testing.T) {
	codec := helpers.NewTokenCodec("testsecret", time.Hour)
	r := newAuthRouter(codec)

	other := helpers.NewTokenCodec("othersecret", time.Hour)
	wrongSecret, _, err := other.Issue(knownUserID)
	require.NoError(t, err)

	expiredCodec := helpers.NewTokenCodec("testsecret", -time.Hour)
	expired, _, err := expiredCodec.Issue(knownUserID)
	require.NoError(t, err)

	for _, token := range []string{"garbage", wrongSecret, expired} {
		w := doGet(r, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"message":"Not authorized, token failed"}`, w.Body.String())
	}
}

func TestRequireAuth_UnknownSubject(t *testing.T) {
	codec := helpers.NewTokenCodec("testsecret", time.Hour)
	token, _, err := codec.Issue("22222222-2222-4222-8222-222222222222")
	require.NoError(t, err)

	w := doGet(newAuthRouter(codec), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Not authorized, token failed"}`, w.Body.String())
}

func TestRequireAuth_ValidTokenResolvesUser(t *testing.T) {
	codec := helpers.NewTokenCodec("testsecret", time.Hour)
	token, _, err := codec.Issue(knownUserID)
	require.NoError(t, err)

	w := doGet(newAuthRouter(codec), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"`+knownUserID+`","username":"devaldi"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "$2a$")
}

func TestRequireAuth_SchemeIsCaseInsensitive(t *testing.T) {
	codec := helpers.NewTokenCodec("testsecret", time.Hour)
	token, _, err := codec.Issue(knownUserID)
	require.NoError(t, err)

	w := doGet(newAuthRouter(codec), "bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}
