package router

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/creator-commerce/config"
	"github.com/oksasatya/creator-commerce/internal/container"
	"github.com/oksasatya/creator-commerce/pkg/helpers"
	"github.com/oksasatya/creator-commerce/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	validation.Init()
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Meta    map[string]any  `json:"meta"`
	Error   struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

type api struct {
	t      *testing.T
	engine *gin.Engine
	cookie *http.Cookie
}

func newAPI(t *testing.T) *api {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cfg := &config.Config{
		AppName:         "creator-commerce",
		JWTAccessSecret: "test-secret",
		AccessTTL:       time.Hour,
		ESProfilesIndex: "creator_profiles",
	}
	c := container.New(cfg, logger, container.Infra{})

	engine := gin.New()
	reg := NewRegistry(engine)
	InitModules(reg, c)
	reg.RegisterAll()
	return &api{t: t, engine: engine}
}

func (a *api) do(method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	a.t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(a.t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	return a.send(req)
}

func (a *api) send(req *http.Request) (*httptest.ResponseRecorder, envelope) {
	a.t.Helper()
	if a.cookie != nil {
		req.AddCookie(a.cookie)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	var env envelope
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	for _, ck := range w.Result().Cookies() {
		if ck.Name != helpers.AccessTokenCookie {
			continue
		}
		if ck.Value == "" {
			a.cookie = nil
		} else {
			a.cookie = ck
		}
	}
	return w, env
}

func TestAuthFlow(t *testing.T) {
	a := newAPI(t)

	w, env := a.do(http.MethodPost, "/api/auth/register", map[string]string{"name": "A", "email": "ada@example.com", "password": "pw"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation_failed", env.Error.Code)
	assert.Contains(t, env.Error.Details, "name")

	w, env = a.do(http.MethodPost, "/api/auth/register", map[string]string{"name": "Ada", "email": "ada@example.com", "password": "pw"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, env.Meta["access_token"])
	require.NotNil(t, a.cookie)

	w, _ = a.do(http.MethodPost, "/api/auth/register", map[string]string{"name": "Ada", "email": "ada@example.com", "password": "pw"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w, env = a.do(http.MethodGet, "/api/auth/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), "ada@example.com")

	w, _ = a.do(http.MethodPost, "/api/auth/login", map[string]string{"email": "ada@example.com", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, env = a.do(http.MethodPost, "/api/auth/login", map[string]string{"email": "not-an-email", "password": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Error.Details, "email")

	w, _ = a.do(http.MethodPost, "/api/auth/logout", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, a.cookie)
	w, env = a.do(http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, len(env.Data) == 0 || string(env.Data) == "null")
}

func TestPostLikesAndComments(t *testing.T) {
	a := newAPI(t)

	_, env := a.do(http.MethodPost, "/api/posts/post-1/like", map[string]bool{"liked": false})
	var state struct {
		Liked      bool `json:"liked"`
		LikesCount int  `json:"likesCount"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &state))
	assert.True(t, state.Liked)
	liked := state.LikesCount

	_, env = a.do(http.MethodPost, "/api/posts/post-1/like/flip", nil)
	require.NoError(t, json.Unmarshal(env.Data, &state))
	assert.False(t, state.Liked)
	assert.Equal(t, liked-1, state.LikesCount)

	w, env := a.do(http.MethodPost, "/api/posts/post-1/like", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_payload", env.Error.Code)

	w, _ = a.do(http.MethodGet, "/api/posts/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env = a.do(http.MethodGet, "/api/posts/post-1/comments/tree", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var roots []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &roots))
	assert.Len(t, roots, 2)

	w, _ = a.do(http.MethodPost, "/api/posts/post-1/comments", map[string]string{"content": "lovely", "parentCommentId": "c-3"})
	assert.Equal(t, http.StatusCreated, w.Code)
	_, env = a.do(http.MethodGet, "/api/posts/post-1/comments", nil)
	assert.EqualValues(t, 5, env.Meta["total"])

	w, _ = a.do(http.MethodPost, "/api/posts/post-2/comments", map[string]string{"content": "wrong thread", "parentCommentId": "c-3"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfilesFollowAndSearch(t *testing.T) {
	a := newAPI(t)

	_, env := a.do(http.MethodPost, "/api/profiles/creator-1/follow", nil)
	var follow struct {
		FollowersCount int `json:"followersCount"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &follow))
	after := follow.FollowersCount

	_, env = a.do(http.MethodDelete, "/api/profiles/creator-1/follow", nil)
	require.NoError(t, json.Unmarshal(env.Data, &follow))
	assert.Equal(t, after-1, follow.FollowersCount)

	w, env := a.do(http.MethodGet, "/api/profiles/search?q=maya", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), "creator-1")

	w, _ = a.do(http.MethodGet, "/api/profiles/search", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrdersRequireSignIn(t *testing.T) {
	a := newAPI(t)

	w, _ := a.do(http.MethodGet, "/api/orders", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = a.do(http.MethodPost, "/api/auth/register", map[string]string{"name": "Ada", "email": "ada@example.com", "password": "pw"})
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = a.do(http.MethodPost, "/api/orders", map[string]any{"items": []any{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env := a.do(http.MethodPost, "/api/orders", map[string]any{"items": []map[string]any{{"productId": "prod-1", "quantity": 2}}})
	require.Equal(t, http.StatusCreated, w.Code)
	var order struct {
		ID         string `json:"id"`
		TotalCents int64  `json:"totalCents"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &order))
	assert.Equal(t, int64(6800), order.TotalCents)

	w, _ = a.do(http.MethodGet, "/api/orders/"+order.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	_, env = a.do(http.MethodGet, "/api/orders", nil)
	assert.EqualValues(t, 1, env.Meta["total"])
}

func TestMessaging(t *testing.T) {
	a := newAPI(t)

	w, env := a.do(http.MethodPost, "/api/messages", map[string]string{"content": "   ", "receiverId": "creator-1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Error.Details, "content")

	w, _ = a.do(http.MethodPost, "/api/messages", map[string]string{"content": "hi", "receiverId": "creator-1"})
	assert.Equal(t, http.StatusCreated, w.Code)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="photo.png"`)
	h.Set("Content-Type", "image/png")
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, _ = part.Write([]byte("\x89PNG"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/messages/images", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w, env = a.send(req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "uploads_disabled", env.Error.Code)
}

func TestAnonymousCallerIsNotTheSessionUser(t *testing.T) {
	a := newAPI(t)

	w, _ := a.do(http.MethodPost, "/api/auth/register", map[string]string{"name": "Ada", "email": "ada@example.com", "password": "pw"})
	require.Equal(t, http.StatusCreated, w.Code)
	w, _ = a.do(http.MethodPost, "/api/messages", map[string]string{"content": "private note", "receiverId": "creator-1"})
	require.Equal(t, http.StatusCreated, w.Code)

	a.cookie = nil
	w, env := a.do(http.MethodGet, "/api/conversations", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, string(env.Data), "private note")

	_, env = a.do(http.MethodGet, "/api/conversations/creator-1/messages", nil)
	assert.NotContains(t, string(env.Data), "private note")

	_, env = a.do(http.MethodGet, "/api/auth/me", nil)
	assert.True(t, len(env.Data) == 0 || string(env.Data) == "null")

	w, _ = a.do(http.MethodPost, "/api/messages", map[string]string{"content": "hi", "receiverId": "creator-1"})
	require.Equal(t, http.StatusCreated, w.Code)
	w, _ = a.do(http.MethodPost, "/api/auth/login", map[string]string{"email": "ada@example.com", "password": "pw"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, a.cookie)
	_, env = a.do(http.MethodGet, "/api/conversations/creator-1/messages", nil)
	assert.Contains(t, string(env.Data), "private note")
	assert.NotContains(t, string(env.Data), `"hi"`)
}

func TestHealthz(t *testing.T) {
	a := newAPI(t)
	w, env := a.do(http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"store":"ok"}`, string(env.Data))
}
