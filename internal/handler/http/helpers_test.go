package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/internal/service"
	"github.com/MKhiriev/go-social-api/models"
	"github.com/stretchr/testify/require"
)

var errUnexpectedCall = errors.New("unexpected call")

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case; a nil field fails the
// call with errUnexpectedCall.
type mockAuthService struct {
	registerFn func(ctx context.Context, email, password string) (string, error)
	confirmFn  func(ctx context.Context, token string) error
	loginFn    func(ctx context.Context, email, password string) (string, error)
	resolveFn  func(ctx context.Context, token string) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, email, password string) (string, error) {
	if m.registerFn == nil {
		return "", errUnexpectedCall
	}
	return m.registerFn(ctx, email, password)
}

func (m *mockAuthService) Confirm(ctx context.Context, token string) error {
	if m.confirmFn == nil {
		return errUnexpectedCall
	}
	return m.confirmFn(ctx, token)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	if m.loginFn == nil {
		return "", errUnexpectedCall
	}
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) ResolveCurrentUser(ctx context.Context, token string) (models.User, error) {
	if m.resolveFn == nil {
		return models.User{}, errUnexpectedCall
	}
	return m.resolveFn(ctx, token)
}

// mockPostService implements service.PostService for unit tests.
type mockPostService struct {
	createPostFn    func(ctx context.Context, userID int64, body string) (models.Post, error)
	listPostsFn     func(ctx context.Context, sorting models.PostSorting) ([]models.PostWithLikes, error)
	getPostFn       func(ctx context.Context, postID int64) (models.PostWithComments, error)
	createCommentFn func(ctx context.Context, userID, postID int64, body string) (models.Comment, error)
	listCommentsFn  func(ctx context.Context, postID int64) ([]models.Comment, error)
	likePostFn      func(ctx context.Context, userID, postID int64) (models.Like, error)
}

func (m *mockPostService) CreatePost(ctx context.Context, userID int64, body string) (models.Post, error) {
	if m.createPostFn == nil {
		return models.Post{}, errUnexpectedCall
	}
	return m.createPostFn(ctx, userID, body)
}

func (m *mockPostService) ListPosts(ctx context.Context, sorting models.PostSorting) ([]models.PostWithLikes, error) {
	if m.listPostsFn == nil {
		return nil, errUnexpectedCall
	}
	return m.listPostsFn(ctx, sorting)
}

func (m *mockPostService) GetPostWithComments(ctx context.Context, postID int64) (models.PostWithComments, error) {
	if m.getPostFn == nil {
		return models.PostWithComments{}, errUnexpectedCall
	}
	return m.getPostFn(ctx, postID)
}

func (m *mockPostService) CreateComment(ctx context.Context, userID, postID int64, body string) (models.Comment, error) {
	if m.createCommentFn == nil {
		return models.Comment{}, errUnexpectedCall
	}
	return m.createCommentFn(ctx, userID, postID, body)
}

func (m *mockPostService) ListComments(ctx context.Context, postID int64) ([]models.Comment, error) {
	if m.listCommentsFn == nil {
		return nil, errUnexpectedCall
	}
	return m.listCommentsFn(ctx, postID)
}

func (m *mockPostService) LikePost(ctx context.Context, userID, postID int64) (models.Like, error) {
	if m.likePostFn == nil {
		return models.Like{}, errUnexpectedCall
	}
	return m.likePostFn(ctx, userID, postID)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// confirmedUser is the account every authenticated test request acts as.
var confirmedUser = models.User{ID: 7, Email: "a@b.com", Confirmed: true}

const validAccessToken = "valid-access-token"

// acceptingAuth resolves validAccessToken to confirmedUser and rejects every
// other token as invalid.
func acceptingAuth() *mockAuthService {
	return &mockAuthService{
		resolveFn: func(_ context.Context, token string) (models.User, error) {
			if token != validAccessToken {
				return models.User{}, service.ErrTokenInvalid
			}
			return confirmedUser, nil
		},
	}
}

// newTestHandler builds a Handler over the given service mocks with a nop
// logger. Nil services are replaced with mocks that fail every call.
func newTestHandler(t *testing.T, auth *mockAuthService, posts *mockPostService) *Handler {
	t.Helper()
	if auth == nil {
		auth = &mockAuthService{}
	}
	if posts == nil {
		posts = &mockPostService{}
	}
	svcs := &service.Services{
		AuthService:    auth,
		PostService:    posts,
		AppInfoService: &mockAppInfoService{version: "test"},
	}
	return NewHandler(svcs, 0, logger.Nop())
}

// serve sends one request through the full router.
func serve(t *testing.T, h *Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// decodeDetail reads the {"detail"} body of an error response.
func decodeDetail(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.DetailResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "body: %s", rr.Body.String())
	return resp.Detail
}
