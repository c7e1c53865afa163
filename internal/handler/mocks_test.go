package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/forum-api/internal/domain"
	mw "github.com/itchan-dev/forum-api/internal/middleware"
)

// --- Service mocks ---

type MockAuthService struct {
	MockRegister func(ctx context.Context, payload domain.Payload) (domain.RegisteredUser, error)
	MockLogin    func(ctx context.Context, username, password string) (string, error)
}

func (m *MockAuthService) Register(ctx context.Context, payload domain.Payload) (domain.RegisteredUser, error) {
	if m.MockRegister != nil {
		return m.MockRegister(ctx, payload)
	}
	return domain.RegisteredUser{}, nil
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, error) {
	if m.MockLogin != nil {
		return m.MockLogin(ctx, username, password)
	}
	return "", nil
}

type MockThreadService struct {
	MockAdd func(ctx context.Context, payload domain.Payload) (domain.AddedThread, error)
	MockGet func(ctx context.Context, threadId string) (domain.DetailThread, error)
}

func (m *MockThreadService) Add(ctx context.Context, payload domain.Payload) (domain.AddedThread, error) {
	if m.MockAdd != nil {
		return m.MockAdd(ctx, payload)
	}
	return domain.AddedThread{}, nil
}

func (m *MockThreadService) Get(ctx context.Context, threadId string) (domain.DetailThread, error) {
	if m.MockGet != nil {
		return m.MockGet(ctx, threadId)
	}
	return domain.DetailThread{}, nil
}

type MockCommentService struct {
	MockAdd    func(ctx context.Context, payload domain.Payload) (domain.AddedComment, error)
	MockDelete func(ctx context.Context, payload domain.Payload) error
}

func (m *MockCommentService) Add(ctx context.Context, payload domain.Payload) (domain.AddedComment, error) {
	if m.MockAdd != nil {
		return m.MockAdd(ctx, payload)
	}
	return domain.AddedComment{}, nil
}

func (m *MockCommentService) Delete(ctx context.Context, payload domain.Payload) error {
	if m.MockDelete != nil {
		return m.MockDelete(ctx, payload)
	}
	return nil
}

type MockHealthChecker struct {
	PingFunc func(ctx context.Context) error
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

// --- Helpers ---

func newTestHandler() (*Handler, *MockAuthService, *MockThreadService, *MockCommentService) {
	auth := &MockAuthService{}
	thread := &MockThreadService{}
	comment := &MockCommentService{}
	return New(auth, thread, comment, &MockHealthChecker{}), auth, thread, comment
}

// newTestRouter mounts the handler on the production paths without the JWT middleware.
func newTestRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/users", h.Register)
	r.Post("/authentications", h.Login)
	r.Post("/threads", h.CreateThread)
	r.Get("/threads/{threadId}", h.GetThread)
	r.Post("/threads/{threadId}/comments", h.CreateComment)
	r.Delete("/threads/{threadId}/comments/{commentId}", h.DeleteComment)
	return r
}

func createRequest(t *testing.T, method, url string, body []byte) *http.Request {
	t.Helper()
	return httptest.NewRequest(method, url, bytes.NewBuffer(body))
}

func withUser(req *http.Request, id string) *http.Request {
	user := &mw.User{Id: id, Username: "dicoding"}
	return req.WithContext(context.WithValue(req.Context(), mw.UserClaimsKey, user))
}
