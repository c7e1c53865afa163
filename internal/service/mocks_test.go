package service

import (
	"context"
	"sync"

	"github.com/itchan-dev/forum-api/internal/domain"
)

// --- Call tracing ---

// callLog records repository calls in order so tests can assert on sequencing.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) record(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, name)
}

func (l *callLog) Calls() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.calls))
	copy(out, l.calls)
	return out
}

func (l *callLog) Called(name string) bool {
	for _, c := range l.Calls() {
		if c == name {
			return true
		}
	}
	return false
}

// --- Mocks ---

// MockThreadRepository mocks domain.ThreadRepository.
type MockThreadRepository struct {
	log *callLog

	addThreadFunc             func(thread domain.NewThread) (domain.AddedThread, error)
	getThreadByIdFunc         func(id string) (domain.ThreadRecord, error)
	verifyAvailableThreadFunc func(id string) error
	getCommentsByThreadIdFunc func(id string) ([]domain.CommentRecord, error)
}

func (m *MockThreadRepository) AddThread(ctx context.Context, thread domain.NewThread) (domain.AddedThread, error) {
	m.log.record("AddThread")
	if m.addThreadFunc != nil {
		return m.addThreadFunc(thread)
	}
	return domain.NewAddedThread(domain.Payload{"id": "thread-1", "title": thread.Title(), "owner": thread.Owner()})
}

func (m *MockThreadRepository) GetThreadById(ctx context.Context, id string) (domain.ThreadRecord, error) {
	m.log.record("GetThreadById")
	if m.getThreadByIdFunc != nil {
		return m.getThreadByIdFunc(id)
	}
	return domain.ThreadRecord{Id: id}, nil
}

func (m *MockThreadRepository) VerifyAvailableThread(ctx context.Context, id string) error {
	m.log.record("VerifyAvailableThread")
	if m.verifyAvailableThreadFunc != nil {
		return m.verifyAvailableThreadFunc(id)
	}
	return nil
}

func (m *MockThreadRepository) GetCommentsByThreadId(ctx context.Context, id string) ([]domain.CommentRecord, error) {
	m.log.record("Thread.GetCommentsByThreadId")
	if m.getCommentsByThreadIdFunc != nil {
		return m.getCommentsByThreadIdFunc(id)
	}
	return nil, nil
}

// MockCommentRepository mocks domain.CommentRepository.
type MockCommentRepository struct {
	log *callLog

	addCommentFunc            func(comment domain.NewComment) (domain.AddedComment, error)
	verifyCommentExistFunc    func(id string) error
	verifyCommentOwnerFunc    func(id, owner string) error
	deleteCommentByIdFunc     func(id string) error
	getCommentsByThreadIdFunc func(threadId string) ([]domain.CommentRecord, error)
	getCommentByIdFunc        func(id string) (domain.CommentRecord, error)
}

func (m *MockCommentRepository) AddComment(ctx context.Context, comment domain.NewComment) (domain.AddedComment, error) {
	m.log.record("AddComment")
	if m.addCommentFunc != nil {
		return m.addCommentFunc(comment)
	}
	return domain.NewAddedComment(domain.Payload{"id": "comment-1", "content": comment.Content(), "owner": comment.Owner()})
}

func (m *MockCommentRepository) VerifyCommentExist(ctx context.Context, id string) error {
	m.log.record("VerifyCommentExist")
	if m.verifyCommentExistFunc != nil {
		return m.verifyCommentExistFunc(id)
	}
	return nil
}

func (m *MockCommentRepository) VerifyCommentOwner(ctx context.Context, id, owner string) error {
	m.log.record("VerifyCommentOwner")
	if m.verifyCommentOwnerFunc != nil {
		return m.verifyCommentOwnerFunc(id, owner)
	}
	return nil
}

func (m *MockCommentRepository) DeleteCommentById(ctx context.Context, id string) error {
	m.log.record("DeleteCommentById")
	if m.deleteCommentByIdFunc != nil {
		return m.deleteCommentByIdFunc(id)
	}
	return nil
}

func (m *MockCommentRepository) GetCommentsByThreadId(ctx context.Context, threadId string) ([]domain.CommentRecord, error) {
	m.log.record("GetCommentsByThreadId")
	if m.getCommentsByThreadIdFunc != nil {
		return m.getCommentsByThreadIdFunc(threadId)
	}
	return nil, nil
}

func (m *MockCommentRepository) GetCommentById(ctx context.Context, id string) (domain.CommentRecord, error) {
	m.log.record("GetCommentById")
	if m.getCommentByIdFunc != nil {
		return m.getCommentByIdFunc(id)
	}
	return domain.CommentRecord{Id: id}, nil
}

// MockUserRepository mocks domain.UserRepository.
type MockUserRepository struct {
	log *callLog

	addUserFunc                 func(user domain.NewUser) (domain.RegisteredUser, error)
	verifyAvailableUsernameFunc func(username string) error
	getPasswordByUsernameFunc   func(username string) (string, error)
	getIdByUsernameFunc         func(username string) (string, error)
}

func (m *MockUserRepository) AddUser(ctx context.Context, user domain.NewUser) (domain.RegisteredUser, error) {
	m.log.record("AddUser")
	if m.addUserFunc != nil {
		return m.addUserFunc(user)
	}
	return domain.NewRegisteredUser(domain.Payload{"id": "user-1", "username": user.Username(), "fullname": user.Fullname()})
}

func (m *MockUserRepository) VerifyAvailableUsername(ctx context.Context, username string) error {
	m.log.record("VerifyAvailableUsername")
	if m.verifyAvailableUsernameFunc != nil {
		return m.verifyAvailableUsernameFunc(username)
	}
	return nil
}

func (m *MockUserRepository) GetPasswordByUsername(ctx context.Context, username string) (string, error) {
	m.log.record("GetPasswordByUsername")
	if m.getPasswordByUsernameFunc != nil {
		return m.getPasswordByUsernameFunc(username)
	}
	return "", nil
}

func (m *MockUserRepository) GetIdByUsername(ctx context.Context, username string) (string, error) {
	m.log.record("GetIdByUsername")
	if m.getIdByUsernameFunc != nil {
		return m.getIdByUsernameFunc(username)
	}
	return "user-1", nil
}

// MockJwt mocks the Jwt interface.
type MockJwt struct {
	newTokenFunc func(userId, username string) (string, error)
}

func (m *MockJwt) NewToken(userId, username string) (string, error) {
	if m.newTokenFunc != nil {
		return m.newTokenFunc(userId, username)
	}
	return "token", nil
}

// --- Helpers ---

func newMocks() (*callLog, *MockThreadRepository, *MockCommentRepository) {
	log := &callLog{}
	return log, &MockThreadRepository{log: log}, &MockCommentRepository{log: log}
}
