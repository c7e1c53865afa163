package domain

import (
	"context"
	"time"
)

// IdGenerator produces the unique suffix of an entity id ("thread-<suffix>").
type IdGenerator func() string

const (
	ThreadIdPrefix  = "thread-"
	CommentIdPrefix = "comment-"
	UserIdPrefix    = "user-"
)

// ThreadRecord is a stored thread joined with its author's username.
type ThreadRecord struct {
	Id       string
	Title    string
	Body     string
	Owner    string
	Username string
	Date     time.Time
}

// CommentRecord is a stored comment joined with its author's username.
type CommentRecord struct {
	Id        string
	ThreadId  string
	Owner     string
	Username  string
	Content   string
	Date      time.Time
	IsDeleted bool
}

// ThreadRepository is the storage capability the thread use cases depend on.
type ThreadRepository interface {
	AddThread(ctx context.Context, thread NewThread) (AddedThread, error)
	// GetThreadById fails with a not found error if the thread does not exist.
	GetThreadById(ctx context.Context, id string) (ThreadRecord, error)
	VerifyAvailableThread(ctx context.Context, id string) error
	// GetCommentsByThreadId returns comments ordered by creation time, oldest first.
	GetCommentsByThreadId(ctx context.Context, id string) ([]CommentRecord, error)
}

// CommentRepository is the storage capability the comment use cases depend on.
type CommentRepository interface {
	AddComment(ctx context.Context, comment NewComment) (AddedComment, error)
	VerifyCommentExist(ctx context.Context, id string) error
	// VerifyCommentOwner fails with a forbidden error if owner did not write the comment.
	VerifyCommentOwner(ctx context.Context, id, owner string) error
	// DeleteCommentById marks the comment deleted. Deleting twice is not an error.
	DeleteCommentById(ctx context.Context, id string) error
	GetCommentsByThreadId(ctx context.Context, threadId string) ([]CommentRecord, error)
	GetCommentById(ctx context.Context, id string) (CommentRecord, error)
}

// UserRepository is consumed by the authentication use cases.
type UserRepository interface {
	AddUser(ctx context.Context, user NewUser) (RegisteredUser, error)
	VerifyAvailableUsername(ctx context.Context, username string) error
	GetPasswordByUsername(ctx context.Context, username string) (string, error)
	GetIdByUsername(ctx context.Context, username string) (string, error)
}
