package service

import (
	"context"

	"github.com/itchan-dev/forum-api/internal/domain"
	"github.com/itchan-dev/forum-api/internal/errors"
	"github.com/itchan-dev/forum-api/internal/logger"
)

type CommentService interface {
	Add(ctx context.Context, payload domain.Payload) (domain.AddedComment, error)
	Delete(ctx context.Context, payload domain.Payload) error
}

// Comment runs the AddComment and DeleteComment use cases.
type Comment struct {
	threads  domain.ThreadRepository
	comments domain.CommentRepository
}

func NewComment(threads domain.ThreadRepository, comments domain.CommentRepository) *Comment {
	return &Comment{threads: threads, comments: comments}
}

// Add stores a comment under an existing thread.
// The thread is checked first so that no comment is ever written for a missing thread.
func (c *Comment) Add(ctx context.Context, payload domain.Payload) (domain.AddedComment, error) {
	if threadId := payload.String("threadId"); threadId != "" {
		if err := c.threads.VerifyAvailableThread(ctx, threadId); err != nil {
			return domain.AddedComment{}, err
		}
	}

	newComment, err := domain.NewNewComment(payload)
	if err != nil {
		return domain.AddedComment{}, err
	}

	return c.comments.AddComment(ctx, newComment)
}

// Delete soft-deletes a comment owned by the caller. Steps run in order and stop at the
// first failure: existence, thread membership (when threadId is given), ownership, delete.
func (c *Comment) Delete(ctx context.Context, payload domain.Payload) error {
	req, err := domain.NewDeleteComment(payload)
	if err != nil {
		return err
	}

	if err := c.comments.VerifyCommentExist(ctx, req.CommentId()); err != nil {
		return err
	}

	if req.ThreadId() != "" {
		comment, err := c.comments.GetCommentById(ctx, req.CommentId())
		if err != nil {
			return err
		}
		if comment.ThreadId != req.ThreadId() {
			return errors.NotFound("comment not found in this thread")
		}
	}

	if err := c.comments.VerifyCommentOwner(ctx, req.CommentId(), req.Owner()); err != nil {
		if errors.IsForbidden(err) {
			logger.For("service.comment").Info("comment delete denied", "comment_id", req.CommentId(), "caller", req.Owner())
		}
		return err
	}

	return c.comments.DeleteCommentById(ctx, req.CommentId())
}
