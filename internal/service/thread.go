package service

import (
	"context"
	"fmt"

	"github.com/itchan-dev/forum-api/internal/domain"
)

type ThreadService interface {
	Add(ctx context.Context, payload domain.Payload) (domain.AddedThread, error)
	Get(ctx context.Context, threadId string) (domain.DetailThread, error)
}

// Thread runs the AddThread and GetThreadById use cases.
type Thread struct {
	threads  domain.ThreadRepository
	comments domain.CommentRepository
}

func NewThread(threads domain.ThreadRepository, comments domain.CommentRepository) *Thread {
	return &Thread{threads: threads, comments: comments}
}

// Add validates {title, body, owner} and stores a new thread.
// Any authenticated user may create a thread.
func (t *Thread) Add(ctx context.Context, payload domain.Payload) (domain.AddedThread, error) {
	newThread, err := domain.NewNewThread(payload)
	if err != nil {
		return domain.AddedThread{}, err
	}
	return t.threads.AddThread(ctx, newThread)
}

// Get builds the thread read model. Deleted comments stay in place with masked content.
func (t *Thread) Get(ctx context.Context, threadId string) (domain.DetailThread, error) {
	if err := t.threads.VerifyAvailableThread(ctx, threadId); err != nil {
		return domain.DetailThread{}, err
	}

	thread, err := t.threads.GetThreadById(ctx, threadId)
	if err != nil {
		return domain.DetailThread{}, err
	}

	records, err := t.comments.GetCommentsByThreadId(ctx, threadId)
	if err != nil {
		return domain.DetailThread{}, err
	}

	comments := make([]domain.CommentDetail, 0, len(records))
	for _, rec := range records {
		comments = append(comments, domain.NewCommentDetail(rec))
	}

	detail, err := domain.NewDetailThread(domain.Payload{
		"id":       thread.Id,
		"title":    thread.Title,
		"body":     thread.Body,
		"date":     thread.Date,
		"username": thread.Username,
		"owner":    thread.Owner,
		"comments": comments,
	})
	if err != nil {
		// rows come from storage, so a failed check is a server fault
		return domain.DetailThread{}, fmt.Errorf("build detail of %s: %v", threadId, err)
	}
	return detail, nil
}
