package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/itchan-dev/forum-api/internal/domain"
	"github.com/itchan-dev/forum-api/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialIds() domain.IdGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%d", n)
	}
}

func setupStorage(t *testing.T) (*Storage, domain.RegisteredUser) {
	t.Helper()
	s := New(sequentialIds())
	user, err := domain.NewNewUser(domain.Payload{"username": "dicoding", "password": "hash", "fullname": "Dicoding"})
	require.NoError(t, err)
	registered, err := s.AddUser(context.Background(), user)
	require.NoError(t, err)
	return s, registered
}

func mustThread(t *testing.T, s *Storage, owner string) domain.AddedThread {
	t.Helper()
	nt, err := domain.NewNewThread(domain.Payload{"title": "t", "body": "b", "owner": owner})
	require.NoError(t, err)
	added, err := s.AddThread(context.Background(), nt)
	require.NoError(t, err)
	return added
}

func mustComment(t *testing.T, s *Storage, threadId, owner, content string) domain.AddedComment {
	t.Helper()
	nc, err := domain.NewNewComment(domain.Payload{"content": content, "owner": owner, "threadId": threadId})
	require.NoError(t, err)
	added, err := s.AddComment(context.Background(), nc)
	require.NoError(t, err)
	return added
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	s, user := setupStorage(t)

	assert.Equal(t, "user-1", user.Id())
	assert.Equal(t, "dicoding", user.Username())

	err := s.VerifyAvailableUsername(ctx, "dicoding")
	assert.Equal(t, 400, errors.StatusCode(err))
	assert.NoError(t, s.VerifyAvailableUsername(ctx, "someone_else"))

	password, err := s.GetPasswordByUsername(ctx, "dicoding")
	require.NoError(t, err)
	assert.Equal(t, "hash", password)

	id, err := s.GetIdByUsername(ctx, "dicoding")
	require.NoError(t, err)
	assert.Equal(t, user.Id(), id)

	_, err = s.GetIdByUsername(ctx, "ghost")
	assert.Equal(t, 400, errors.StatusCode(err))
	_, err = s.GetPasswordByUsername(ctx, "ghost")
	assert.Equal(t, 400, errors.StatusCode(err))
}

func TestThreads(t *testing.T) {
	ctx := context.Background()
	s, user := setupStorage(t)

	added := mustThread(t, s, user.Id())
	assert.Equal(t, "thread-2", added.Id())

	require.NoError(t, s.VerifyAvailableThread(ctx, added.Id()))
	assert.True(t, errors.IsNotFound(s.VerifyAvailableThread(ctx, "thread-xxx")))

	rec, err := s.GetThreadById(ctx, added.Id())
	require.NoError(t, err)
	assert.Equal(t, "dicoding", rec.Username)
	assert.Equal(t, user.Id(), rec.Owner)
	assert.False(t, rec.Date.IsZero())

	_, err = s.GetThreadById(ctx, "thread-xxx")
	assert.True(t, errors.IsNotFound(err))

	t.Run("Unknown owner", func(t *testing.T) {
		nt, err := domain.NewNewThread(domain.Payload{"title": "t", "body": "b", "owner": "user-ghost"})
		require.NoError(t, err)

		_, err = s.AddThread(ctx, nt)

		assert.Equal(t, 400, errors.StatusCode(err))
		assert.EqualError(t, err, "owner not found")
		assert.Len(t, s.threads, 1)
	})
}

func TestComments(t *testing.T) {
	ctx := context.Background()
	s, user := setupStorage(t)
	thread := mustThread(t, s, user.Id())

	t.Run("Ordered by date then insertion", func(t *testing.T) {
		fixed := time.Date(2021, 8, 8, 0, 0, 0, 0, time.UTC)
		s.now = func() time.Time { return fixed }
		defer func() { s.now = func() time.Time { return time.Now().UTC() } }()

		first := mustComment(t, s, thread.Id(), user.Id(), "first")
		second := mustComment(t, s, thread.Id(), user.Id(), "second")

		comments, err := s.GetCommentsByThreadId(ctx, thread.Id())
		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, first.Id(), comments[0].Id)
		assert.Equal(t, second.Id(), comments[1].Id)
		assert.Equal(t, "dicoding", comments[0].Username)
	})

	t.Run("Unknown thread", func(t *testing.T) {
		nc, err := domain.NewNewComment(domain.Payload{"content": "x", "owner": user.Id(), "threadId": "thread-xxx"})
		require.NoError(t, err)
		_, err = s.AddComment(ctx, nc)
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("Unknown owner", func(t *testing.T) {
		nc, err := domain.NewNewComment(domain.Payload{"content": "x", "owner": "user-ghost", "threadId": thread.Id()})
		require.NoError(t, err)

		_, err = s.AddComment(ctx, nc)

		assert.Equal(t, 400, errors.StatusCode(err))
		assert.EqualError(t, err, "owner not found")
	})

	t.Run("Ownership and soft delete", func(t *testing.T) {
		added := mustComment(t, s, thread.Id(), user.Id(), "to delete")

		require.NoError(t, s.VerifyCommentExist(ctx, added.Id()))
		assert.True(t, errors.IsNotFound(s.VerifyCommentExist(ctx, "comment-xxx")))
		require.NoError(t, s.VerifyCommentOwner(ctx, added.Id(), user.Id()))
		assert.True(t, errors.IsForbidden(s.VerifyCommentOwner(ctx, added.Id(), "user-other")))

		require.NoError(t, s.DeleteCommentById(ctx, added.Id()))
		require.NoError(t, s.DeleteCommentById(ctx, added.Id()), "delete is idempotent")

		rec, err := s.GetCommentById(ctx, added.Id())
		require.NoError(t, err)
		assert.True(t, rec.IsDeleted)
		assert.Equal(t, "to delete", rec.Content, "row is retained")
		assert.Equal(t, thread.Id(), rec.ThreadId)

		require.NoError(t, s.VerifyCommentExist(ctx, added.Id()), "deleted comments still exist")
	})

	t.Run("GetCommentById not found", func(t *testing.T) {
		_, err := s.GetCommentById(ctx, "comment-xxx")
		assert.True(t, errors.IsNotFound(err))
	})
}
