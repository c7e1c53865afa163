package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/forum-api/internal/domain"
	internal_errors "github.com/itchan-dev/forum-api/internal/errors"
)

// AddComment inserts the comment after locking its thread row, so the thread check
// and the insert see the same state.
func (s *Storage) AddComment(ctx context.Context, comment domain.NewComment) (domain.AddedComment, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var added domain.AddedComment
	err := WithTx(ctx, s.db, func(tx *sql.Tx) error {
		var err error
		added, err = s.addComment(ctx, tx, comment)
		return err
	})
	return added, err
}

func (s *Storage) addComment(ctx context.Context, q Querier, comment domain.NewComment) (domain.AddedComment, error) {
	var threadId string
	err := q.QueryRowContext(ctx, `SELECT id FROM threads WHERE id = $1 FOR SHARE`, comment.ThreadId()).Scan(&threadId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.AddedComment{}, internal_errors.NotFound("thread not found")
		}
		return domain.AddedComment{}, fmt.Errorf("failed to lock thread: %w", err)
	}

	id := domain.CommentIdPrefix + s.idGenerator()
	var content, owner string
	err = q.QueryRowContext(ctx, `
        INSERT INTO comments (id, content, thread_id, owner)
        VALUES ($1, $2, $3, $4)
        RETURNING id, content, owner
    `, id, comment.Content(), threadId, comment.Owner()).Scan(&id, &content, &owner)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.AddedComment{}, internal_errors.Invariant("owner not found")
		}
		return domain.AddedComment{}, fmt.Errorf("failed to insert comment: %w", err)
	}
	return domain.NewAddedComment(domain.Payload{"id": id, "content": content, "owner": owner})
}

func (s *Storage) VerifyCommentExist(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM comments WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check comment: %w", err)
	}
	if !exists {
		return internal_errors.NotFound("comment not found")
	}
	return nil
}

func (s *Storage) VerifyCommentOwner(ctx context.Context, id, owner string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var found string
	err := s.db.QueryRowContext(ctx, `SELECT id FROM comments WHERE id = $1 AND owner = $2`, id, owner).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.Forbidden("you are not the owner of this comment")
		}
		return fmt.Errorf("failed to check comment owner: %w", err)
	}
	return nil
}

// DeleteCommentById only flips is_deleted; the row and its content stay.
func (s *Storage) DeleteCommentById(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, `UPDATE comments SET is_deleted = true WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

func (s *Storage) GetCommentById(ctx context.Context, id string) (domain.CommentRecord, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row := s.db.QueryRowContext(ctx, `
        SELECT c.id, c.thread_id, c.owner, u.username, c.content, c.date, c.is_deleted
        FROM comments c
        JOIN users u ON u.id = c.owner
        WHERE c.id = $1
    `, id)
	rec, err := scanComment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.CommentRecord{}, internal_errors.NotFound("comment not found")
		}
		return domain.CommentRecord{}, fmt.Errorf("failed to fetch comment: %w", err)
	}
	return rec, nil
}
