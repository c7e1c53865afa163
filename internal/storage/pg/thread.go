package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/itchan-dev/forum-api/internal/domain"
	internal_errors "github.com/itchan-dev/forum-api/internal/errors"
)

func (s *Storage) AddThread(ctx context.Context, thread domain.NewThread) (domain.AddedThread, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	id := domain.ThreadIdPrefix + s.idGenerator()
	var title, owner string
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO threads (id, title, body, owner)
        VALUES ($1, $2, $3, $4)
        RETURNING id, title, owner
    `, id, thread.Title(), thread.Body(), thread.Owner()).Scan(&id, &title, &owner)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.AddedThread{}, internal_errors.Invariant("owner not found")
		}
		return domain.AddedThread{}, fmt.Errorf("failed to insert thread: %w", err)
	}
	return domain.NewAddedThread(domain.Payload{"id": id, "title": title, "owner": owner})
}

func (s *Storage) GetThreadById(ctx context.Context, id string) (domain.ThreadRecord, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var rec domain.ThreadRecord
	err := s.db.QueryRowContext(ctx, `
        SELECT t.id, t.title, t.body, t.owner, u.username, t.date
        FROM threads t
        JOIN users u ON u.id = t.owner
        WHERE t.id = $1
    `, id).Scan(&rec.Id, &rec.Title, &rec.Body, &rec.Owner, &rec.Username, &rec.Date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ThreadRecord{}, internal_errors.NotFound("thread not found")
		}
		return domain.ThreadRecord{}, fmt.Errorf("failed to fetch thread: %w", err)
	}
	rec.Date = rec.Date.UTC()
	return rec, nil
}

func (s *Storage) VerifyAvailableThread(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM threads WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check thread: %w", err)
	}
	if !exists {
		return internal_errors.NotFound("thread not found")
	}
	return nil
}

// GetCommentsByThreadId is shared by the thread and comment repositories.
// Rows are joined with users for the author name, oldest first. Equal dates keep insertion order.
func (s *Storage) GetCommentsByThreadId(ctx context.Context, threadId string) ([]domain.CommentRecord, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
        SELECT c.id, c.thread_id, c.owner, u.username, c.content, c.date, c.is_deleted
        FROM comments c
        JOIN users u ON u.id = c.owner
        WHERE c.thread_id = $1
        ORDER BY c.date ASC, c.seq ASC
    `, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}
	defer rows.Close()

	comments := []domain.CommentRecord{}
	for rows.Next() {
		rec, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return comments, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanComment(row scanner) (domain.CommentRecord, error) {
	var rec domain.CommentRecord
	var date time.Time
	if err := row.Scan(&rec.Id, &rec.ThreadId, &rec.Owner, &rec.Username, &rec.Content, &date, &rec.IsDeleted); err != nil {
		return domain.CommentRecord{}, err
	}
	rec.Date = date.UTC()
	return rec, nil
}
