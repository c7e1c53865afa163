// Package memory keeps forum data in process memory. It backs the "memory" storage driver
// and end-to-end tests of the use cases.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/itchan-dev/forum-api/internal/domain"
	"github.com/itchan-dev/forum-api/internal/errors"
)

type userRow struct {
	id       string
	username string
	password string
	fullname string
}

type threadRow struct {
	id    string
	title string
	body  string
	owner string
	date  time.Time
}

type commentRow struct {
	seq       int
	id        string
	content   string
	date      time.Time
	threadId  string
	owner     string
	isDeleted bool
}

// Storage implements the thread, comment and user repositories.
type Storage struct {
	mu       sync.RWMutex
	users    map[string]*userRow
	threads  map[string]*threadRow
	comments map[string]*commentRow
	seq      int

	idGenerator domain.IdGenerator
	now         func() time.Time
}

func New(idGenerator domain.IdGenerator) *Storage {
	return &Storage{
		users:       make(map[string]*userRow),
		threads:     make(map[string]*threadRow),
		comments:    make(map[string]*commentRow),
		idGenerator: idGenerator,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Ping always succeeds; it lets the memory store serve readiness probes.
func (s *Storage) Ping(ctx context.Context) error {
	return nil
}

func (s *Storage) Cleanup() error {
	return nil
}

func (s *Storage) usernameOf(id string) string {
	if u, ok := s.users[id]; ok {
		return u.username
	}
	return ""
}

// --- users ---

func (s *Storage) AddUser(ctx context.Context, user domain.NewUser) (domain.RegisteredUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.username == user.Username() {
			return domain.RegisteredUser{}, errors.Invariant("username not available")
		}
	}
	row := &userRow{
		id:       domain.UserIdPrefix + s.idGenerator(),
		username: user.Username(),
		password: user.Password(),
		fullname: user.Fullname(),
	}
	s.users[row.id] = row
	return domain.NewRegisteredUser(domain.Payload{"id": row.id, "username": row.username, "fullname": row.fullname})
}

func (s *Storage) findUser(username string) *userRow {
	for _, u := range s.users {
		if u.username == username {
			return u
		}
	}
	return nil
}

func (s *Storage) VerifyAvailableUsername(ctx context.Context, username string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.findUser(username) != nil {
		return errors.Invariant("username not available")
	}
	return nil
}

func (s *Storage) GetPasswordByUsername(ctx context.Context, username string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u := s.findUser(username)
	if u == nil {
		return "", errors.Invariant("username not found")
	}
	return u.password, nil
}

func (s *Storage) GetIdByUsername(ctx context.Context, username string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u := s.findUser(username)
	if u == nil {
		return "", errors.Invariant("username not found")
	}
	return u.id, nil
}

// --- threads ---

func (s *Storage) AddThread(ctx context.Context, thread domain.NewThread) (domain.AddedThread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[thread.Owner()]; !ok {
		return domain.AddedThread{}, errors.Invariant("owner not found")
	}
	row := &threadRow{
		id:    domain.ThreadIdPrefix + s.idGenerator(),
		title: thread.Title(),
		body:  thread.Body(),
		owner: thread.Owner(),
		date:  s.now(),
	}
	s.threads[row.id] = row
	return domain.NewAddedThread(domain.Payload{"id": row.id, "title": row.title, "owner": row.owner})
}

func (s *Storage) GetThreadById(ctx context.Context, id string) (domain.ThreadRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.threads[id]
	if !ok {
		return domain.ThreadRecord{}, errors.NotFound("thread not found")
	}
	return domain.ThreadRecord{
		Id:       row.id,
		Title:    row.title,
		Body:     row.body,
		Owner:    row.owner,
		Username: s.usernameOf(row.owner),
		Date:     row.date,
	}, nil
}

func (s *Storage) VerifyAvailableThread(ctx context.Context, id string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.threads[id]; !ok {
		return errors.NotFound("thread not found")
	}
	return nil
}

// GetCommentsByThreadId serves both repositories; ordering is by date, then insertion.
func (s *Storage) GetCommentsByThreadId(ctx context.Context, threadId string) ([]domain.CommentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rows []*commentRow
	for _, c := range s.comments {
		if c.threadId == threadId {
			rows = append(rows, c)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].date.Equal(rows[j].date) {
			return rows[i].seq < rows[j].seq
		}
		return rows[i].date.Before(rows[j].date)
	})

	out := make([]domain.CommentRecord, 0, len(rows))
	for _, c := range rows {
		out = append(out, s.commentRecord(c))
	}
	return out, nil
}

// --- comments ---

func (s *Storage) commentRecord(c *commentRow) domain.CommentRecord {
	return domain.CommentRecord{
		Id:        c.id,
		ThreadId:  c.threadId,
		Owner:     c.owner,
		Username:  s.usernameOf(c.owner),
		Content:   c.content,
		Date:      c.date,
		IsDeleted: c.isDeleted,
	}
}

func (s *Storage) AddComment(ctx context.Context, comment domain.NewComment) (domain.AddedComment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.threads[comment.ThreadId()]; !ok {
		return domain.AddedComment{}, errors.NotFound("thread not found")
	}
	if _, ok := s.users[comment.Owner()]; !ok {
		return domain.AddedComment{}, errors.Invariant("owner not found")
	}
	s.seq++
	row := &commentRow{
		seq:      s.seq,
		id:       domain.CommentIdPrefix + s.idGenerator(),
		content:  comment.Content(),
		date:     s.now(),
		threadId: comment.ThreadId(),
		owner:    comment.Owner(),
	}
	s.comments[row.id] = row
	return domain.NewAddedComment(domain.Payload{"id": row.id, "content": row.content, "owner": row.owner})
}

func (s *Storage) VerifyCommentExist(ctx context.Context, id string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.comments[id]; !ok {
		return errors.NotFound("comment not found")
	}
	return nil
}

func (s *Storage) VerifyCommentOwner(ctx context.Context, id, owner string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.comments[id]
	if !ok || c.owner != owner {
		return errors.Forbidden("you are not the owner of this comment")
	}
	return nil
}

func (s *Storage) DeleteCommentById(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.comments[id]; ok {
		c.isDeleted = true
	}
	return nil
}

func (s *Storage) GetCommentById(ctx context.Context, id string) (domain.CommentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.comments[id]
	if !ok {
		return domain.CommentRecord{}, errors.NotFound("comment not found")
	}
	return s.commentRecord(c), nil
}

var (
	_ domain.ThreadRepository  = (*Storage)(nil)
	_ domain.CommentRepository = (*Storage)(nil)
	_ domain.UserRepository    = (*Storage)(nil)
)
