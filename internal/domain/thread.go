package domain

import (
	"encoding/json"
	"time"

	"github.com/itchan-dev/forum-api/internal/errors"
)

const (
	EntityNewThread    = "NEW_THREAD"
	EntityAddedThread  = "ADDED_THREAD"
	EntityDetailThread = "DETAIL_THREAD"
)

type NewThread struct {
	title string
	body  string
	owner string
}

func NewNewThread(payload Payload) (NewThread, error) {
	v, err := payload.requireStrings(EntityNewThread, "title", "body", "owner")
	if err != nil {
		return NewThread{}, err
	}
	return NewThread{title: v[0], body: v[1], owner: v[2]}, nil
}

func (t NewThread) Title() string { return t.title }
func (t NewThread) Body() string  { return t.body }
func (t NewThread) Owner() string { return t.owner }

type AddedThread struct {
	id    string
	title string
	owner string
}

func NewAddedThread(payload Payload) (AddedThread, error) {
	v, err := payload.requireStrings(EntityAddedThread, "id", "title", "owner")
	if err != nil {
		return AddedThread{}, err
	}
	return AddedThread{id: v[0], title: v[1], owner: v[2]}, nil
}

func (t AddedThread) Id() string    { return t.id }
func (t AddedThread) Title() string { return t.title }
func (t AddedThread) Owner() string { return t.owner }

func (t AddedThread) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Id    string `json:"id"`
		Title string `json:"title"`
		Owner string `json:"owner"`
	}{t.id, t.title, t.owner})
}

// DetailThread is the read model of a thread with its comments.
type DetailThread struct {
	id       string
	title    string
	body     string
	date     time.Time
	username string
	owner    string
	comments []CommentDetail
}

func NewDetailThread(payload Payload) (DetailThread, error) {
	if err := payload.requireKeys(EntityDetailThread, "id", "title", "body", "date", "username", "owner"); err != nil {
		return DetailThread{}, err
	}
	if _, ok := payload["comments"]; !ok {
		return DetailThread{}, errors.Validation(EntityDetailThread, errors.NotContainNeededProperty)
	}

	v, err := payload.requireStrings(EntityDetailThread, "id", "title", "body", "username", "owner")
	if err != nil {
		return DetailThread{}, err
	}
	date, ok := payload["date"].(time.Time)
	if !ok {
		return DetailThread{}, errors.Validation(EntityDetailThread, errors.NotMeetDataTypeSpecification)
	}
	comments, ok := payload["comments"].([]CommentDetail)
	if !ok {
		return DetailThread{}, errors.Validation(EntityDetailThread, errors.NotMeetDataTypeSpecification)
	}
	if comments == nil {
		comments = []CommentDetail{}
	}

	return DetailThread{
		id:       v[0],
		title:    v[1],
		body:     v[2],
		username: v[3],
		owner:    v[4],
		date:     date,
		comments: comments,
	}, nil
}

func (t DetailThread) Id() string       { return t.id }
func (t DetailThread) Title() string    { return t.title }
func (t DetailThread) Body() string     { return t.body }
func (t DetailThread) Date() time.Time  { return t.date }
func (t DetailThread) Username() string { return t.username }
func (t DetailThread) Owner() string    { return t.owner }

// Comments returns a copy so callers cannot reorder the thread.
func (t DetailThread) Comments() []CommentDetail {
	out := make([]CommentDetail, len(t.comments))
	copy(out, t.comments)
	return out
}

func (t DetailThread) MarshalJSON() ([]byte, error) {
	comments := t.comments
	if comments == nil {
		comments = []CommentDetail{}
	}
	return json.Marshal(struct {
		Id       string          `json:"id"`
		Title    string          `json:"title"`
		Body     string          `json:"body"`
		Date     time.Time       `json:"date"`
		Username string          `json:"username"`
		Owner    string          `json:"owner"`
		Comments []CommentDetail `json:"comments"`
	}{t.id, t.title, t.body, t.date, t.username, t.owner, comments})
}
