package domain

import (
	"encoding/json"
	"time"
)

const (
	EntityNewComment    = "NEW_COMMENT"
	EntityAddedComment  = "ADDED_COMMENT"
	EntityDeleteComment = "DELETE_COMMENT"

	// DeletedCommentContent replaces the text of soft-deleted comments in read models.
	DeletedCommentContent = "**komentar telah dihapus**"
)

type NewComment struct {
	content  string
	owner    string
	threadId string
}

func NewNewComment(payload Payload) (NewComment, error) {
	v, err := payload.requireStrings(EntityNewComment, "content", "owner", "threadId")
	if err != nil {
		return NewComment{}, err
	}
	return NewComment{content: v[0], owner: v[1], threadId: v[2]}, nil
}

func (c NewComment) Content() string  { return c.content }
func (c NewComment) Owner() string    { return c.owner }
func (c NewComment) ThreadId() string { return c.threadId }

type AddedComment struct {
	id      string
	content string
	owner   string
}

func NewAddedComment(payload Payload) (AddedComment, error) {
	v, err := payload.requireStrings(EntityAddedComment, "id", "content", "owner")
	if err != nil {
		return AddedComment{}, err
	}
	return AddedComment{id: v[0], content: v[1], owner: v[2]}, nil
}

func (c AddedComment) Id() string      { return c.id }
func (c AddedComment) Content() string { return c.content }
func (c AddedComment) Owner() string   { return c.owner }

func (c AddedComment) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Id      string `json:"id"`
		Content string `json:"content"`
		Owner   string `json:"owner"`
	}{c.id, c.content, c.owner})
}

// DeleteComment identifies the comment a caller wants to remove.
// ThreadId is optional; when set the comment must belong to that thread.
type DeleteComment struct {
	commentId string
	owner     string
	threadId  string
}

func NewDeleteComment(payload Payload) (DeleteComment, error) {
	v, err := payload.requireStrings(EntityDeleteComment, "commentId", "owner")
	if err != nil {
		return DeleteComment{}, err
	}
	d := DeleteComment{commentId: v[0], owner: v[1]}
	if !isAbsent(payload["threadId"]) {
		threadId, err := payload.requireStrings(EntityDeleteComment, "threadId")
		if err != nil {
			return DeleteComment{}, err
		}
		d.threadId = threadId[0]
	}
	return d, nil
}

func (d DeleteComment) CommentId() string { return d.commentId }
func (d DeleteComment) Owner() string     { return d.owner }
func (d DeleteComment) ThreadId() string  { return d.threadId }

// CommentDetail is the read projection of a comment. It never carries the deletion flag.
type CommentDetail struct {
	Id       string    `json:"id"`
	Content  string    `json:"content"`
	Date     time.Time `json:"date"`
	Username string    `json:"username"`
}

// NewCommentDetail projects a stored comment, masking the text of deleted ones.
func NewCommentDetail(rec CommentRecord) CommentDetail {
	content := rec.Content
	if rec.IsDeleted {
		content = DeletedCommentContent
	}
	return CommentDetail{
		Id:       rec.Id,
		Content:  content,
		Date:     rec.Date,
		Username: rec.Username,
	}
}
