package models

import "time"

// CommentStatus is the moderation state of a comment.
type CommentStatus string

const (
	CommentApproved CommentStatus = "Approved"
	CommentPending  CommentStatus = "Pending"
	CommentFlagged  CommentStatus = "Flagged"
)

func (s CommentStatus) Valid() bool {
	return s == CommentApproved || s == CommentPending || s == CommentFlagged
}

// Comment represents a reader comment under moderation. SeriesTitle is a
// denormalized display label, not a foreign key.
type Comment struct {
	ID           int64         `json:"id"`
	SeriesTitle  string        `json:"series_title"`
	AuthorName   string        `json:"author_name"`
	AuthorAvatar string        `json:"author_avatar"`
	Text         string        `json:"text"`
	Likes        int           `json:"likes"`
	Dislikes     int           `json:"dislikes"`
	Status       CommentStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
}
