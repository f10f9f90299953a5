package forms

import (
	"fmt"
	"time"

	"github.com/Nicolas-29/nexus-admin/internal/models"
)

// CommentForm collects a comment draft. The console only ever edits
// existing comments, but a blank draft is still valid: entering the edit
// page without a row selection falls back to a fresh record.
type CommentForm struct {
	Draft models.Comment

	editing bool
}

// NewCommentForm starts a blank draft. New comments default to Pending.
func NewCommentForm() *CommentForm {
	return &CommentForm{
		Draft: models.Comment{
			AuthorAvatar: "https://picsum.photos/seed/default/100",
			Status:       models.CommentPending,
			CreatedAt:    time.Now(),
		},
	}
}

// EditCommentForm starts from an existing record.
func EditCommentForm(c models.Comment) *CommentForm {
	return &CommentForm{Draft: c, editing: true}
}

// Editing reports whether the form updates an existing record.
func (f *CommentForm) Editing() bool { return f.editing }

// Validate enforces the required fields.
func (f *CommentForm) Validate() error {
	if f.Draft.Text == "" {
		return fmt.Errorf("comment text is required")
	}
	if f.Draft.AuthorName == "" {
		return fmt.Errorf("author name is required")
	}
	if !f.Draft.Status.Valid() {
		return fmt.Errorf("unknown status %q", f.Draft.Status)
	}
	return nil
}

// Record validates and returns the finished draft.
func (f *CommentForm) Record() (models.Comment, error) {
	if err := f.Validate(); err != nil {
		return models.Comment{}, err
	}
	return f.Draft, nil
}
