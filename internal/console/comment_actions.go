package console

import (
	"fmt"

	"github.com/Nicolas-29/nexus-admin/internal/events"
	"github.com/Nicolas-29/nexus-admin/internal/forms"
	"github.com/Nicolas-29/nexus-admin/internal/models"
	"github.com/Nicolas-29/nexus-admin/internal/nav"
	"github.com/Nicolas-29/nexus-admin/internal/notify"
)

// UpdateComment replaces a comment's content and moderation state.
func (c *Console) UpdateComment(cm models.Comment) error {
	if err := c.store.UpdateComment(cm); err != nil {
		c.notifier.Push("Comment no longer exists", notify.LevelError)
		return err
	}
	c.nav.Go(nav.PageComments)
	c.notifier.Push("Comment content modified", notify.LevelSuccess)
	c.publish(events.ScopeComments)
	c.publish(events.ScopeNav)
	return nil
}

// DeleteComment asks for confirmation, then removes the comment.
func (c *Console) DeleteComment(id int64) {
	c.confirm.Request(
		"Delete Comment?",
		"This action cannot be undone and the user will not be notified.",
		func() {
			if err := c.store.DeleteComment(id); err != nil {
				c.notifier.Push("Comment no longer exists", notify.LevelError)
				return
			}
			c.notifier.Push("Comment removed from site", notify.LevelInfo)
			c.publish(events.ScopeComments)
		},
	)
	c.publish(events.ScopeConfirm)
}

// ToggleCommentStatus flips a comment between Approved and Pending. A
// Flagged comment is untouched and raises no toast.
func (c *Console) ToggleCommentStatus(id int64) error {
	status, changed, err := c.store.ToggleCommentStatus(id)
	if err != nil {
		c.notifier.Push("Comment no longer exists", notify.LevelError)
		return err
	}
	if changed {
		c.notifier.Push(fmt.Sprintf("Comment marked as %s", status), notify.LevelInfo)
		c.publish(events.ScopeComments)
	}
	return nil
}

// EditComment selects a comment row and opens the edit form.
func (c *Console) EditComment(id int64) {
	if cm, err := c.store.CommentByID(id); err == nil {
		c.nav.EditComment(cm)
	} else {
		c.nav.Go(nav.PageEditComment)
	}
	c.publish(events.ScopeNav)
}

// CommentForm builds the comment form for the current page.
func (c *Console) CommentForm() *forms.CommentForm {
	if cm, ok := c.nav.EditingComment(); ok {
		return forms.EditCommentForm(cm)
	}
	return forms.NewCommentForm()
}
