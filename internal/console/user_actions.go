package console

import (
	"github.com/Nicolas-29/nexus-admin/internal/events"
	"github.com/Nicolas-29/nexus-admin/internal/forms"
	"github.com/Nicolas-29/nexus-admin/internal/models"
	"github.com/Nicolas-29/nexus-admin/internal/nav"
	"github.com/Nicolas-29/nexus-admin/internal/notify"
)

// AddUser creates an account and returns to the user list.
func (c *Console) AddUser(u models.User) models.User {
	stored := c.store.AddUser(u)
	c.nav.Go(nav.PageUsers)
	c.notifier.Push("New member added", notify.LevelSuccess)
	c.publish(events.ScopeUsers)
	c.publish(events.ScopeNav)
	return stored
}

// UpdateUser replaces an account's profile.
func (c *Console) UpdateUser(u models.User) error {
	if err := c.store.UpdateUser(u); err != nil {
		c.notifier.Push("User no longer exists", notify.LevelError)
		return err
	}
	c.nav.Go(nav.PageUsers)
	c.notifier.Push("Profile updated successfully", notify.LevelSuccess)
	c.publish(events.ScopeUsers)
	c.publish(events.ScopeNav)
	return nil
}

// DeleteUser asks for confirmation, then removes the account.
func (c *Console) DeleteUser(id int64) {
	c.confirm.Request(
		"Terminate Account?",
		"The user will lose access to their profile and subscription immediately.",
		func() {
			if err := c.store.DeleteUser(id); err != nil {
				c.notifier.Push("User no longer exists", notify.LevelError)
				return
			}
			c.notifier.Push("User account removed", notify.LevelInfo)
			c.publish(events.ScopeUsers)
		},
	)
	c.publish(events.ScopeConfirm)
}

// ToggleUserStatus flips an account between Approved and Banned; a
// Pending account is untouched.
func (c *Console) ToggleUserStatus(id int64) error {
	_, changed, err := c.store.ToggleUserStatus(id)
	if err != nil {
		c.notifier.Push("User no longer exists", notify.LevelError)
		return err
	}
	if changed {
		c.publish(events.ScopeUsers)
	}
	return nil
}

// EditUser selects a user row and opens the edit form.
func (c *Console) EditUser(id int64) {
	if u, err := c.store.UserByID(id); err == nil {
		c.nav.EditUser(u)
	} else {
		c.nav.Go(nav.PageEditUser)
	}
	c.publish(events.ScopeNav)
}

// UserForm builds the user form for the current page.
func (c *Console) UserForm() *forms.UserForm {
	if u, ok := c.nav.EditingUser(); ok {
		return forms.EditUserForm(u)
	}
	return forms.NewUserForm()
}
