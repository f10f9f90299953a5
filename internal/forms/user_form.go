package forms

import (
	"fmt"
	"strings"
	"time"

	"github.com/Nicolas-29/nexus-admin/internal/models"
)

// UserForm collects an account draft.
type UserForm struct {
	Draft models.User

	editing bool
}

// NewUserForm starts a blank draft with the add-form defaults.
func NewUserForm() *UserForm {
	return &UserForm{
		Draft: models.User{
			Avatar:    "https://picsum.photos/seed/newuser/200",
			Plan:      models.PlanFree,
			Status:    models.UserApproved,
			CreatedAt: time.Now(),
		},
	}
}

// EditUserForm starts from an existing record.
func EditUserForm(u models.User) *UserForm {
	return &UserForm{Draft: u, editing: true}
}

// Editing reports whether the form updates an existing record.
func (f *UserForm) Editing() bool { return f.editing }

// Validate enforces the required fields.
func (f *UserForm) Validate() error {
	if f.Draft.Name == "" {
		return fmt.Errorf("name is required")
	}
	if f.Draft.Username == "" {
		return fmt.Errorf("username is required")
	}
	if f.Draft.Email == "" || !strings.Contains(f.Draft.Email, "@") {
		return fmt.Errorf("a valid email is required")
	}
	if !f.Draft.Plan.Valid() {
		return fmt.Errorf("unknown plan %q", f.Draft.Plan)
	}
	if !f.Draft.Status.Valid() {
		return fmt.Errorf("unknown status %q", f.Draft.Status)
	}
	return nil
}

// Record validates and returns the finished draft.
func (f *UserForm) Record() (models.User, error) {
	if err := f.Validate(); err != nil {
		return models.User{}, err
	}
	return f.Draft, nil
}
