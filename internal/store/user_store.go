package store

import "github.com/Nicolas-29/nexus-admin/internal/models"

// AddUser prepends a user account.
func (s *Store) AddUser(u models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.ID == 0 {
		u.ID = s.allocateID()
	} else {
		s.noteID(u.ID)
	}
	s.users = append([]models.User{u}, s.users...)
	return u
}

// UpdateUser replaces the user with a matching ID.
func (s *Store) UpdateUser(u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == u.ID {
			s.users[i] = u
			return nil
		}
	}
	return ErrNotFound
}

// DeleteUser removes the user with the given ID.
func (s *Store) DeleteUser(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ToggleUserStatus flips an account between Approved and Banned. A Pending
// account is left untouched; reaching Pending requires a direct edit.
// Returns the status after the call and whether it changed.
func (s *Store) ToggleUserStatus(id int64) (models.UserStatus, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}
		switch s.users[i].Status {
		case models.UserApproved:
			s.users[i].Status = models.UserBanned
			return models.UserBanned, true, nil
		case models.UserBanned:
			s.users[i].Status = models.UserApproved
			return models.UserApproved, true, nil
		default:
			return s.users[i].Status, false, nil
		}
	}
	return "", false, ErrNotFound
}

// UserByID returns a copy of the user with the given ID.
func (s *Store) UserByID(id int64) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			return s.users[i], nil
		}
	}
	return models.User{}, ErrNotFound
}

// Users returns a copy of all accounts in display order.
func (s *Store) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

// UserCount returns the number of accounts.
func (s *Store) UserCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}
