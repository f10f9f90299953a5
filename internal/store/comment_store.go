package store

import "github.com/Nicolas-29/nexus-admin/internal/models"

// AddComment prepends a comment.
func (s *Store) AddComment(c models.Comment) models.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == 0 {
		c.ID = s.allocateID()
	} else {
		s.noteID(c.ID)
	}
	s.comments = append([]models.Comment{c}, s.comments...)
	return c
}

// UpdateComment replaces the comment with a matching ID.
func (s *Store) UpdateComment(c models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.comments {
		if s.comments[i].ID == c.ID {
			s.comments[i] = c
			return nil
		}
	}
	return ErrNotFound
}

// DeleteComment removes the comment with the given ID.
func (s *Store) DeleteComment(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.comments {
		if s.comments[i].ID == id {
			s.comments = append(s.comments[:i], s.comments[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ToggleCommentStatus flips a comment between Approved and Pending. A
// Flagged comment is left untouched; Flagged is reachable only through a
// direct edit. Returns the status after the call and whether it changed.
func (s *Store) ToggleCommentStatus(id int64) (models.CommentStatus, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.comments {
		if s.comments[i].ID != id {
			continue
		}
		switch s.comments[i].Status {
		case models.CommentApproved:
			s.comments[i].Status = models.CommentPending
			return models.CommentPending, true, nil
		case models.CommentPending:
			s.comments[i].Status = models.CommentApproved
			return models.CommentApproved, true, nil
		default:
			return s.comments[i].Status, false, nil
		}
	}
	return "", false, ErrNotFound
}

// CommentByID returns a copy of the comment with the given ID.
func (s *Store) CommentByID(id int64) (models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.comments {
		if s.comments[i].ID == id {
			return s.comments[i], nil
		}
	}
	return models.Comment{}, ErrNotFound
}

// Comments returns a copy of all comments in display order.
func (s *Store) Comments() []models.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Comment, len(s.comments))
	copy(out, s.comments)
	return out
}

// CommentCount returns the number of comments.
func (s *Store) CommentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.comments)
}
