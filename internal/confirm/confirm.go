// The confirmation workflow: a single globally shared slot gating
// destructive actions behind an explicit accept. A second request while
// one is open overwrites the first (last writer wins, not a queue).

package confirm

import "sync"

// Request is a read-only snapshot of the pending confirmation.
type Request struct {
	Title   string
	Message string
}

// Slot holds at most one pending confirmation.
type Slot struct {
	mu      sync.Mutex
	open    bool
	title   string
	message string
	action  func()
}

// New creates an empty Slot.
func New() *Slot {
	return &Slot{}
}

// Request arms the slot with a title, message and the action to run on
// accept. Any previously pending request is discarded.
func (s *Slot) Request(title, message string, action func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.open = true
	s.title = title
	s.message = message
	s.action = action
}

// Accept runs the stored action and closes the slot. The action runs
// outside the lock so it may freely request a new confirmation. Returns
// false when nothing was pending.
func (s *Slot) Accept() bool {
	s.mu.Lock()
	if !s.open {
		s.mu.Unlock()
		return false
	}
	action := s.action
	s.clearLocked()
	s.mu.Unlock()

	if action != nil {
		action()
	}
	return true
}

// Cancel closes the slot without running the action.
func (s *Slot) Cancel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return false
	}
	s.clearLocked()
	return true
}

// Pending returns the current request, if any.
func (s *Slot) Pending() (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Request{Title: s.title, Message: s.message}, s.open
}

func (s *Slot) clearLocked() {
	s.open = false
	s.title = ""
	s.message = ""
	s.action = nil
}
