// The page-routing state machine. One enumerated current-page value plus
// the selection state consumed by the edit forms. There is no deep
// linking; a new process always starts on the dashboard.

package nav

import (
	"sync"

	"github.com/Nicolas-29/nexus-admin/internal/models"
)

// Page selects which top-level view is rendered.
type Page string

const (
	PageDashboard    Page = "Dashboard"
	PageCatalog      Page = "Catalog"
	PageUsers        Page = "Users"
	PageComments     Page = "Comments"
	PageAddSeries    Page = "AddSeries"
	PageEditSeries   Page = "EditSeries"
	PageAddUser      Page = "AddUser"
	PageEditUser     Page = "EditUser"
	PageEditComment  Page = "EditComment"
	PageAddChapter   Page = "AddChapter"
	PageSettings     Page = "Settings"
	PageMonetization Page = "Monetization"
)

// Machine tracks the current page and the transition-scoped selections.
type Machine struct {
	mu      sync.Mutex
	current Page

	editingSeries  *models.Series
	editingUser    *models.User
	editingComment *models.Comment

	preselectedSeries int64 // 0 means none
}

// NewMachine starts on the dashboard.
func NewMachine() *Machine {
	return &Machine{current: PageDashboard}
}

// Current returns the page being shown.
func (m *Machine) Current() Page {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Go transitions to a page. Selections belonging to other pages are
// cleared: the chapter preselection survives only while on AddChapter,
// and each edit selection only while on its own edit page. Entering an
// edit page through Go (rather than an edit action) therefore yields a
// blank form.
func (m *Machine) Go(page Page) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if page != PageAddChapter {
		m.preselectedSeries = 0
	}
	if page != PageEditSeries {
		m.editingSeries = nil
	}
	if page != PageEditUser {
		m.editingUser = nil
	}
	if page != PageEditComment {
		m.editingComment = nil
	}
	m.current = page
}

// EditSeries selects a series and enters its edit page.
func (m *Machine) EditSeries(sr models.Series) {
	m.Go(PageEditSeries)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.editingSeries = &sr
}

// EditUser selects a user and enters its edit page.
func (m *Machine) EditUser(u models.User) {
	m.Go(PageEditUser)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.editingUser = &u
}

// EditComment selects a comment and enters its edit page.
func (m *Machine) EditComment(c models.Comment) {
	m.Go(PageEditComment)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.editingComment = &c
}

// AddChapterFor preselects a series and enters the add-chapter page.
func (m *Machine) AddChapterFor(seriesID int64) {
	m.Go(PageAddChapter)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.preselectedSeries = seriesID
}

// EditingSeries returns the selected series. ok is false when the edit
// page was entered without a row action; the form then starts blank.
func (m *Machine) EditingSeries() (models.Series, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.editingSeries == nil {
		return models.Series{}, false
	}
	return *m.editingSeries, true
}

// EditingUser returns the selected user, if any.
func (m *Machine) EditingUser() (models.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.editingUser == nil {
		return models.User{}, false
	}
	return *m.editingUser, true
}

// EditingComment returns the selected comment, if any.
func (m *Machine) EditingComment() (models.Comment, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.editingComment == nil {
		return models.Comment{}, false
	}
	return *m.editingComment, true
}

// PreselectedSeries returns the series preselected for a new chapter.
func (m *Machine) PreselectedSeries() (int64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.preselectedSeries, m.preselectedSeries != 0
}
