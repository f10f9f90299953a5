package store

import "github.com/Nicolas-29/nexus-admin/internal/models"

// AddSeries prepends a series to the catalog (newest first). A zero ID is
// replaced with a store-assigned one; a caller-supplied ID is kept and the
// counter is bumped past it. Returns the stored record.
func (s *Store) AddSeries(sr models.Series) models.Series {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sr.ID == 0 {
		sr.ID = s.allocateID()
	} else {
		s.noteID(sr.ID)
	}
	s.series = append([]models.Series{sr}, s.series...)
	return sr
}

// UpdateSeries replaces the series with a matching ID.
func (s *Store) UpdateSeries(sr models.Series) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.series {
		if s.series[i].ID == sr.ID {
			s.series[i] = sr
			return nil
		}
	}
	return ErrNotFound
}

// DeleteSeries removes the series with the given ID. Chapters of the
// series are left in place; see OrphanChapters.
func (s *Store) DeleteSeries(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.series {
		if s.series[i].ID == id {
			s.series = append(s.series[:i], s.series[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// SeriesByID returns a copy of the series with the given ID.
func (s *Store) SeriesByID(id int64) (models.Series, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.series {
		if s.series[i].ID == id {
			return s.series[i], nil
		}
	}
	return models.Series{}, ErrNotFound
}

// Series returns a copy of the catalog in display order.
func (s *Store) Series() []models.Series {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Series, len(s.series))
	copy(out, s.series)
	return out
}

// SeriesCount returns the number of catalog entries.
func (s *Store) SeriesCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.series)
}
