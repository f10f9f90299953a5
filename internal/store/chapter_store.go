package store

import (
	"fmt"

	"github.com/Nicolas-29/nexus-admin/internal/models"
)

// AddChapter prepends a chapter. The parent series must exist; the content
// kind is forced to match the parent's category so a novel can never carry
// page images and vice versa.
func (s *Store) AddChapter(ch models.Chapter) (models.Chapter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var parent *models.Series
	for i := range s.series {
		if s.series[i].ID == ch.SeriesID {
			parent = &s.series[i]
			break
		}
	}
	if parent == nil {
		return models.Chapter{}, fmt.Errorf("series %d: %w", ch.SeriesID, ErrNotFound)
	}

	switch parent.Category {
	case models.CategoryManga:
		ch.Content.Kind = models.ContentPages
		ch.Content.Text = ""
	case models.CategoryNovel:
		ch.Content.Kind = models.ContentText
		ch.Content.Pages = nil
	}

	if ch.ID == 0 {
		ch.ID = s.allocateID()
	} else {
		s.noteID(ch.ID)
	}
	s.chapters = append([]models.Chapter{ch}, s.chapters...)
	return ch, nil
}

// Chapters returns a copy of all chapters, newest first.
func (s *Store) Chapters() []models.Chapter {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Chapter, len(s.chapters))
	copy(out, s.chapters)
	return out
}

// ChaptersForSeries returns the chapters belonging to one series.
func (s *Store) ChaptersForSeries(seriesID int64) []models.Chapter {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Chapter
	for _, ch := range s.chapters {
		if ch.SeriesID == seriesID {
			out = append(out, ch)
		}
	}
	return out
}

// OrphanChapters returns chapters whose parent series no longer exists.
// Deleting a series does not cascade, so the gap stays observable.
func (s *Store) OrphanChapters() []models.Chapter {
	s.mu.Lock()
	defer s.mu.Unlock()

	live := make(map[int64]bool, len(s.series))
	for _, sr := range s.series {
		live[sr.ID] = true
	}
	var out []models.Chapter
	for _, ch := range s.chapters {
		if !live[ch.SeriesID] {
			out = append(out, ch)
		}
	}
	return out
}

// ChapterCount returns the number of chapters across all series.
func (s *Store) ChapterCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.chapters)
}
