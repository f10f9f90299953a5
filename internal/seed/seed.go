// The hardcoded startup dataset. There is no persistence layer; every
// process starts from these records. Chapters seed empty.

package seed

import (
	"time"

	"github.com/Nicolas-29/nexus-admin/internal/models"
	"github.com/Nicolas-29/nexus-admin/internal/store"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Series returns the seed catalog, newest first.
func Series() []models.Series {
	return []models.Series{
		{ID: 1042, Title: "Solo Leveling: Ragnarok", Cover: "https://picsum.photos/seed/slr/200/300", Rating: 9.8, Category: models.CategoryManga, Views: 245600, Status: models.SeriesVisible, CreatedAt: date(2023, time.October, 24), Description: "The sequel to Solo Leveling.", Year: "2023", ChapterLabel: "150+", Country: "South Korea", Genres: "Action, Fantasy"},
		{ID: 1041, Title: "Pick Me Up! Infinite Gacha", Cover: "https://picsum.photos/seed/pmu/200/300", Rating: 9.5, Category: models.CategoryManga, Views: 189200, Status: models.SeriesVisible, CreatedAt: date(2023, time.October, 22)},
		{ID: 1040, Title: "Ending Maker", Cover: "https://picsum.photos/seed/em/200/300", Rating: 9.4, Category: models.CategoryNovel, Views: 82300, Status: models.SeriesVisible, CreatedAt: date(2023, time.October, 20)},
		{ID: 1039, Title: "Superhuman Era", Cover: "https://picsum.photos/seed/se/200/300", Rating: 9.2, Category: models.CategoryManga, Views: 145700, Status: models.SeriesVisible, CreatedAt: date(2023, time.October, 18)},
		{ID: 1038, Title: "Trash of the Count Family", Cover: "https://picsum.photos/seed/tcf/200/300", Rating: 9.6, Category: models.CategoryNovel, Views: 95400, Status: models.SeriesHidden, CreatedAt: date(2023, time.October, 15)},
	}
}

// Users returns the seed accounts.
func Users() []models.User {
	return []models.User{
		{ID: 23, Name: "John Doe", Username: "johndoe_nexus", Email: "john@nexus.com", Avatar: "https://picsum.photos/seed/j1/100", Plan: models.PlanPremium, CommentsCount: 13, ReviewsCount: 1, Status: models.UserApproved, CreatedAt: date(2021, time.October, 24)},
		{ID: 24, Name: "Sarah Frost", Username: "frosty_queen", Email: "sarah@winter.com", Avatar: "https://picsum.photos/seed/j2/100", Plan: models.PlanFree, CommentsCount: 1, ReviewsCount: 15, Status: models.UserApproved, CreatedAt: date(2021, time.October, 22)},
		{ID: 25, Name: "Marcus Blade", Username: "slash_master", Email: "blade@warrior.net", Avatar: "https://picsum.photos/seed/j3/100", Plan: models.PlanPremium, CommentsCount: 6, ReviewsCount: 6, Status: models.UserApproved, CreatedAt: date(2021, time.October, 21)},
		{ID: 26, Name: "Kevin Void", Username: "abyssal_dev", Email: "kevin@void.io", Avatar: "https://picsum.photos/seed/j4/100", Plan: models.PlanCinematic, CommentsCount: 11, ReviewsCount: 15, Status: models.UserBanned, CreatedAt: date(2021, time.October, 18)},
	}
}

// Comments returns the seed comments.
func Comments() []models.Comment {
	return []models.Comment{
		{ID: 23, SeriesTitle: "Solo Leveling: Ragnarok", AuthorName: "Jonathan Banks", AuthorAvatar: "https://picsum.photos/seed/c1/80", Text: "This chapter was absolutely incredible! The art style has evolved so much since the first season. Can't wait for next week!", Likes: 12, Dislikes: 7, Status: models.CommentApproved, CreatedAt: date(2021, time.October, 24)},
		{ID: 24, SeriesTitle: "Ending Maker", AuthorName: "John Doe", AuthorAvatar: "https://picsum.photos/seed/c2/80", Text: "I feel like the pacing is slowing down a bit too much. Still enjoying the characters though.", Likes: 67, Dislikes: 22, Status: models.CommentPending, CreatedAt: date(2021, time.October, 24)},
		{ID: 25, SeriesTitle: "Superhuman Era", AuthorName: "Brian Cranston", AuthorAvatar: "https://picsum.photos/seed/c3/80", Text: "A masterpiece of storytelling. Every panel is filled with emotion.", Likes: 44, Dislikes: 5, Status: models.CommentApproved, CreatedAt: date(2021, time.October, 24)},
		{ID: 26, SeriesTitle: "Trash of the Count Family", AuthorName: "Matt Jones", AuthorAvatar: "https://picsum.photos/seed/c8/80", Text: "The chemistry between the leads is just too good. Cutest couple in all of novels.", Likes: 13, Dislikes: 14, Status: models.CommentFlagged, CreatedAt: date(2021, time.October, 24)},
	}
}

// Apply loads the full seed dataset into a store. Records are added in
// reverse so the store's prepend keeps the canonical display order.
func Apply(st *store.Store) {
	series := Series()
	for i := len(series) - 1; i >= 0; i-- {
		st.AddSeries(series[i])
	}
	users := Users()
	for i := len(users) - 1; i >= 0; i-- {
		st.AddUser(users[i])
	}
	comments := Comments()
	for i := len(comments) - 1; i >= 0; i-- {
		st.AddComment(comments[i])
	}
}
