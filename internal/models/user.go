package models

import "time"

// Plan is a user's subscription tier.
type Plan string

const (
	PlanFree      Plan = "Free"
	PlanBasic     Plan = "Basic"
	PlanPremium   Plan = "Premium"
	PlanCinematic Plan = "Cinematic"
	PlanAdmin     Plan = "Admin"
)

func (p Plan) Valid() bool {
	switch p {
	case PlanFree, PlanBasic, PlanPremium, PlanCinematic, PlanAdmin:
		return true
	}
	return false
}

// UserStatus is the moderation state of an account.
type UserStatus string

const (
	UserApproved UserStatus = "Approved"
	UserBanned   UserStatus = "Banned"
	UserPending  UserStatus = "Pending"
)

func (s UserStatus) Valid() bool {
	return s == UserApproved || s == UserBanned || s == UserPending
}

// User represents a reader account managed from the console.
type User struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	Avatar        string     `json:"avatar"`
	Plan          Plan       `json:"plan"`
	CommentsCount int        `json:"comments_count"`
	ReviewsCount  int        `json:"reviews_count"`
	Status        UserStatus `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
}
