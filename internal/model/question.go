package model

import (
	"time"
)

// RecentWindow is how far back a question still counts as recently published.
const RecentWindow = 24 * time.Hour

type Question struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	QuestionText string    `json:"question_text" gorm:"size:200;not null"`
	Choices      []Choice  `json:"choices,omitempty" gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// WasPublishedRecently reports whether the question was created within
// RecentWindow before now. Questions dated in the future are not recent.
func (q Question) WasPublishedRecently(now time.Time) bool {
	return !q.CreatedAt.After(now) && !q.CreatedAt.Before(now.Add(-RecentWindow))
}
