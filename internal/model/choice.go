package model

import (
	"time"
)

type Choice struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	QuestionID uint      `json:"question_id" gorm:"not null;index"`
	ChoiceText string    `json:"choice_text" gorm:"size:200;not null"`
	Votes      int       `json:"votes" gorm:"not null;default:0;check:votes >= 0"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
