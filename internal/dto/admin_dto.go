package dto

import "time"

// ChoiceCreateDTO is an inline choice submitted with a question, or added later.
type ChoiceCreateDTO struct {
	ChoiceText string `json:"choice_text" binding:"required,max=200"`
}

// QuestionCreateDTO is for admin to create a question with its inline choices.
type QuestionCreateDTO struct {
	QuestionText string            `json:"question_text" binding:"required,max=200"`
	Choices      []ChoiceCreateDTO `json:"choices" binding:"omitempty,dive"`
}

// QuestionUpdateDTO edits the only writable question field.
type QuestionUpdateDTO struct {
	QuestionText string `json:"question_text" binding:"required,max=200"`
}

// AdminChoiceDTO shows a choice with its read-only fields.
type AdminChoiceDTO struct {
	ID         uint      `json:"id"`
	QuestionID uint      `json:"question_id"`
	ChoiceText string    `json:"choice_text"`
	Votes      int       `json:"votes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// AdminQuestionDTO is the admin list_display row: text plus both timestamps.
type AdminQuestionDTO struct {
	ID           uint      `json:"id"`
	QuestionText string    `json:"question_text"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AdminQuestionDetailDTO is a question with its inline choices.
type AdminQuestionDetailDTO struct {
	ID           uint             `json:"id"`
	QuestionText string           `json:"question_text"`
	Choices      []AdminChoiceDTO `json:"choices"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}
