package dto

import "time"

// ChoiceDTO is a choice as shown on the detail and results pages.
type ChoiceDTO struct {
	ID         uint   `json:"id"`
	ChoiceText string `json:"choice_text"`
	Votes      int    `json:"votes"`
}

// QuestionSummaryDTO is one row of the latest-questions list.
type QuestionSummaryDTO struct {
	ID                   uint      `json:"id"`
	QuestionText         string    `json:"question_text"`
	CreatedAt            time.Time `json:"created_at"`
	WasPublishedRecently bool      `json:"was_published_recently"`
}

// QuestionDetailDTO is a question with its choices, for detail and results pages.
type QuestionDetailDTO struct {
	ID           uint        `json:"id"`
	QuestionText string      `json:"question_text"`
	Choices      []ChoiceDTO `json:"choices"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// TotalVotes sums the tallies of all choices.
func (q QuestionDetailDTO) TotalVotes() int {
	total := 0
	for _, c := range q.Choices {
		total += c.Votes
	}
	return total
}
