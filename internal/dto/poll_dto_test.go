package dto

import "testing"

func TestQuestionDetailDTO_TotalVotes(t *testing.T) {
	q := QuestionDetailDTO{Choices: []ChoiceDTO{{Votes: 2}, {Votes: 0}, {Votes: 5}}}
	if got := q.TotalVotes(); got != 7 {
		t.Errorf("TotalVotes() = %d, want 7", got)
	}
	if got := (QuestionDetailDTO{}).TotalVotes(); got != 0 {
		t.Errorf("TotalVotes() on empty = %d, want 0", got)
	}
}
