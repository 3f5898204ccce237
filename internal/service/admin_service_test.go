package service

import (
	"errors"
	"testing"
	"time"

	"github.com/lshigami/polls/internal/dto"
	"github.com/lshigami/polls/internal/model"
	"github.com/lshigami/polls/internal/repository"
	"github.com/lshigami/polls/internal/testutil"
	"gorm.io/gorm"
)

func newTestAdminService(t *testing.T) (AdminService, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return NewAdminService(repository.NewQuestionRepository(db), repository.NewChoiceRepository(db)), db
}

func TestAdminService_CreateQuestionWithInlineChoices(t *testing.T) {
	svc, _ := newTestAdminService(t)

	got, err := svc.CreateQuestion(dto.QuestionCreateDTO{
		QuestionText: "What's new?",
		Choices:      []dto.ChoiceCreateDTO{{ChoiceText: "Not much"}, {ChoiceText: "The sky"}},
	})
	if err != nil {
		t.Fatalf("CreateQuestion failed: %v", err)
	}

	if got.ID == 0 {
		t.Error("expected id to be assigned")
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.Before(got.CreatedAt) {
		t.Errorf("bad timestamps: created %v updated %v", got.CreatedAt, got.UpdatedAt)
	}
	if len(got.Choices) != 2 {
		t.Fatalf("expected 2 choices, got %d", len(got.Choices))
	}
	for _, c := range got.Choices {
		if c.QuestionID != got.ID || c.Votes != 0 {
			t.Errorf("unexpected choice %+v", c)
		}
	}
}

func TestAdminService_CreateQuestionWithoutChoices(t *testing.T) {
	svc, _ := newTestAdminService(t)

	got, err := svc.CreateQuestion(dto.QuestionCreateDTO{QuestionText: "Lonely?"})
	if err != nil {
		t.Fatal(err)
	}
	if got.Choices == nil || len(got.Choices) != 0 {
		t.Errorf("expected empty choice list, got %v", got.Choices)
	}
}

func TestAdminService_ListQuestions(t *testing.T) {
	svc, db := newTestAdminService(t)
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i, text := range []string{"a", "b", "c", "d"} {
		testutil.CreateQuestion(t, db, text, base.Add(time.Duration(i)*time.Hour))
	}

	got, err := svc.ListQuestions()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 4 {
		t.Fatalf("admin list is not limited: expected 4, got %d", len(got))
	}
	if got[0].QuestionText != "d" || got[3].QuestionText != "a" {
		t.Errorf("expected newest first, got %q..%q", got[0].QuestionText, got[3].QuestionText)
	}
}

func TestAdminService_UpdateQuestion(t *testing.T) {
	svc, db := newTestAdminService(t)
	q := testutil.CreateQuestion(t, db, "Before", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "x")

	got, err := svc.UpdateQuestion(q.ID, dto.QuestionUpdateDTO{QuestionText: "After"})
	if err != nil {
		t.Fatal(err)
	}
	if got.QuestionText != "After" {
		t.Errorf("expected updated text, got %q", got.QuestionText)
	}
	if !got.UpdatedAt.After(got.CreatedAt) {
		t.Errorf("updated_at should move past created_at: %v vs %v", got.UpdatedAt, got.CreatedAt)
	}
	if len(got.Choices) != 1 {
		t.Errorf("choices should be untouched, got %d", len(got.Choices))
	}
}

func TestAdminService_AddChoice(t *testing.T) {
	svc, db := newTestAdminService(t)
	q := testutil.CreateQuestion(t, db, "Q", time.Now().UTC())

	c, err := svc.AddChoice(q.ID, dto.ChoiceCreateDTO{ChoiceText: "New"})
	if err != nil {
		t.Fatal(err)
	}
	if c.QuestionID != q.ID || c.ChoiceText != "New" || c.Votes != 0 {
		t.Errorf("unexpected choice %+v", c)
	}
}

func TestAdminService_NotFound(t *testing.T) {
	svc, _ := newTestAdminService(t)

	if _, err := svc.GetQuestion(1); !errors.Is(err, ErrQuestionNotFound) {
		t.Errorf("GetQuestion: got %v", err)
	}
	if _, err := svc.UpdateQuestion(1, dto.QuestionUpdateDTO{QuestionText: "x"}); !errors.Is(err, ErrQuestionNotFound) {
		t.Errorf("UpdateQuestion: got %v", err)
	}
	if _, err := svc.AddChoice(1, dto.ChoiceCreateDTO{ChoiceText: "x"}); !errors.Is(err, ErrQuestionNotFound) {
		t.Errorf("AddChoice: got %v", err)
	}
	if err := svc.DeleteQuestion(1); !errors.Is(err, ErrQuestionNotFound) {
		t.Errorf("DeleteQuestion: got %v", err)
	}
}

func TestAdminService_DeleteQuestionCascades(t *testing.T) {
	svc, db := newTestAdminService(t)
	q := testutil.CreateQuestion(t, db, "Q", time.Now().UTC(), "a", "b", "c")

	if err := svc.DeleteQuestion(q.ID); err != nil {
		t.Fatal(err)
	}

	var count int64
	db.Model(&model.Choice{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no choices left, found %d", count)
	}
}
