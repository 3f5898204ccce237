// Package testutil opens throwaway databases and seeds poll fixtures for tests.
package testutil

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/lshigami/polls/database"
	"github.com/lshigami/polls/internal/model"
	"gorm.io/gorm"
)

// SetupTestDB returns a migrated in-memory sqlite database private to the test.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	// Every pooled connection to :memory: would be a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

// CreateQuestion inserts a question published at createdAt with one choice per text.
func CreateQuestion(t *testing.T, db *gorm.DB, text string, createdAt time.Time, choiceTexts ...string) *model.Question {
	t.Helper()

	q := &model.Question{
		QuestionText: text,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
	for _, ct := range choiceTexts {
		q.Choices = append(q.Choices, model.Choice{ChoiceText: ct, CreatedAt: createdAt, UpdatedAt: createdAt})
	}
	if err := db.Create(q).Error; err != nil {
		t.Fatalf("Failed to create question %q: %v", text, err)
	}
	return q
}

// CreateChoiceWithID inserts a choice with a fixed primary key.
func CreateChoiceWithID(t *testing.T, db *gorm.DB, questionID, id uint, text string) *model.Choice {
	t.Helper()

	c := &model.Choice{ID: id, QuestionID: questionID, ChoiceText: text}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("Failed to create choice %d: %v", id, err)
	}
	return c
}

// Votes returns choice id -> votes for every choice of the question.
func Votes(t *testing.T, db *gorm.DB, questionID uint) map[uint]int {
	t.Helper()

	var choices []model.Choice
	if err := db.Where("question_id = ?", questionID).Find(&choices).Error; err != nil {
		t.Fatalf("Failed to load choices: %v", err)
	}
	votes := make(map[uint]int, len(choices))
	for _, c := range choices {
		votes[c.ID] = c.Votes
	}
	return votes
}

// AllVotes returns choice id -> votes across every question.
func AllVotes(t *testing.T, db *gorm.DB) map[uint]int {
	t.Helper()

	var choices []model.Choice
	if err := db.Find(&choices).Error; err != nil {
		t.Fatalf("Failed to load choices: %v", err)
	}
	votes := make(map[uint]int, len(choices))
	for _, c := range choices {
		votes[c.ID] = c.Votes
	}
	return votes
}
