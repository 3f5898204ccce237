package repository

import (
	"errors"
	"fmt"

	"github.com/lshigami/polls/internal/model"
	"gorm.io/gorm"
)

// ErrNotFound is returned when the requested row does not exist.
var ErrNotFound = errors.New("record not found")

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindByIDWithChoices(id uint) (*model.Question, error)
	FindRecent(limit int) ([]model.Question, error)
	FindAll() ([]model.Question, error)
	Update(question *model.Question) error
	Delete(id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

// Create inserts the question together with any Choices already attached to it.
func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &question, nil
}

func (r *questionRepository) FindByIDWithChoices(id uint) (*model.Question, error) {
	var question model.Question
	err := r.db.Preload("Choices", func(db *gorm.DB) *gorm.DB {
		return db.Order("choices.id ASC")
	}).First(&question, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &question, nil
}

// FindRecent returns at most limit questions, newest first.
func (r *questionRepository) FindRecent(limit int) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Order("created_at desc").Order("id desc").Limit(limit).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindAll() ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Order("created_at desc").Order("id desc").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// Update saves question_text only; Choices are managed through ChoiceRepository.
func (r *questionRepository) Update(question *model.Question) error {
	res := r.db.Model(question).Select("question_text", "updated_at").Updates(question)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a question and its choices in one transaction, children first,
// so the cascade holds even where the store does not enforce foreign keys.
func (r *questionRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&model.Choice{}).Error; err != nil {
			return fmt.Errorf("failed to delete choices of question %d: %w", id, err)
		}
		res := tx.Delete(&model.Question{}, id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete question %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
