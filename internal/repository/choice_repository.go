package repository

import (
	"github.com/lshigami/polls/internal/model"
	"gorm.io/gorm"
)

type ChoiceRepository interface {
	Create(choice *model.Choice) error
	FindByQuestionID(questionID uint) ([]model.Choice, error)
	IncrementVotes(choiceID uint) error
}

type choiceRepository struct {
	db *gorm.DB
}

func NewChoiceRepository(db *gorm.DB) ChoiceRepository {
	return &choiceRepository{db: db}
}

func (r *choiceRepository) Create(choice *model.Choice) error {
	return r.db.Create(choice).Error
}

func (r *choiceRepository) FindByQuestionID(questionID uint) ([]model.Choice, error) {
	var choices []model.Choice
	if err := r.db.Where("question_id = ?", questionID).Order("id ASC").Find(&choices).Error; err != nil {
		return nil, err
	}
	return choices, nil
}

// IncrementVotes adds one vote in a single UPDATE. Update (not UpdateColumn) so
// updated_at is refreshed too.
func (r *choiceRepository) IncrementVotes(choiceID uint) error {
	res := r.db.Model(&model.Choice{ID: choiceID}).Update("votes", gorm.Expr("votes + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
