package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/polls/internal/dto"
	"github.com/lshigami/polls/internal/model"
	"github.com/lshigami/polls/internal/repository"
	"github.com/rs/zerolog/log"
)

type AdminService interface {
	CreateQuestion(req dto.QuestionCreateDTO) (*dto.AdminQuestionDetailDTO, error)
	ListQuestions() ([]dto.AdminQuestionDTO, error)
	GetQuestion(id uint) (*dto.AdminQuestionDetailDTO, error)
	UpdateQuestion(id uint, req dto.QuestionUpdateDTO) (*dto.AdminQuestionDetailDTO, error)
	AddChoice(questionID uint, req dto.ChoiceCreateDTO) (*dto.AdminChoiceDTO, error)
	DeleteQuestion(id uint) error
}

type adminService struct {
	questionRepo repository.QuestionRepository
	choiceRepo   repository.ChoiceRepository
}

func NewAdminService(questionRepo repository.QuestionRepository, choiceRepo repository.ChoiceRepository) AdminService {
	return &adminService{questionRepo: questionRepo, choiceRepo: choiceRepo}
}

func (s *adminService) CreateQuestion(req dto.QuestionCreateDTO) (*dto.AdminQuestionDetailDTO, error) {
	question := model.Question{QuestionText: req.QuestionText}
	for _, c := range req.Choices {
		question.Choices = append(question.Choices, model.Choice{ChoiceText: c.ChoiceText})
	}

	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Msg("Failed to create question in database")
		return nil, fmt.Errorf("database error creating question: %w", err)
	}
	log.Info().Uint("questionID", question.ID).Int("choices", len(question.Choices)).Msg("Question created")

	return s.GetQuestion(question.ID)
}

func (s *adminService) ListQuestions() ([]dto.AdminQuestionDTO, error) {
	questions, err := s.questionRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list questions from repository")
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}

	resp := []dto.AdminQuestionDTO{}
	if err := copier.Copy(&resp, &questions); err != nil {
		return nil, fmt.Errorf("error preparing question list: %w", err)
	}
	return resp, nil
}

func (s *adminService) GetQuestion(id uint) (*dto.AdminQuestionDetailDTO, error) {
	question, err := s.questionRepo.FindByIDWithChoices(id)
	if err != nil {
		return nil, classify(err, id)
	}

	var resp dto.AdminQuestionDetailDTO
	if err := copier.Copy(&resp, question); err != nil {
		log.Error().Err(err).Msg("Failed to copy Question model to AdminQuestionDetailDTO")
		return nil, fmt.Errorf("error preparing question response: %w", err)
	}
	if resp.Choices == nil {
		resp.Choices = []dto.AdminChoiceDTO{}
	}
	return &resp, nil
}

func (s *adminService) UpdateQuestion(id uint, req dto.QuestionUpdateDTO) (*dto.AdminQuestionDetailDTO, error) {
	if err := s.questionRepo.Update(&model.Question{ID: id, QuestionText: req.QuestionText}); err != nil {
		return nil, classify(err, id)
	}
	return s.GetQuestion(id)
}

func (s *adminService) AddChoice(questionID uint, req dto.ChoiceCreateDTO) (*dto.AdminChoiceDTO, error) {
	if _, err := s.questionRepo.FindByID(questionID); err != nil {
		return nil, classify(err, questionID)
	}

	choice := model.Choice{QuestionID: questionID, ChoiceText: req.ChoiceText}
	if err := s.choiceRepo.Create(&choice); err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("Failed to create choice in database")
		return nil, fmt.Errorf("database error creating choice: %w", err)
	}

	var resp dto.AdminChoiceDTO
	if err := copier.Copy(&resp, &choice); err != nil {
		return nil, fmt.Errorf("error preparing choice response: %w", err)
	}
	return &resp, nil
}

func (s *adminService) DeleteQuestion(id uint) error {
	if err := s.questionRepo.Delete(id); err != nil {
		return classify(err, id)
	}
	log.Info().Uint("questionID", id).Msg("Question deleted with its choices")
	return nil
}

func classify(err error, id uint) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrQuestionNotFound
	}
	log.Error().Err(err).Uint("questionID", id).Msg("Question repository error")
	return fmt.Errorf("error accessing question %d: %w", id, err)
}
