package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/polls/config"
	"github.com/lshigami/polls/internal/dto"
	"github.com/lshigami/polls/internal/model"
	"github.com/lshigami/polls/internal/repository"
	"github.com/rs/zerolog/log"
)

// ErrQuestionNotFound means the requested question id does not exist.
var ErrQuestionNotFound = errors.New("question not found")

// NoChoiceMessage is shown on the detail page when a vote names no valid choice.
const NoChoiceMessage = "You didn't select a choice."

type VoteOutcome int

const (
	// VoteRecorded: the choice was incremented; the caller redirects to results.
	VoteRecorded VoteOutcome = iota
	// VoteRejected: no valid choice was submitted; the caller redisplays the detail page.
	VoteRejected
)

func (o VoteOutcome) String() string {
	switch o {
	case VoteRecorded:
		return "recorded"
	case VoteRejected:
		return "rejected"
	default:
		return fmt.Sprintf("VoteOutcome(%d)", int(o))
	}
}

type VoteResult struct {
	Outcome      VoteOutcome
	QuestionID   uint
	ChoiceID     uint                   // set when recorded
	Question     *dto.QuestionDetailDTO // set when rejected, for the redisplay
	ErrorMessage string
}

type PollService interface {
	ListLatest() ([]dto.QuestionSummaryDTO, error)
	GetDetail(questionID uint) (*dto.QuestionDetailDTO, error)
	GetResults(questionID uint) (*dto.QuestionDetailDTO, error)
	// Vote casts one vote. present is false when the form had no choice field.
	Vote(questionID uint, choice string, present bool) (*VoteResult, error)
}

type pollService struct {
	questionRepo repository.QuestionRepository
	choiceRepo   repository.ChoiceRepository
	latestLimit  int
	now          func() time.Time
}

func NewPollService(questionRepo repository.QuestionRepository, choiceRepo repository.ChoiceRepository, cfg *config.Config) PollService {
	return &pollService{
		questionRepo: questionRepo,
		choiceRepo:   choiceRepo,
		latestLimit:  cfg.Polls.LatestLimit,
		now:          time.Now,
	}
}

func (s *pollService) ListLatest() ([]dto.QuestionSummaryDTO, error) {
	questions, err := s.questionRepo.FindRecent(s.latestLimit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list latest questions from repository")
		return nil, fmt.Errorf("error fetching latest questions: %w", err)
	}

	now := s.now()
	summaries := make([]dto.QuestionSummaryDTO, 0, len(questions))
	for _, q := range questions {
		summaries = append(summaries, dto.QuestionSummaryDTO{
			ID:                   q.ID,
			QuestionText:         q.QuestionText,
			CreatedAt:            q.CreatedAt,
			WasPublishedRecently: q.WasPublishedRecently(now),
		})
	}
	return summaries, nil
}

func (s *pollService) GetDetail(questionID uint) (*dto.QuestionDetailDTO, error) {
	return s.questionWithChoices(questionID)
}

// GetResults shares the detail fetch; the results page reads the vote tallies.
func (s *pollService) GetResults(questionID uint) (*dto.QuestionDetailDTO, error) {
	return s.questionWithChoices(questionID)
}

func (s *pollService) questionWithChoices(questionID uint) (*dto.QuestionDetailDTO, error) {
	question, err := s.questionRepo.FindByIDWithChoices(questionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrQuestionNotFound
		}
		log.Error().Err(err).Uint("questionID", questionID).Msg("Failed to get question from repository")
		return nil, fmt.Errorf("error fetching question %d: %w", questionID, err)
	}
	return toDetailDTO(question)
}

func (s *pollService) Vote(questionID uint, choice string, present bool) (*VoteResult, error) {
	question, err := s.questionRepo.FindByID(questionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("error fetching question %d: %w", questionID, err)
	}

	choices, err := s.choiceRepo.FindByQuestionID(question.ID)
	if err != nil {
		return nil, fmt.Errorf("error fetching choices of question %d: %w", questionID, err)
	}
	question.Choices = choices

	choiceID, ok := matchChoice(choices, choice, present)
	if !ok {
		log.Warn().Uint("questionID", questionID).Str("choice", choice).Bool("present", present).Msg("Vote rejected: no valid choice selected")
		return s.rejected(question)
	}

	if err := s.choiceRepo.IncrementVotes(choiceID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// The choice disappeared between lookup and update.
			log.Warn().Uint("questionID", questionID).Uint("choiceID", choiceID).Msg("Vote rejected: choice vanished")
			return s.rejected(question)
		}
		return nil, fmt.Errorf("error recording vote for choice %d: %w", choiceID, err)
	}

	log.Info().Uint("questionID", questionID).Uint("choiceID", choiceID).Msg("Vote recorded")
	return &VoteResult{Outcome: VoteRecorded, QuestionID: questionID, ChoiceID: choiceID}, nil
}

func (s *pollService) rejected(question *model.Question) (*VoteResult, error) {
	detail, err := toDetailDTO(question)
	if err != nil {
		return nil, err
	}
	return &VoteResult{
		Outcome:      VoteRejected,
		QuestionID:   question.ID,
		Question:     detail,
		ErrorMessage: NoChoiceMessage,
	}, nil
}

// matchChoice resolves the submitted value against the question's own choices.
// Only an absent field, a non-numeric value or an id outside this question fail.
func matchChoice(choices []model.Choice, raw string, present bool) (uint, bool) {
	if !present {
		return 0, false
	}
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, false
	}
	for _, c := range choices {
		if uint64(c.ID) == id {
			return c.ID, true
		}
	}
	return 0, false
}

func toDetailDTO(question *model.Question) (*dto.QuestionDetailDTO, error) {
	var resp dto.QuestionDetailDTO
	if err := copier.Copy(&resp, question); err != nil {
		log.Error().Err(err).Msg("Failed to copy Question model to QuestionDetailDTO")
		return nil, fmt.Errorf("error preparing question response: %w", err)
	}
	if resp.Choices == nil {
		resp.Choices = []dto.ChoiceDTO{}
	}
	return &resp, nil
}
