package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/polls/internal/dto"
	"github.com/lshigami/polls/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminController struct {
	adminService service.AdminService
}

func NewAdminController(adminService service.AdminService) *AdminController {
	return &AdminController{adminService: adminService}
}

func (c *AdminController) RegisterRoutes(router *gin.Engine) {
	questions := router.Group("/api/admin/questions")
	{
		questions.GET("", c.ListQuestions)
		questions.POST("", c.CreateQuestion)
		questions.GET("/:question_id", c.GetQuestion)
		questions.PUT("/:question_id", c.UpdateQuestion)
		questions.DELETE("/:question_id", c.DeleteQuestion)
		questions.POST("/:question_id/choices", c.AddChoice)
	}
}

// ListQuestions godoc
// @Summary (Admin) List questions
// @Description All questions, newest first, with their read-only timestamps.
// @Tags Admin - Questions
// @Produce json
// @Success 200 {array} dto.AdminQuestionDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions [get]
func (c *AdminController) ListQuestions(ctx *gin.Context) {
	questions, err := c.adminService.ListQuestions()
	if err != nil {
		log.Error().Err(err).Msg("Admin ListQuestions: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve questions", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// CreateQuestion godoc
// @Summary (Admin) Create a question
// @Description Creates a question together with its inline choices. Votes start at zero.
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param question body dto.QuestionCreateDTO true "Question text and inline choices"
// @Success 201 {object} dto.AdminQuestionDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions [post]
func (c *AdminController) CreateQuestion(ctx *gin.Context) {
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateQuestion: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	question, err := c.adminService.CreateQuestion(req)
	if err != nil {
		c.respondError(ctx, "CreateQuestion", err)
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// GetQuestion godoc
// @Summary (Admin) Get a question
// @Description One question with its inline choices and vote counts.
// @Tags Admin - Questions
// @Produce json
// @Param question_id path int true "Question ID"
// @Success 200 {object} dto.AdminQuestionDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Question ID format"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions/{question_id} [get]
func (c *AdminController) GetQuestion(ctx *gin.Context) {
	questionID, ok := parseQuestionID(ctx)
	if !ok {
		return
	}

	question, err := c.adminService.GetQuestion(questionID)
	if err != nil {
		c.respondError(ctx, "GetQuestion", err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// UpdateQuestion godoc
// @Summary (Admin) Edit a question
// @Description Changes question_text. Timestamps and choices are not writable here.
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param question_id path int true "Question ID"
// @Param question body dto.QuestionUpdateDTO true "New question text"
// @Success 200 {object} dto.AdminQuestionDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or ID"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions/{question_id} [put]
func (c *AdminController) UpdateQuestion(ctx *gin.Context) {
	questionID, ok := parseQuestionID(ctx)
	if !ok {
		return
	}

	var req dto.QuestionUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	question, err := c.adminService.UpdateQuestion(questionID, req)
	if err != nil {
		c.respondError(ctx, "UpdateQuestion", err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// AddChoice godoc
// @Summary (Admin) Add a choice to a question
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param question_id path int true "Question ID"
// @Param choice body dto.ChoiceCreateDTO true "Choice text"
// @Success 201 {object} dto.AdminChoiceDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or ID"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions/{question_id}/choices [post]
func (c *AdminController) AddChoice(ctx *gin.Context) {
	questionID, ok := parseQuestionID(ctx)
	if !ok {
		return
	}

	var req dto.ChoiceCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	choice, err := c.adminService.AddChoice(questionID, req)
	if err != nil {
		c.respondError(ctx, "AddChoice", err)
		return
	}
	ctx.JSON(http.StatusCreated, choice)
}

// DeleteQuestion godoc
// @Summary (Admin) Delete a question
// @Description Deletes the question and all of its choices.
// @Tags Admin - Questions
// @Param question_id path int true "Question ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid Question ID format"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions/{question_id} [delete]
func (c *AdminController) DeleteQuestion(ctx *gin.Context) {
	questionID, ok := parseQuestionID(ctx)
	if !ok {
		return
	}

	if err := c.adminService.DeleteQuestion(questionID); err != nil {
		c.respondError(ctx, "DeleteQuestion", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func parseQuestionID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("question_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Question ID format"})
		return 0, false
	}
	return uint(id), true
}

func (c *AdminController) respondError(ctx *gin.Context, op string, err error) {
	if errors.Is(err, service.ErrQuestionNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Question not found"})
		return
	}
	log.Error().Err(err).Str("op", op).Msg("Admin: Service error")
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error", Details: []string{err.Error()}})
}
