package polls

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/polls/config"
	"github.com/lshigami/polls/internal/dto"
	"github.com/lshigami/polls/internal/service"
	"github.com/rs/zerolog/log"
)

// PollsController serves the public HTML pages: latest questions, detail/vote
// form, results, and the vote POST.
type PollsController struct {
	pollService service.PollService
	base        string
}

func NewPollsController(pollService service.PollService, cfg *config.Config) *PollsController {
	return &PollsController{pollService: pollService, base: cfg.Polls.MountPath}
}

func (c *PollsController) RegisterRoutes(router *gin.Engine) {
	group := router.Group(c.base)
	{
		group.GET("/", c.Index)
		group.GET("/:question_id/", c.Detail)
		group.GET("/:question_id/results/", c.Results)
		group.POST("/:question_id/vote/", c.Vote)
	}
}

// ResultsPath is where a successful vote redirects.
func (c *PollsController) ResultsPath(questionID uint) string {
	return fmt.Sprintf("%s/%d/results/", c.base, questionID)
}

func (c *PollsController) Index(ctx *gin.Context) {
	questions, err := c.pollService.ListLatest()
	if err != nil {
		log.Error().Err(err).Msg("Polls Index: Service error")
		c.renderError(ctx, http.StatusInternalServerError, "Failed to load the latest polls.")
		return
	}
	ctx.HTML(http.StatusOK, "index.html", gin.H{
		"Title":           "Latest polls",
		"Base":            c.base,
		"LatestQuestions": questions,
	})
}

func (c *PollsController) Detail(ctx *gin.Context) {
	c.renderQuestion(ctx, "detail.html", c.pollService.GetDetail)
}

func (c *PollsController) Results(ctx *gin.Context) {
	c.renderQuestion(ctx, "results.html", c.pollService.GetResults)
}

// renderQuestion is the shared fetch-or-404-then-render path of detail and results.
func (c *PollsController) renderQuestion(ctx *gin.Context, page string, fetch func(uint) (*dto.QuestionDetailDTO, error)) {
	questionID, ok := c.questionID(ctx)
	if !ok {
		return
	}

	question, err := fetch(questionID)
	if err != nil {
		c.handleFetchError(ctx, questionID, err)
		return
	}
	ctx.HTML(http.StatusOK, page, gin.H{
		"Title":    question.QuestionText,
		"Base":     c.base,
		"Question": question,
	})
}

func (c *PollsController) Vote(ctx *gin.Context) {
	questionID, ok := c.questionID(ctx)
	if !ok {
		return
	}

	choice, present := ctx.GetPostForm("choice")
	result, err := c.pollService.Vote(questionID, choice, present)
	if err != nil {
		c.handleFetchError(ctx, questionID, err)
		return
	}

	switch result.Outcome {
	case service.VoteRecorded:
		// Redirect so a refresh or back-navigation never resubmits the form.
		ctx.Redirect(http.StatusFound, c.ResultsPath(questionID))
	default:
		ctx.HTML(http.StatusOK, "detail.html", gin.H{
			"Title":        result.Question.QuestionText,
			"Base":         c.base,
			"Question":     result.Question,
			"ErrorMessage": result.ErrorMessage,
		})
	}
}

// questionID parses the path id. Anything that is not a valid id cannot name
// a question, so it is answered with 404 like a missing one.
func (c *PollsController) questionID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("question_id"), 10, 32)
	if err != nil {
		c.renderError(ctx, http.StatusNotFound, "No question matches the given query.")
		return 0, false
	}
	return uint(id), true
}

func (c *PollsController) handleFetchError(ctx *gin.Context, questionID uint, err error) {
	if errors.Is(err, service.ErrQuestionNotFound) {
		c.renderError(ctx, http.StatusNotFound, "No question matches the given query.")
		return
	}
	log.Error().Err(err).Uint("questionID", questionID).Str("path", ctx.Request.URL.Path).Msg("Polls: Service error")
	c.renderError(ctx, http.StatusInternalServerError, "Something went wrong. Please try again later.")
}

func (c *PollsController) renderError(ctx *gin.Context, status int, message string) {
	ctx.HTML(status, "error.html", gin.H{
		"Title":   http.StatusText(status),
		"Base":    c.base,
		"Status":  status,
		"Message": message,
	})
}
