package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/quizmakerhq/quizmaker/internal/dto"
	"github.com/quizmakerhq/quizmaker/internal/middleware"
)

// SubmitAnswersHandler godoc
// @Summary Submit answers for a quiz
// @Description Students only, once per quiz, while the window is open. Choice questions are scored immediately.
// @Tags answers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param answers body dto.AnswerBatchRequest true "Answer batch"
// @Success 201 {array} dto.ParticipantAnswerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /answers [post]
func (ctrl *Controller) SubmitAnswersHandler(c *gin.Context) {
	var req dto.AnswerBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind AnswerBatchRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	resp, err := ctrl.submissionSvc.SubmitAnswers(middleware.CurrentUser(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GradePaperHandler godoc
// @Summary Grade one participant's paper
// @Description Quiz owner only. Either every point is applied or none: invalid items are reported back and nothing is written.
// @Tags answers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param grades body dto.GradeBatchRequest true "Points per question"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {array} dto.GradeErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /answers/validate [post]
func (ctrl *Controller) GradePaperHandler(c *gin.Context) {
	var req dto.GradeBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	gradeErrs, err := ctrl.submissionSvc.GradePaper(middleware.CurrentUser(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(gradeErrs) > 0 {
		c.JSON(http.StatusBadRequest, gradeErrs)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "The paper has been graded."})
}
