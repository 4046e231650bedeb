package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/quizmakerhq/quizmaker/internal/dto"
	"github.com/quizmakerhq/quizmaker/internal/middleware"
)

// CreateQuizHandler godoc
// @Summary Create a quiz
// @Description Approved instructors with at least one course only. Questions can be supplied inline. Students of the attached course are pre-registered and notified.
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quiz body dto.QuizCreateRequest true "Quiz data"
// @Success 201 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /quizzes [post]
func (ctrl *Controller) CreateQuizHandler(c *gin.Context) {
	var req dto.QuizCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind QuizCreateRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	resp, err := ctrl.quizSvc.Create(middleware.CurrentUser(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListPublicQuizzesHandler godoc
// @Summary List open public quizzes
// @Description Without course_id, lists public quizzes that are still open and have questions. With course_id, lists that course's quizzes.
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param course_id query int false "Filter by course"
// @Success 200 {array} dto.QuizResponse
// @Router /quizzes [get]
func (ctrl *Controller) ListPublicQuizzesHandler(c *gin.Context) {
	var courseID *uint
	if raw := c.Query("course_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid course_id format"})
			return
		}
		id := uint(parsed)
		courseID = &id
	}

	resp, err := ctrl.quizSvc.ListPublic(courseID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListOwnedQuizzesHandler godoc
// @Summary List quizzes owned by the authenticated instructor
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.QuizResponse
// @Router /quizzes/owner [get]
func (ctrl *Controller) ListOwnedQuizzesHandler(c *gin.Context) {
	resp, err := ctrl.quizSvc.ListOwned(middleware.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListEndedQuizzesHandler godoc
// @Summary List ended quizzes the authenticated student participated in
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.QuizResponse
// @Router /quizzes/participator/end [get]
func (ctrl *Controller) ListEndedQuizzesHandler(c *gin.Context) {
	resp, err := ctrl.quizSvc.ListEnded(middleware.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListWaitingQuizzesHandler godoc
// @Summary List pending quizzes the authenticated student participates in
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.QuizResponse
// @Router /quizzes/participator/waiting [get]
func (ctrl *Controller) ListWaitingQuizzesHandler(c *gin.Context) {
	resp, err := ctrl.quizSvc.ListWaiting(middleware.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetQuizHandler godoc
// @Summary Get a quiz with its questions and participants
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Success 200 {object} dto.QuizResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quizzes/{id} [get]
func (ctrl *Controller) GetQuizHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := ctrl.quizSvc.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateQuizHandler godoc
// @Summary Update a quiz
// @Description Owner only. Rejected while the quiz is open.
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Param quiz body dto.QuizUpdateRequest true "Fields to update"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quizzes/{id} [put]
func (ctrl *Controller) UpdateQuizHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.QuizUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	resp, err := ctrl.quizSvc.Update(middleware.CurrentUser(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteQuizHandler godoc
// @Summary Delete a quiz
// @Description Owner only. Rejected while the quiz is open. The quiz is hidden, not erased.
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quizzes/{id} [delete]
func (ctrl *Controller) DeleteQuizHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.quizSvc.Delete(middleware.CurrentUser(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "The quiz has been deleted."})
}

// AppendQuizHandler godoc
// @Summary Join a quiz as a participant
// @Description Students only, while the quiz window is open.
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Success 201 {object} dto.QuizParticipantResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quizzes/{id}/append [post]
func (ctrl *Controller) AppendQuizHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := ctrl.quizSvc.Append(middleware.CurrentUser(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// QuizParticipantsHandler godoc
// @Summary List a quiz's participants
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Success 200 {array} dto.QuizParticipantResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quizzes/{id}/participants [get]
func (ctrl *Controller) QuizParticipantsHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := ctrl.quizSvc.Participants(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// QuizParticipantStatsHandler godoc
// @Summary Get grade and completion stats for a quiz
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Param participant_id query int false "Limit to one participant"
// @Success 200 {array} dto.QuizParticipantResponse
// @Router /quizzes/{id}/stats [get]
func (ctrl *Controller) QuizParticipantStatsHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var participantID *uint
	if raw := c.Query("participant_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid participant_id format"})
			return
		}
		pid := uint(parsed)
		participantID = &pid
	}

	resp, err := ctrl.quizSvc.ParticipantStats(id, participantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MyAnswersHandler godoc
// @Summary Get the authenticated participant's answers for an ended quiz
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Success 200 {array} dto.ParticipantAnswerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quizzes/{id}/answers [get]
func (ctrl *Controller) MyAnswersHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := ctrl.quizSvc.MyAnswers(middleware.CurrentUser(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// OwnerAnswersHandler godoc
// @Summary Get one participant's answers as the quiz owner
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Param participant_id path int true "Participant user ID"
// @Success 200 {array} dto.ParticipantAnswerResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quizzes/{id}/answers/{participant_id} [get]
func (ctrl *Controller) OwnerAnswersHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	participantID, ok := parseID(c, "participant_id")
	if !ok {
		return
	}
	resp, err := ctrl.quizSvc.OwnerAnswers(middleware.CurrentUser(c), id, participantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
