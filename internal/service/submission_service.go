package service

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/quizmakerhq/quizmaker/internal/apperr"
	"github.com/quizmakerhq/quizmaker/internal/dto"
	"github.com/quizmakerhq/quizmaker/internal/event"
	"github.com/quizmakerhq/quizmaker/internal/model"
	"github.com/quizmakerhq/quizmaker/internal/repository"
)

type SubmissionService interface {
	SubmitAnswers(actor *model.User, req dto.AnswerBatchRequest) ([]dto.ParticipantAnswerResponse, error)
	GradePaper(actor *model.User, req dto.GradeBatchRequest) ([]dto.GradeErrorResponse, error)
}

type submissionService struct {
	quizRepo        repository.QuizRepository
	participantRepo repository.QuizParticipantRepository
	answerRepo      repository.ParticipantAnswerRepository
	userRepo        repository.UserRepository
	bus             *event.Bus
	now             func() time.Time
}

func NewSubmissionService(
	quizRepo repository.QuizRepository,
	participantRepo repository.QuizParticipantRepository,
	answerRepo repository.ParticipantAnswerRepository,
	userRepo repository.UserRepository,
	bus *event.Bus,
) SubmissionService {
	return &submissionService{
		quizRepo:        quizRepo,
		participantRepo: participantRepo,
		answerRepo:      answerRepo,
		userRepo:        userRepo,
		bus:             bus,
		now:             time.Now,
	}
}

// SubmitAnswers stores one participant's paper. Choice questions are scored
// immediately; text questions wait for the owner to grade them.
func (s *submissionService) SubmitAnswers(actor *model.User, req dto.AnswerBatchRequest) ([]dto.ParticipantAnswerResponse, error) {
	if actor.IsInstructor() {
		return nil, apperr.BadRequest("Instructors neither append a quiz nor answer a question.")
	}

	quiz, err := s.quizRepo.FindByID(req.QuizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Quiz is not found.")
		}
		return nil, err
	}
	if quiz.IsDeleted {
		return nil, apperr.NotFound("Quiz is not found.")
	}

	participant, err := s.participantRepo.FindByQuizAndParticipant(quiz.ID, actor.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.BadRequest("You must first append to quiz to answer questions.")
		}
		return nil, err
	}

	now := s.now()
	if quiz.HasEnded(now) {
		return nil, apperr.BadRequest("Quiz has ended.")
	}
	if now.Before(quiz.Start) {
		return nil, apperr.BadRequest("Quiz has not started yet.")
	}

	existing, err := s.answerRepo.FindByQuizAndParticipant(quiz.ID, actor.ID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, apperr.BadRequest("You have already answered this quiz.")
	}

	questions := make(map[uint]*model.Question, len(quiz.Questions))
	for i := range quiz.Questions {
		questions[quiz.Questions[i].ID] = &quiz.Questions[i]
	}

	answers := make([]model.ParticipantAnswer, 0, len(req.Answers))
	for _, item := range req.Answers {
		question, ok := questions[item.QuestionID]
		if !ok {
			return nil, apperr.BadRequest("This question does not belong to this quiz.")
		}
		answer := model.ParticipantAnswer{
			QuizID:        quiz.ID,
			QuestionID:    question.ID,
			ParticipantID: actor.ID,
			Answer:        item.Answer,
		}
		if question.AutoGradable() {
			answer.IsValidated = true
			if question.Matches(item.Answer) {
				answer.IsCorrect = true
				answer.Point = question.Point
			}
		}
		answers = append(answers, answer)
	}

	if err := s.answerRepo.CreateBatch(answers); err != nil {
		log.Error().Err(err).Uint("quizID", quiz.ID).Uint("participantID", actor.ID).Msg("Failed to store submission")
		return nil, err
	}

	participant.Grade = gradeFromAnswers(answers)
	if len(quiz.Questions) > 0 {
		participant.Completion = float64(len(answers)) / float64(len(quiz.Questions)) * 100
	}
	if req.FinishedIn != nil {
		participant.FinishedIn = req.FinishedIn
	} else {
		participant.FinishedIn = &now
	}
	if err := s.participantRepo.Update(participant); err != nil {
		return nil, err
	}

	stored, err := s.answerRepo.FindByQuizAndParticipant(quiz.ID, actor.ID)
	if err != nil {
		return nil, err
	}
	return toAnswerResponses(stored), nil
}

// GradePaper applies an instructor's points to one participant's answers.
// Any invalid item aborts the whole batch and is reported back instead.
func (s *submissionService) GradePaper(actor *model.User, req dto.GradeBatchRequest) ([]dto.GradeErrorResponse, error) {
	if !actor.IsInstructor() {
		return []dto.GradeErrorResponse{{
			Message: "Only instructors can grade a quiz paper.",
		}}, nil
	}

	quiz, err := s.quizRepo.FindByID(req.QuizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Quiz is not found.")
		}
		return nil, err
	}
	if quiz.IsDeleted || quiz.OwnerID != actor.ID {
		return nil, apperr.NotFound("Quiz is not found.")
	}

	participant, err := s.participantRepo.FindByQuizAndParticipant(quiz.ID, req.ParticipantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Not found any answer for this quiz with this user.")
		}
		return nil, err
	}

	var (
		graded    []model.ParticipantAnswer
		gradeErrs []dto.GradeErrorResponse
	)
	for _, item := range req.Answers {
		answer, err := s.answerRepo.FindOne(quiz.ID, item.QuestionID, req.ParticipantID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		if item.Point > answer.Question.Point {
			gradeErrs = append(gradeErrs, dto.GradeErrorResponse{
				Message:       "Question point is greater than given point.",
				QuestionID:    item.QuestionID,
				QuestionPoint: answer.Question.Point,
				Point:         item.Point,
			})
			continue
		}
		answer.Point = item.Point
		answer.IsCorrect = item.Point > 0
		answer.IsValidated = true
		graded = append(graded, *answer)
	}
	if len(gradeErrs) > 0 {
		return gradeErrs, nil
	}

	if err := s.answerRepo.SaveBatch(graded); err != nil {
		return nil, err
	}

	all, err := s.answerRepo.FindByQuizAndParticipant(quiz.ID, req.ParticipantID)
	if err != nil {
		return nil, err
	}
	participant.Grade = gradeFromAnswers(all)
	if err := s.participantRepo.Update(participant); err != nil {
		return nil, err
	}

	if student, err := s.userRepo.FindByID(req.ParticipantID); err == nil {
		s.bus.Publish(event.PaperGraded{
			QuizID:           quiz.ID,
			ParticipantID:    req.ParticipantID,
			ParticipantEmail: student.Email,
			Grade:            participant.Grade,
		})
	} else {
		log.Error().Err(err).Uint("participantID", req.ParticipantID).Msg("Failed to load participant for grading notice")
	}

	return nil, nil
}

// gradeFromAnswers sums validated points and caps the result at 100.
func gradeFromAnswers(answers []model.ParticipantAnswer) float64 {
	total := 0
	for _, answer := range answers {
		if answer.IsValidated {
			total += answer.Point
		}
	}
	if total > 100 {
		total = 100
	}
	return float64(total)
}
