package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/quizmakerhq/quizmaker/internal/apperr"
	"github.com/quizmakerhq/quizmaker/internal/dto"
	"github.com/quizmakerhq/quizmaker/internal/model"
	"github.com/quizmakerhq/quizmaker/internal/repository"
)

type QuestionService interface {
	Create(actor *model.User, req dto.QuestionCreateRequest) (*dto.QuestionResponse, error)
	Update(actor *model.User, id uint, req dto.QuestionUpdateRequest) (*dto.QuestionResponse, error)
	Delete(actor *model.User, id uint) error
}

type questionService struct {
	questionRepo repository.QuestionRepository
	quizRepo     repository.QuizRepository
	answerRepo   repository.ParticipantAnswerRepository
}

func NewQuestionService(
	questionRepo repository.QuestionRepository,
	quizRepo repository.QuizRepository,
	answerRepo repository.ParticipantAnswerRepository,
) QuestionService {
	return &questionService{
		questionRepo: questionRepo,
		quizRepo:     quizRepo,
		answerRepo:   answerRepo,
	}
}

func (s *questionService) Create(actor *model.User, req dto.QuestionCreateRequest) (*dto.QuestionResponse, error) {
	if !actor.IsApprovedInstructor() {
		return nil, apperr.BadRequest("You should be approved by admin to create a question.")
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
	if quiz.OwnerID != actor.ID {
		return nil, apperr.BadRequest("You are not the owner of this quiz.")
	}

	question := model.Question{
		QuestionType: req.QuestionType,
		Question:     req.Question,
		Answer:       req.Answer,
		Point:        req.Point,
		OptionA:      req.OptionA,
		OptionB:      req.OptionB,
		OptionC:      req.OptionC,
		OptionD:      req.OptionD,
	}
	if err := s.questionRepo.CreateForQuiz(&question, quiz); err != nil {
		return nil, err
	}
	resp := toQuestionResponse(&question)
	return &resp, nil
}

func (s *questionService) Update(actor *model.User, id uint, req dto.QuestionUpdateRequest) (*dto.QuestionResponse, error) {
	if !actor.IsApprovedInstructor() {
		return nil, apperr.BadRequest("You should be approved by admin to create a question.")
	}
	question, err := s.findQuestion(id)
	if err != nil {
		return nil, err
	}

	answered, err := s.answerRepo.ExistsForQuestion(question.ID)
	if err != nil {
		return nil, err
	}
	if answered {
		return nil, apperr.BadRequest("You cannot update a question that has submitted answers.")
	}

	if req.QuestionType != nil {
		question.QuestionType = *req.QuestionType
	}
	if req.Question != nil {
		question.Question = *req.Question
	}
	if req.Answer != nil {
		question.Answer = *req.Answer
	}
	if req.Point != nil {
		question.Point = *req.Point
	}
	if req.OptionA != nil {
		question.OptionA = req.OptionA
	}
	if req.OptionB != nil {
		question.OptionB = req.OptionB
	}
	if req.OptionC != nil {
		question.OptionC = req.OptionC
	}
	if req.OptionD != nil {
		question.OptionD = req.OptionD
	}

	if err := s.questionRepo.Update(question); err != nil {
		return nil, err
	}
	resp := toQuestionResponse(question)
	return &resp, nil
}

func (s *questionService) Delete(actor *model.User, id uint) error {
	if !actor.IsApprovedInstructor() {
		return apperr.BadRequest("You should be approved by admin to create a question.")
	}
	question, err := s.findQuestion(id)
	if err != nil {
		return err
	}

	answered, err := s.answerRepo.ExistsForQuestion(question.ID)
	if err != nil {
		return err
	}
	if answered {
		return apperr.BadRequest("You cannot delete a question that has submitted answers.")
	}

	return s.questionRepo.Delete(question.ID)
}

func (s *questionService) findQuestion(id uint) (*model.Question, error) {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Question is not found.")
		}
		return nil, err
	}
	return question, nil
}
