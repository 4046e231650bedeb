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

type QuizService interface {
	Create(actor *model.User, req dto.QuizCreateRequest) (*dto.QuizResponse, error)
	Get(id uint) (*dto.QuizResponse, error)
	Update(actor *model.User, id uint, req dto.QuizUpdateRequest) (*dto.QuizResponse, error)
	Delete(actor *model.User, id uint) error
	Append(actor *model.User, id uint) (*dto.QuizParticipantResponse, error)
	ListEnded(actor *model.User) ([]dto.QuizResponse, error)
	ListWaiting(actor *model.User) ([]dto.QuizResponse, error)
	ListOwned(actor *model.User) ([]dto.QuizResponse, error)
	ListPublic(courseID *uint) ([]dto.QuizResponse, error)
	Participants(quizID uint) ([]dto.QuizParticipantResponse, error)
	ParticipantStats(quizID uint, participantID *uint) ([]dto.QuizParticipantResponse, error)
	MyAnswers(actor *model.User, quizID uint) ([]dto.ParticipantAnswerResponse, error)
	OwnerAnswers(actor *model.User, quizID, participantID uint) ([]dto.ParticipantAnswerResponse, error)
}

type quizService struct {
	quizRepo        repository.QuizRepository
	courseRepo      repository.CourseRepository
	participantRepo repository.QuizParticipantRepository
	answerRepo      repository.ParticipantAnswerRepository
	bus             *event.Bus
	now             func() time.Time
}

func NewQuizService(
	quizRepo repository.QuizRepository,
	courseRepo repository.CourseRepository,
	participantRepo repository.QuizParticipantRepository,
	answerRepo repository.ParticipantAnswerRepository,
	bus *event.Bus,
) QuizService {
	return &quizService{
		quizRepo:        quizRepo,
		courseRepo:      courseRepo,
		participantRepo: participantRepo,
		answerRepo:      answerRepo,
		bus:             bus,
		now:             time.Now,
	}
}

func (s *quizService) Create(actor *model.User, req dto.QuizCreateRequest) (*dto.QuizResponse, error) {
	if !actor.IsApprovedInstructor() {
		return nil, apperr.BadRequest("You should be approved by admin to create a quiz.")
	}
	owned, err := s.courseRepo.CountByOwner(actor.ID)
	if err != nil {
		return nil, err
	}
	if owned == 0 {
		return nil, apperr.BadRequest("You should have at least one course to create a quiz.")
	}
	if req.End.Before(req.Start) {
		return nil, apperr.BadRequest("The quiz cannot end before it starts.")
	}

	var course *model.Course
	if req.CourseID != nil {
		course, err = s.courseRepo.FindByID(*req.CourseID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("Course is not found.")
			}
			return nil, err
		}
		if course.OwnerID == nil || *course.OwnerID != actor.ID {
			return nil, apperr.BadRequest("You are not the owner of this course.")
		}
	}

	slug, err := uniqueSlug(req.Name, s.quizRepo.SlugExists)
	if err != nil {
		return nil, err
	}

	quiz := model.Quiz{
		OwnerID:     actor.ID,
		CourseID:    req.CourseID,
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		Start:       req.Start,
		End:         req.End,
		BeGraded:    req.BeGraded,
		Percentage:  req.Percentage,
		IsPrivate:   true, // instructor-owned quizzes are private by default
	}
	for _, q := range req.Questions {
		quiz.Questions = append(quiz.Questions, model.Question{
			QuestionType: q.QuestionType,
			Question:     q.Question,
			Answer:       q.Answer,
			Point:        q.Point,
			OptionA:      q.OptionA,
			OptionB:      q.OptionB,
			OptionC:      q.OptionC,
			OptionD:      q.OptionD,
		})
	}

	if err := s.quizRepo.Create(&quiz); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("Failed to create quiz")
		return nil, err
	}

	if course != nil {
		s.preRegisterStudents(&quiz, course)
	}

	if err := s.rebalancePercentages(actor.ID, req.CourseID); err != nil {
		log.Error().Err(err).Uint("quizID", quiz.ID).Msg("Percentage rebalance failed after quiz create")
	}

	return s.Get(quiz.ID)
}

// preRegisterStudents appends every enrolled student as a participant and
// notifies them, mirroring what used to be a persistence hook.
func (s *quizService) preRegisterStudents(quiz *model.Quiz, course *model.Course) {
	participants := make([]model.QuizParticipant, 0, len(course.Students))
	emails := make([]string, 0, len(course.Students))
	for i := range course.Students {
		student := course.Students[i]
		participants = append(participants, model.QuizParticipant{
			QuizID:        quiz.ID,
			ParticipantID: student.UserID,
		})
		if student.User != nil {
			emails = append(emails, student.User.Email)
		}
	}

	if err := s.participantRepo.CreateBatch(participants); err != nil {
		log.Error().Err(err).Uint("quizID", quiz.ID).Msg("Failed to pre-register course students")
		return
	}

	s.bus.Publish(event.QuizCreated{
		QuizID:        quiz.ID,
		QuizName:      quiz.Name,
		StudentEmails: emails,
	})
}

func (s *quizService) Get(id uint) (*dto.QuizResponse, error) {
	quiz, err := s.findQuiz(id)
	if err != nil {
		return nil, err
	}
	resp := toQuizResponse(quiz, s.now())
	return &resp, nil
}

func (s *quizService) Update(actor *model.User, id uint, req dto.QuizUpdateRequest) (*dto.QuizResponse, error) {
	quiz, err := s.findOwnedQuiz(actor, id)
	if err != nil {
		return nil, err
	}
	if quiz.IsOpen(s.now()) {
		return nil, apperr.BadRequest("You cannot update the selected quiz because it has already started. You have to wait until it ends.")
	}

	if req.Name != nil {
		quiz.Name = *req.Name
	}
	if req.Description != nil {
		quiz.Description = *req.Description
	}
	if req.CourseID != nil {
		course, err := s.courseRepo.FindByID(*req.CourseID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("Course is not found.")
			}
			return nil, err
		}
		if course.OwnerID == nil || *course.OwnerID != actor.ID {
			return nil, apperr.BadRequest("You are not the owner of this course.")
		}
		quiz.CourseID = req.CourseID
	}
	if req.Start != nil {
		quiz.Start = *req.Start
	}
	if req.End != nil {
		quiz.End = *req.End
	}
	if quiz.End.Before(quiz.Start) {
		return nil, apperr.BadRequest("The quiz cannot end before it starts.")
	}
	if req.BeGraded != nil {
		quiz.BeGraded = *req.BeGraded
	}
	if req.Percentage != nil {
		quiz.Percentage = *req.Percentage
	}

	if err := s.quizRepo.Update(quiz); err != nil {
		return nil, err
	}
	if err := s.rebalancePercentages(quiz.OwnerID, quiz.CourseID); err != nil {
		log.Error().Err(err).Uint("quizID", quiz.ID).Msg("Percentage rebalance failed after quiz update")
	}
	return s.Get(quiz.ID)
}

func (s *quizService) Delete(actor *model.User, id uint) error {
	quiz, err := s.findOwnedQuiz(actor, id)
	if err != nil {
		return err
	}
	if quiz.IsOpen(s.now()) {
		return apperr.BadRequest("You cannot delete the selected quiz because it has already started. You have to wait until it ends.")
	}

	quiz.IsDeleted = true
	if err := s.quizRepo.Update(quiz); err != nil {
		return err
	}
	if err := s.rebalancePercentages(quiz.OwnerID, quiz.CourseID); err != nil {
		log.Error().Err(err).Uint("quizID", quiz.ID).Msg("Percentage rebalance failed after quiz delete")
	}
	return nil
}

func (s *quizService) Append(actor *model.User, id uint) (*dto.QuizParticipantResponse, error) {
	quiz, err := s.findQuiz(id)
	if err != nil {
		return nil, err
	}
	now := s.now()

	if actor.IsInstructor() {
		return nil, apperr.BadRequest("Instructors cannot participate in a quiz.")
	}
	if quiz.OwnerID == actor.ID {
		return nil, apperr.BadRequest("You cannot participate in your own quiz.")
	}
	if len(quiz.Questions) == 0 {
		return nil, apperr.BadRequest("There are no questions to answer. Please contact your instructor to add questions.")
	}
	if quiz.IsPrivate {
		if quiz.Course == nil {
			return nil, apperr.BadRequest("You cannot participate in a private quiz.")
		}
		if !s.enrolled(quiz.Course, actor.ID) {
			return nil, apperr.BadRequest("You cannot participate in a private quiz.")
		}
	}
	if quiz.HasEnded(now) {
		return nil, apperr.BadRequest("Quiz has ended.")
	}
	if now.Before(quiz.Start) {
		return nil, apperr.BadRequest("Quiz has not started yet.")
	}

	if _, err := s.participantRepo.FindByQuizAndParticipant(quiz.ID, actor.ID); err == nil {
		return nil, apperr.BadRequest("You have already participate in this quiz.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	participant := model.QuizParticipant{
		QuizID:        quiz.ID,
		ParticipantID: actor.ID,
	}
	if err := s.participantRepo.Create(&participant); err != nil {
		return nil, err
	}

	participant.Participant = *actor
	resp := toParticipantResponse(&participant)
	return &resp, nil
}

func (s *quizService) ListEnded(actor *model.User) ([]dto.QuizResponse, error) {
	quizzes, err := s.quizRepo.FindEndedByParticipant(actor.ID, s.now())
	if err != nil {
		return nil, err
	}
	return s.toQuizResponses(quizzes), nil
}

func (s *quizService) ListWaiting(actor *model.User) ([]dto.QuizResponse, error) {
	quizzes, err := s.quizRepo.FindWaitingByParticipant(actor.ID, s.now())
	if err != nil {
		return nil, err
	}
	return s.toQuizResponses(quizzes), nil
}

func (s *quizService) ListOwned(actor *model.User) ([]dto.QuizResponse, error) {
	quizzes, err := s.quizRepo.FindByOwner(actor.ID)
	if err != nil {
		return nil, err
	}
	return s.toQuizResponses(quizzes), nil
}

func (s *quizService) ListPublic(courseID *uint) ([]dto.QuizResponse, error) {
	var (
		quizzes []model.Quiz
		err     error
	)
	if courseID != nil {
		quizzes, err = s.quizRepo.FindByCourse(*courseID)
	} else {
		quizzes, err = s.quizRepo.FindPublicOpen(s.now())
	}
	if err != nil {
		return nil, err
	}
	return s.toQuizResponses(quizzes), nil
}

func (s *quizService) Participants(quizID uint) ([]dto.QuizParticipantResponse, error) {
	if _, err := s.findQuiz(quizID); err != nil {
		return nil, err
	}
	participants, err := s.participantRepo.FindByQuiz(quizID)
	if err != nil {
		return nil, err
	}
	return toParticipantResponses(participants), nil
}

func (s *quizService) ParticipantStats(quizID uint, participantID *uint) ([]dto.QuizParticipantResponse, error) {
	if participantID != nil {
		participant, err := s.participantRepo.FindByQuizAndParticipant(quizID, *participantID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return []dto.QuizParticipantResponse{}, nil
			}
			return nil, err
		}
		return []dto.QuizParticipantResponse{toParticipantResponse(participant)}, nil
	}
	participants, err := s.participantRepo.FindByQuiz(quizID)
	if err != nil {
		return nil, err
	}
	return toParticipantResponses(participants), nil
}

// MyAnswers returns the actor's own answers for an ended quiz.
func (s *quizService) MyAnswers(actor *model.User, quizID uint) ([]dto.ParticipantAnswerResponse, error) {
	quiz, err := s.findQuiz(quizID)
	if err != nil {
		return nil, err
	}
	if !quiz.HasEnded(s.now()) {
		return nil, apperr.BadRequest("The quiz has not finished yet.")
	}
	if _, err := s.participantRepo.FindByQuizAndParticipant(quiz.ID, actor.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.BadRequest("You are not in the list of participants.")
		}
		return nil, err
	}

	answers, err := s.answerRepo.FindByQuizAndParticipant(quiz.ID, actor.ID)
	if err != nil {
		return nil, err
	}
	if len(answers) == 0 {
		return nil, apperr.NotFound("You cannot see the results because you have not answer any questions.")
	}
	return toAnswerResponses(answers), nil
}

// OwnerAnswers lets the quiz owner inspect one participant's paper.
func (s *quizService) OwnerAnswers(actor *model.User, quizID, participantID uint) ([]dto.ParticipantAnswerResponse, error) {
	quiz, err := s.findQuiz(quizID)
	if err != nil {
		return nil, err
	}
	if quiz.OwnerID != actor.ID {
		return nil, apperr.NotFound("Quiz is not found.")
	}

	answers, err := s.answerRepo.FindByQuizAndParticipant(quiz.ID, participantID)
	if err != nil {
		return nil, err
	}
	if len(answers) == 0 {
		return nil, apperr.NotFound("Not found any answer for this quiz with this user.")
	}
	return toAnswerResponses(answers), nil
}

// rebalancePercentages redistributes grading weight for one (owner, course)
// group: when the summed percentage of graded quizzes exceeds 100, every such
// quiz gets an equal share.
func (s *quizService) rebalancePercentages(ownerID uint, courseID *uint) error {
	siblings, err := s.quizRepo.FindSiblings(ownerID, courseID)
	if err != nil {
		return err
	}

	graded := make([]model.Quiz, 0, len(siblings))
	total := 0.0
	for _, quiz := range siblings {
		if quiz.BeGraded {
			graded = append(graded, quiz)
			total += quiz.Percentage
		}
	}
	if total <= 100 || len(graded) == 0 {
		return nil
	}

	share := 100.0 / float64(len(graded))
	for i := range graded {
		graded[i].Percentage = share
	}
	return s.quizRepo.SaveAll(graded)
}

func (s *quizService) enrolled(course *model.Course, userID uint) bool {
	for i := range course.Students {
		if course.Students[i].UserID == userID {
			return true
		}
	}
	return false
}

func (s *quizService) findQuiz(id uint) (*model.Quiz, error) {
	quiz, err := s.quizRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Quiz is not found.")
		}
		return nil, err
	}
	if quiz.IsDeleted {
		return nil, apperr.NotFound("Quiz is not found.")
	}
	return quiz, nil
}

func (s *quizService) findOwnedQuiz(actor *model.User, id uint) (*model.Quiz, error) {
	quiz, err := s.findQuiz(id)
	if err != nil {
		return nil, err
	}
	if quiz.OwnerID != actor.ID {
		return nil, apperr.BadRequest("You are not the owner of this quiz.")
	}
	return quiz, nil
}

func (s *quizService) toQuizResponses(quizzes []model.Quiz) []dto.QuizResponse {
	now := s.now()
	resp := make([]dto.QuizResponse, 0, len(quizzes))
	for i := range quizzes {
		resp = append(resp, toQuizResponse(&quizzes[i], now))
	}
	return resp
}

func toParticipantResponses(participants []model.QuizParticipant) []dto.QuizParticipantResponse {
	resp := make([]dto.QuizParticipantResponse, 0, len(participants))
	for i := range participants {
		resp = append(resp, toParticipantResponse(&participants[i]))
	}
	return resp
}

func toAnswerResponses(answers []model.ParticipantAnswer) []dto.ParticipantAnswerResponse {
	resp := make([]dto.ParticipantAnswerResponse, 0, len(answers))
	for i := range answers {
		resp = append(resp, toAnswerResponse(&answers[i]))
	}
	return resp
}
