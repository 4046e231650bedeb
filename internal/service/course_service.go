package service

import (
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/quizmakerhq/quizmaker/internal/apperr"
	"github.com/quizmakerhq/quizmaker/internal/dto"
	"github.com/quizmakerhq/quizmaker/internal/model"
	"github.com/quizmakerhq/quizmaker/internal/repository"
)

type CourseService interface {
	Create(actor *model.User, req dto.CourseCreateRequest) (*dto.CourseResponse, error)
	Get(id uint) (*dto.CourseResponse, error)
	List(actor *model.User) ([]dto.CourseResponse, error)
	ListOwned(actor *model.User) ([]dto.CourseResponse, error)
	ListEnrolled(actor *model.User) ([]dto.CourseResponse, error)
	Update(actor *model.User, id uint, req dto.CourseUpdateRequest) (*dto.CourseResponse, error)
	Delete(actor *model.User, id uint) error
	AddStudent(actor *model.User, courseID, studentUserID uint) (*dto.CourseResponse, error)
	RemoveStudent(actor *model.User, courseID, studentUserID uint) (*dto.CourseResponse, error)
}

type courseService struct {
	courseRepo repository.CourseRepository
	userRepo   repository.UserRepository
}

func NewCourseService(courseRepo repository.CourseRepository, userRepo repository.UserRepository) CourseService {
	return &courseService{courseRepo: courseRepo, userRepo: userRepo}
}

func (s *courseService) Create(actor *model.User, req dto.CourseCreateRequest) (*dto.CourseResponse, error) {
	if !actor.IsApprovedInstructor() {
		return nil, apperr.BadRequest("Only instructors can create a course.")
	}

	slug, err := uniqueSlug(req.Name, s.courseRepo.SlugExists)
	if err != nil {
		return nil, err
	}

	ownerID := actor.ID
	course := model.Course{
		OwnerID: &ownerID,
		Name:    req.Name,
		Slug:    slug,
	}
	if err := s.courseRepo.Create(&course); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("Failed to create course")
		return nil, err
	}

	resp := toCourseResponse(&course)
	return &resp, nil
}

func (s *courseService) Get(id uint) (*dto.CourseResponse, error) {
	course, err := s.findCourse(id)
	if err != nil {
		return nil, err
	}
	resp := toCourseResponse(course)
	return &resp, nil
}

func (s *courseService) List(actor *model.User) ([]dto.CourseResponse, error) {
	if actor.IsInstructor() && !actor.IsApprovedInstructor() {
		return nil, apperr.BadRequest("You should be approved by any admin to see the result.")
	}
	courses, err := s.courseRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return toCourseResponses(courses), nil
}

func (s *courseService) ListOwned(actor *model.User) ([]dto.CourseResponse, error) {
	if !actor.IsInstructor() {
		return nil, apperr.BadRequest("Courses is not available for this user type.")
	}
	if !actor.IsApprovedInstructor() {
		return nil, apperr.BadRequest("You should be approved by any admin to see the result.")
	}
	courses, err := s.courseRepo.FindByOwner(actor.ID)
	if err != nil {
		return nil, err
	}
	return toCourseResponses(courses), nil
}

func (s *courseService) ListEnrolled(actor *model.User) ([]dto.CourseResponse, error) {
	if !actor.IsStudent() {
		return nil, apperr.BadRequest("Courses is not available for this user type.")
	}
	courses, err := s.courseRepo.FindByStudent(actor.ID)
	if err != nil {
		return nil, err
	}
	return toCourseResponses(courses), nil
}

func (s *courseService) Update(actor *model.User, id uint, req dto.CourseUpdateRequest) (*dto.CourseResponse, error) {
	course, err := s.findOwnedCourse(actor, id)
	if err != nil {
		return nil, err
	}

	course.Name = req.Name
	if err := s.courseRepo.Update(course); err != nil {
		return nil, err
	}
	resp := toCourseResponse(course)
	return &resp, nil
}

func (s *courseService) Delete(actor *model.User, id uint) error {
	course, err := s.findOwnedCourse(actor, id)
	if err != nil {
		return err
	}
	return s.courseRepo.Delete(course.ID)
}

func (s *courseService) AddStudent(actor *model.User, courseID, studentUserID uint) (*dto.CourseResponse, error) {
	course, student, err := s.rosterTarget(actor, courseID, studentUserID)
	if err != nil {
		return nil, err
	}
	for i := range course.Students {
		if course.Students[i].UserID == student.UserID {
			return nil, apperr.BadRequest("The student is already in this course.")
		}
	}
	if err := s.courseRepo.AddStudent(course, student); err != nil {
		return nil, err
	}
	return s.Get(course.ID)
}

func (s *courseService) RemoveStudent(actor *model.User, courseID, studentUserID uint) (*dto.CourseResponse, error) {
	course, student, err := s.rosterTarget(actor, courseID, studentUserID)
	if err != nil {
		return nil, err
	}
	if err := s.courseRepo.RemoveStudent(course, student); err != nil {
		return nil, err
	}
	return s.Get(course.ID)
}

func (s *courseService) rosterTarget(actor *model.User, courseID, studentUserID uint) (*model.Course, *model.Student, error) {
	course, err := s.findOwnedCourse(actor, courseID)
	if err != nil {
		return nil, nil, err
	}
	user, err := s.userRepo.FindByID(studentUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperr.NotFound("User is not found.")
		}
		return nil, nil, err
	}
	if !user.IsStudent() || user.Student == nil {
		return nil, nil, apperr.BadRequest("Only students can be enrolled in a course.")
	}
	return course, user.Student, nil
}

func (s *courseService) findCourse(id uint) (*model.Course, error) {
	course, err := s.courseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Course is not found.")
		}
		return nil, err
	}
	return course, nil
}

func (s *courseService) findOwnedCourse(actor *model.User, id uint) (*model.Course, error) {
	if !actor.IsApprovedInstructor() {
		return nil, apperr.BadRequest("Only instructors can manage a course.")
	}
	course, err := s.findCourse(id)
	if err != nil {
		return nil, err
	}
	if course.OwnerID == nil || *course.OwnerID != actor.ID {
		return nil, apperr.BadRequest("You are not the owner of this course.")
	}
	return course, nil
}

func toCourseResponses(courses []model.Course) []dto.CourseResponse {
	resp := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		resp = append(resp, toCourseResponse(&courses[i]))
	}
	return resp
}
