package service

import (
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/quizmakerhq/quizmaker/internal/model"
)

// In-memory repositories backing the service tests.

type fakeUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*model.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(user *model.User) error {
	user.ID = r.nextID
	r.nextID++
	if user.Instructor != nil {
		user.Instructor.UserID = user.ID
	}
	if user.Student != nil {
		user.Student.UserID = user.ID
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(id uint) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByLogin(usernameOrEmail string) (*model.User, error) {
	for _, user := range r.users {
		if strings.EqualFold(user.Username, usernameOrEmail) || strings.EqualFold(user.Email, usernameOrEmail) {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(user *model.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UsernameExists(username string) (bool, error) {
	_, err := r.FindByLogin(username)
	return err == nil, nil
}

func (r *fakeUserRepo) EmailExists(email string) (bool, error) {
	_, err := r.FindByEmail(email)
	return err == nil, nil
}

func (r *fakeUserRepo) StudentIDExists(studentID string) (bool, error) {
	for _, user := range r.users {
		if user.Student != nil && user.Student.StudentID == studentID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) FindStudents() ([]model.Student, error) {
	var students []model.Student
	for _, user := range r.users {
		if user.Student != nil {
			student := *user.Student
			student.User = user
			students = append(students, student)
		}
	}
	return students, nil
}

type fakeCourseRepo struct {
	courses map[uint]*model.Course
	nextID  uint
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: map[uint]*model.Course{}, nextID: 1}
}

func (r *fakeCourseRepo) Create(course *model.Course) error {
	course.ID = r.nextID
	r.nextID++
	r.courses[course.ID] = course
	return nil
}

func (r *fakeCourseRepo) FindByID(id uint) (*model.Course, error) {
	course, ok := r.courses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return course, nil
}

func (r *fakeCourseRepo) FindAll() ([]model.Course, error) {
	var courses []model.Course
	for _, course := range r.courses {
		courses = append(courses, *course)
	}
	return courses, nil
}

func (r *fakeCourseRepo) FindByOwner(instructorID uint) ([]model.Course, error) {
	var courses []model.Course
	for _, course := range r.courses {
		if course.OwnerID != nil && *course.OwnerID == instructorID {
			courses = append(courses, *course)
		}
	}
	return courses, nil
}

func (r *fakeCourseRepo) FindByStudent(userID uint) ([]model.Course, error) {
	var courses []model.Course
	for _, course := range r.courses {
		for _, student := range course.Students {
			if student.UserID == userID {
				courses = append(courses, *course)
				break
			}
		}
	}
	return courses, nil
}

func (r *fakeCourseRepo) CountByOwner(instructorID uint) (int64, error) {
	courses, _ := r.FindByOwner(instructorID)
	return int64(len(courses)), nil
}

func (r *fakeCourseRepo) SlugExists(slug string) (bool, error) {
	for _, course := range r.courses {
		if course.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCourseRepo) Update(course *model.Course) error {
	r.courses[course.ID] = course
	return nil
}

func (r *fakeCourseRepo) Delete(id uint) error {
	delete(r.courses, id)
	return nil
}

func (r *fakeCourseRepo) AddStudent(course *model.Course, student *model.Student) error {
	course.Students = append(course.Students, *student)
	r.courses[course.ID] = course
	return nil
}

func (r *fakeCourseRepo) RemoveStudent(course *model.Course, student *model.Student) error {
	kept := course.Students[:0]
	for _, existing := range course.Students {
		if existing.UserID != student.UserID {
			kept = append(kept, existing)
		}
	}
	course.Students = kept
	r.courses[course.ID] = course
	return nil
}

type fakeQuizRepo struct {
	quizzes map[uint]*model.Quiz
	nextID  uint
}

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{quizzes: map[uint]*model.Quiz{}, nextID: 1}
}

func (r *fakeQuizRepo) Create(quiz *model.Quiz) error {
	quiz.ID = r.nextID
	r.nextID++
	for i := range quiz.Questions {
		quiz.Questions[i].ID = quiz.ID*100 + uint(i) + 1
	}
	r.quizzes[quiz.ID] = quiz
	return nil
}

func (r *fakeQuizRepo) FindByID(id uint) (*model.Quiz, error) {
	quiz, ok := r.quizzes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return quiz, nil
}

func (r *fakeQuizRepo) Update(quiz *model.Quiz) error {
	r.quizzes[quiz.ID] = quiz
	return nil
}

func (r *fakeQuizRepo) SaveAll(quizzes []model.Quiz) error {
	for i := range quizzes {
		stored, ok := r.quizzes[quizzes[i].ID]
		if !ok {
			return gorm.ErrRecordNotFound
		}
		stored.Percentage = quizzes[i].Percentage
	}
	return nil
}

func (r *fakeQuizRepo) SlugExists(slug string) (bool, error) {
	for _, quiz := range r.quizzes {
		if quiz.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeQuizRepo) FindSiblings(ownerID uint, courseID *uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	for _, quiz := range r.quizzes {
		if quiz.OwnerID != ownerID || quiz.IsDeleted {
			continue
		}
		if (courseID == nil) != (quiz.CourseID == nil) {
			continue
		}
		if courseID != nil && *courseID != *quiz.CourseID {
			continue
		}
		quizzes = append(quizzes, *quiz)
	}
	return quizzes, nil
}

func (r *fakeQuizRepo) FindEndedByParticipant(userID uint, now time.Time) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	for _, quiz := range r.quizzes {
		if quiz.IsDeleted || quiz.End.After(now) {
			continue
		}
		if r.hasParticipant(quiz, userID) {
			quizzes = append(quizzes, *quiz)
		}
	}
	return quizzes, nil
}

func (r *fakeQuizRepo) FindWaitingByParticipant(userID uint, now time.Time) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	for _, quiz := range r.quizzes {
		if quiz.IsDeleted || !quiz.End.After(now) {
			continue
		}
		if r.hasParticipant(quiz, userID) {
			quizzes = append(quizzes, *quiz)
		}
	}
	return quizzes, nil
}

func (r *fakeQuizRepo) hasParticipant(quiz *model.Quiz, userID uint) bool {
	for _, p := range quiz.Participants {
		if p.ParticipantID == userID {
			return true
		}
	}
	return false
}

func (r *fakeQuizRepo) FindByOwner(ownerID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	for _, quiz := range r.quizzes {
		if quiz.OwnerID == ownerID && !quiz.IsDeleted {
			quizzes = append(quizzes, *quiz)
		}
	}
	return quizzes, nil
}

func (r *fakeQuizRepo) FindByCourse(courseID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	for _, quiz := range r.quizzes {
		if quiz.CourseID != nil && *quiz.CourseID == courseID && !quiz.IsDeleted {
			quizzes = append(quizzes, *quiz)
		}
	}
	return quizzes, nil
}

func (r *fakeQuizRepo) FindPublicOpen(now time.Time) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	for _, quiz := range r.quizzes {
		if quiz.IsPrivate || quiz.IsDeleted || !quiz.End.After(now) || len(quiz.Questions) == 0 {
			continue
		}
		quizzes = append(quizzes, *quiz)
	}
	return quizzes, nil
}

type fakeParticipantRepo struct {
	participants map[uint]*model.QuizParticipant
	nextID       uint
}

func newFakeParticipantRepo() *fakeParticipantRepo {
	return &fakeParticipantRepo{participants: map[uint]*model.QuizParticipant{}, nextID: 1}
}

func (r *fakeParticipantRepo) Create(participant *model.QuizParticipant) error {
	participant.ID = r.nextID
	r.nextID++
	r.participants[participant.ID] = participant
	return nil
}

func (r *fakeParticipantRepo) CreateBatch(participants []model.QuizParticipant) error {
	for i := range participants {
		if err := r.Create(&participants[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeParticipantRepo) Update(participant *model.QuizParticipant) error {
	r.participants[participant.ID] = participant
	return nil
}

func (r *fakeParticipantRepo) FindByQuizAndParticipant(quizID, participantID uint) (*model.QuizParticipant, error) {
	for _, p := range r.participants {
		if p.QuizID == quizID && p.ParticipantID == participantID {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeParticipantRepo) FindByQuiz(quizID uint) ([]model.QuizParticipant, error) {
	var participants []model.QuizParticipant
	for _, p := range r.participants {
		if p.QuizID == quizID {
			participants = append(participants, *p)
		}
	}
	return participants, nil
}

type fakeAnswerRepo struct {
	answers map[uint]*model.ParticipantAnswer
	quizzes *fakeQuizRepo
	nextID  uint
}

// preloadQuestion mirrors the gorm repository's Preload("Question") on reads.
func (r *fakeAnswerRepo) preloadQuestion(answer *model.ParticipantAnswer) {
	if r.quizzes == nil {
		return
	}
	for _, quiz := range r.quizzes.quizzes {
		for i := range quiz.Questions {
			if quiz.Questions[i].ID == answer.QuestionID {
				answer.Question = quiz.Questions[i]
				return
			}
		}
	}
}

func newFakeAnswerRepo() *fakeAnswerRepo {
	return &fakeAnswerRepo{answers: map[uint]*model.ParticipantAnswer{}, nextID: 1}
}

func (r *fakeAnswerRepo) CreateBatch(answers []model.ParticipantAnswer) error {
	for i := range answers {
		answers[i].ID = r.nextID
		r.nextID++
		stored := answers[i]
		r.answers[stored.ID] = &stored
	}
	return nil
}

func (r *fakeAnswerRepo) SaveBatch(answers []model.ParticipantAnswer) error {
	for i := range answers {
		if _, ok := r.answers[answers[i].ID]; !ok {
			return gorm.ErrRecordNotFound
		}
		stored := answers[i]
		r.answers[stored.ID] = &stored
	}
	return nil
}

func (r *fakeAnswerRepo) FindByQuizAndParticipant(quizID, participantID uint) ([]model.ParticipantAnswer, error) {
	var answers []model.ParticipantAnswer
	for _, answer := range r.answers {
		if answer.QuizID == quizID && answer.ParticipantID == participantID {
			copied := *answer
			r.preloadQuestion(&copied)
			answers = append(answers, copied)
		}
	}
	sort.Slice(answers, func(i, j int) bool { return answers[i].QuestionID < answers[j].QuestionID })
	return answers, nil
}

func (r *fakeAnswerRepo) FindOne(quizID, questionID, participantID uint) (*model.ParticipantAnswer, error) {
	for _, answer := range r.answers {
		if answer.QuizID == quizID && answer.QuestionID == questionID && answer.ParticipantID == participantID {
			copied := *answer
			r.preloadQuestion(&copied)
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAnswerRepo) ExistsForQuestion(questionID uint) (bool, error) {
	for _, answer := range r.answers {
		if answer.QuestionID == questionID {
			return true, nil
		}
	}
	return false, nil
}

type fakeQuestionRepo struct {
	questions map[uint]*model.Question
	nextID    uint
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{questions: map[uint]*model.Question{}, nextID: 1}
}

func (r *fakeQuestionRepo) CreateForQuiz(question *model.Question, quiz *model.Quiz) error {
	question.ID = r.nextID
	r.nextID++
	r.questions[question.ID] = question
	quiz.Questions = append(quiz.Questions, *question)
	return nil
}

func (r *fakeQuestionRepo) FindByID(id uint) (*model.Question, error) {
	question, ok := r.questions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return question, nil
}

func (r *fakeQuestionRepo) Update(question *model.Question) error {
	r.questions[question.ID] = question
	return nil
}

func (r *fakeQuestionRepo) Delete(id uint) error {
	delete(r.questions, id)
	return nil
}
