package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizmakerhq/quizmaker/internal/dto"
	"github.com/quizmakerhq/quizmaker/internal/event"
	"github.com/quizmakerhq/quizmaker/internal/model"
)

type quizFixture struct {
	userRepo        *fakeUserRepo
	courseRepo      *fakeCourseRepo
	quizRepo        *fakeQuizRepo
	participantRepo *fakeParticipantRepo
	answerRepo      *fakeAnswerRepo
	bus             *event.Bus
	svc             *quizService
	now             time.Time
}

func newQuizFixture(t *testing.T) *quizFixture {
	t.Helper()
	f := &quizFixture{
		userRepo:        newFakeUserRepo(),
		courseRepo:      newFakeCourseRepo(),
		quizRepo:        newFakeQuizRepo(),
		participantRepo: newFakeParticipantRepo(),
		answerRepo:      newFakeAnswerRepo(),
		bus:             event.NewBus(),
		now:             time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}
	f.answerRepo.quizzes = f.quizRepo
	f.svc = &quizService{
		quizRepo:        f.quizRepo,
		courseRepo:      f.courseRepo,
		participantRepo: f.participantRepo,
		answerRepo:      f.answerRepo,
		bus:             f.bus,
		now:             func() time.Time { return f.now },
	}
	return f
}

func (f *quizFixture) seedCourse(t *testing.T, owner *model.User, students ...*model.User) *model.Course {
	t.Helper()
	course := &model.Course{OwnerID: &owner.ID, Name: "Course", Slug: "course"}
	for _, student := range students {
		member := *student.Student
		member.User = student
		course.Students = append(course.Students, member)
	}
	require.NoError(t, f.courseRepo.Create(course))
	return course
}

func (f *quizFixture) createRequest(start, end time.Time) dto.QuizCreateRequest {
	return dto.QuizCreateRequest{
		Name:       "Midterm",
		Start:      start,
		End:        end,
		BeGraded:   true,
		Percentage: 40,
		Questions: []dto.QuizQuestionPayload{
			{QuestionType: model.QuestionTypeText, Question: "Explain deadlock.", Point: 10},
		},
	}
}

func TestCreateQuizRequiresApproval(t *testing.T) {
	f := newQuizFixture(t)
	unapproved := seedInstructor(t, f.userRepo, "newbie", false)

	_, err := f.svc.Create(unapproved, f.createRequest(f.now, f.now.Add(time.Hour)))
	require.Error(t, err)
	assert.Equal(t, "You should be approved by admin to create a quiz.", err.Error())
}

func TestCreateQuizRequiresCourse(t *testing.T) {
	f := newQuizFixture(t)
	instructor := seedInstructor(t, f.userRepo, "grace", true)

	_, err := f.svc.Create(instructor, f.createRequest(f.now, f.now.Add(time.Hour)))
	require.Error(t, err)
	assert.Equal(t, "You should have at least one course to create a quiz.", err.Error())
}

func TestCreateQuizPreRegistersCourseStudents(t *testing.T) {
	f := newQuizFixture(t)
	instructor := seedInstructor(t, f.userRepo, "grace", true)
	student := seedStudent(t, f.userRepo, "ada", "secret123")
	course := f.seedCourse(t, instructor, student)

	var published []event.Event
	f.bus.Subscribe(event.QuizCreatedName, func(e event.Event) { published = append(published, e) })

	req := f.createRequest(f.now.Add(time.Hour), f.now.Add(2*time.Hour))
	req.CourseID = &course.ID
	resp, err := f.svc.Create(instructor, req)
	require.NoError(t, err)
	assert.True(t, resp.IsPrivate)
	assert.Equal(t, model.QuizStatusScheduled, resp.Status)

	participant, err := f.participantRepo.FindByQuizAndParticipant(resp.ID, student.ID)
	require.NoError(t, err)
	assert.Equal(t, student.ID, participant.ParticipantID)

	require.Len(t, published, 1)
	created := published[0].(event.QuizCreated)
	assert.Equal(t, []string{student.Email}, created.StudentEmails)
}

func TestCreateQuizRejectsForeignCourse(t *testing.T) {
	f := newQuizFixture(t)
	owner := seedInstructor(t, f.userRepo, "grace", true)
	other := seedInstructor(t, f.userRepo, "alan", true)
	course := f.seedCourse(t, owner)
	f.seedCourse(t, other)

	req := f.createRequest(f.now, f.now.Add(time.Hour))
	req.CourseID = &course.ID
	_, err := f.svc.Create(other, req)
	require.Error(t, err)
	assert.Equal(t, "You are not the owner of this course.", err.Error())
}

func TestUpdateQuizRejectedWhileOpen(t *testing.T) {
	f := newQuizFixture(t)
	instructor := seedInstructor(t, f.userRepo, "grace", true)
	f.seedCourse(t, instructor)

	resp, err := f.svc.Create(instructor, f.createRequest(f.now.Add(-time.Hour), f.now.Add(time.Hour)))
	require.NoError(t, err)

	name := "Renamed"
	_, err = f.svc.Update(instructor, resp.ID, dto.QuizUpdateRequest{Name: &name})
	require.Error(t, err)
	assert.Equal(t, "You cannot update the selected quiz because it has already started. You have to wait until it ends.", err.Error())
}

func TestDeleteQuizRejectedWhileOpen(t *testing.T) {
	f := newQuizFixture(t)
	instructor := seedInstructor(t, f.userRepo, "grace", true)
	f.seedCourse(t, instructor)

	resp, err := f.svc.Create(instructor, f.createRequest(f.now.Add(-time.Hour), f.now.Add(time.Hour)))
	require.NoError(t, err)

	err = f.svc.Delete(instructor, resp.ID)
	require.Error(t, err)
	assert.Equal(t, "You cannot delete the selected quiz because it has already started. You have to wait until it ends.", err.Error())
}

func TestDeleteQuizHidesIt(t *testing.T) {
	f := newQuizFixture(t)
	instructor := seedInstructor(t, f.userRepo, "grace", true)
	f.seedCourse(t, instructor)

	resp, err := f.svc.Create(instructor, f.createRequest(f.now.Add(time.Hour), f.now.Add(2*time.Hour)))
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(instructor, resp.ID))

	_, err = f.svc.Get(resp.ID)
	require.Error(t, err)
	assert.Equal(t, "Quiz is not found.", err.Error())

	stored, err := f.quizRepo.FindByID(resp.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsDeleted)
}

func TestPercentageRebalance(t *testing.T) {
	f := newQuizFixture(t)
	instructor := seedInstructor(t, f.userRepo, "grace", true)
	f.seedCourse(t, instructor)

	first := f.createRequest(f.now.Add(time.Hour), f.now.Add(2*time.Hour))
	first.Percentage = 70
	respA, err := f.svc.Create(instructor, first)
	require.NoError(t, err)

	second := f.createRequest(f.now.Add(time.Hour), f.now.Add(2*time.Hour))
	second.Name = "Final"
	second.Percentage = 60
	respB, err := f.svc.Create(instructor, second)
	require.NoError(t, err)

	storedA, err := f.quizRepo.FindByID(respA.ID)
	require.NoError(t, err)
	storedB, err := f.quizRepo.FindByID(respB.ID)
	require.NoError(t, err)
	assert.InDelta(t, 50, storedA.Percentage, 0.001)
	assert.InDelta(t, 50, storedB.Percentage, 0.001)
}

func TestPercentageRebalanceLeavesLowSumsAlone(t *testing.T) {
	f := newQuizFixture(t)
	instructor := seedInstructor(t, f.userRepo, "grace", true)
	f.seedCourse(t, instructor)

	first := f.createRequest(f.now.Add(time.Hour), f.now.Add(2*time.Hour))
	first.Percentage = 30
	respA, err := f.svc.Create(instructor, first)
	require.NoError(t, err)

	second := f.createRequest(f.now.Add(time.Hour), f.now.Add(2*time.Hour))
	second.Name = "Final"
	second.Percentage = 40
	_, err = f.svc.Create(instructor, second)
	require.NoError(t, err)

	storedA, err := f.quizRepo.FindByID(respA.ID)
	require.NoError(t, err)
	assert.InDelta(t, 30, storedA.Percentage, 0.001)
}

func openQuiz(t *testing.T, f *quizFixture, instructor *model.User, course *model.Course) *model.Quiz {
	t.Helper()
	quiz := &model.Quiz{
		OwnerID:   instructor.ID,
		Name:      "Open Quiz",
		Slug:      "open-quiz",
		Start:     f.now.Add(-time.Hour),
		End:       f.now.Add(time.Hour),
		BeGraded:  true,
		IsPrivate: true,
		Questions: []model.Question{
			{QuestionType: model.QuestionTypeMultichoice, Question: "2+2?", Answer: "B", Point: 50},
		},
	}
	if course != nil {
		quiz.CourseID = &course.ID
		quiz.Course = course
	}
	require.NoError(t, f.quizRepo.Create(quiz))
	return quiz
}

func TestAppendRejectsInstructors(t *testing.T) {
	f := newQuizFixture(t)
	owner := seedInstructor(t, f.userRepo, "grace", true)
	other := seedInstructor(t, f.userRepo, "alan", true)
	course := f.seedCourse(t, owner)
	quiz := openQuiz(t, f, owner, course)

	_, err := f.svc.Append(other, quiz.ID)
	require.Error(t, err)
	assert.Equal(t, "Instructors cannot participate in a quiz.", err.Error())
}

func TestAppendRejectsUnenrolledForPrivateQuiz(t *testing.T) {
	f := newQuizFixture(t)
	owner := seedInstructor(t, f.userRepo, "grace", true)
	outsider := seedStudent(t, f.userRepo, "bob", "secret123")
	course := f.seedCourse(t, owner)
	quiz := openQuiz(t, f, owner, course)

	_, err := f.svc.Append(outsider, quiz.ID)
	require.Error(t, err)
	assert.Equal(t, "You cannot participate in a private quiz.", err.Error())
}

func TestAppendRejectsQuizWithoutQuestions(t *testing.T) {
	f := newQuizFixture(t)
	owner := seedInstructor(t, f.userRepo, "grace", true)
	student := seedStudent(t, f.userRepo, "ada", "secret123")
	course := f.seedCourse(t, owner, student)
	quiz := openQuiz(t, f, owner, course)
	quiz.Questions = nil

	_, err := f.svc.Append(student, quiz.ID)
	require.Error(t, err)
	assert.Equal(t, "There are no questions to answer. Please contact your instructor to add questions.", err.Error())
}

func TestAppendRejectsEndedQuiz(t *testing.T) {
	f := newQuizFixture(t)
	owner := seedInstructor(t, f.userRepo, "grace", true)
	student := seedStudent(t, f.userRepo, "ada", "secret123")
	course := f.seedCourse(t, owner, student)
	quiz := openQuiz(t, f, owner, course)
	quiz.Start = f.now.Add(-2 * time.Hour)
	quiz.End = f.now.Add(-time.Hour)

	_, err := f.svc.Append(student, quiz.ID)
	require.Error(t, err)
	assert.Equal(t, "Quiz has ended.", err.Error())
}

func TestAppendRejectsScheduledQuiz(t *testing.T) {
	f := newQuizFixture(t)
	owner := seedInstructor(t, f.userRepo, "grace", true)
	student := seedStudent(t, f.userRepo, "ada", "secret123")
	course := f.seedCourse(t, owner, student)
	quiz := openQuiz(t, f, owner, course)
	quiz.Start = f.now.Add(time.Hour)
	quiz.End = f.now.Add(2 * time.Hour)

	_, err := f.svc.Append(student, quiz.ID)
	require.Error(t, err)
	assert.Equal(t, "Quiz has not started yet.", err.Error())
}

func TestAppendTwice(t *testing.T) {
	f := newQuizFixture(t)
	owner := seedInstructor(t, f.userRepo, "grace", true)
	student := seedStudent(t, f.userRepo, "ada", "secret123")
	course := f.seedCourse(t, owner, student)
	quiz := openQuiz(t, f, owner, course)

	_, err := f.svc.Append(student, quiz.ID)
	require.NoError(t, err)

	_, err = f.svc.Append(student, quiz.ID)
	require.Error(t, err)
	assert.Equal(t, "You have already participate in this quiz.", err.Error())
}

func TestMyAnswersBeforeQuizEnds(t *testing.T) {
	f := newQuizFixture(t)
	owner := seedInstructor(t, f.userRepo, "grace", true)
	student := seedStudent(t, f.userRepo, "ada", "secret123")
	course := f.seedCourse(t, owner, student)
	quiz := openQuiz(t, f, owner, course)

	_, err := f.svc.Append(student, quiz.ID)
	require.NoError(t, err)

	_, err = f.svc.MyAnswers(student, quiz.ID)
	require.Error(t, err)
	assert.Equal(t, "The quiz has not finished yet.", err.Error())
}

func TestMyAnswersWithoutAnyAnswer(t *testing.T) {
	f := newQuizFixture(t)
	owner := seedInstructor(t, f.userRepo, "grace", true)
	student := seedStudent(t, f.userRepo, "ada", "secret123")
	course := f.seedCourse(t, owner, student)
	quiz := openQuiz(t, f, owner, course)

	_, err := f.svc.Append(student, quiz.ID)
	require.NoError(t, err)

	quiz.End = f.now.Add(-time.Minute)
	_, err = f.svc.MyAnswers(student, quiz.ID)
	require.Error(t, err)
	assert.Equal(t, "You cannot see the results because you have not answer any questions.", err.Error())
}
