package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizmakerhq/quizmaker/internal/dto"
)

func TestCreateCourseOnlyInstructors(t *testing.T) {
	userRepo := newFakeUserRepo()
	student := seedStudent(t, userRepo, "ada", "secret123")
	svc := NewCourseService(newFakeCourseRepo(), userRepo)

	_, err := svc.Create(student, dto.CourseCreateRequest{Name: "Algorithms"})
	require.Error(t, err)
	assert.Equal(t, "Only instructors can create a course.", err.Error())
}

func TestCreateCourseGeneratesSlug(t *testing.T) {
	userRepo := newFakeUserRepo()
	instructor := seedInstructor(t, userRepo, "grace", true)
	svc := NewCourseService(newFakeCourseRepo(), userRepo)

	first, err := svc.Create(instructor, dto.CourseCreateRequest{Name: "Operating Systems"})
	require.NoError(t, err)
	assert.Equal(t, "operating-systems", first.Slug)

	second, err := svc.Create(instructor, dto.CourseCreateRequest{Name: "Operating Systems"})
	require.NoError(t, err)
	assert.NotEqual(t, first.Slug, second.Slug)
	assert.Contains(t, second.Slug, "operating-systems")
}

func TestAddStudentTwice(t *testing.T) {
	userRepo := newFakeUserRepo()
	courseRepo := newFakeCourseRepo()
	instructor := seedInstructor(t, userRepo, "grace", true)
	student := seedStudent(t, userRepo, "ada", "secret123")
	svc := NewCourseService(courseRepo, userRepo)

	course, err := svc.Create(instructor, dto.CourseCreateRequest{Name: "Databases"})
	require.NoError(t, err)

	_, err = svc.AddStudent(instructor, course.ID, student.ID)
	require.NoError(t, err)

	_, err = svc.AddStudent(instructor, course.ID, student.ID)
	require.Error(t, err)
	assert.Equal(t, "The student is already in this course.", err.Error())
}

func TestAddStudentRejectsInstructors(t *testing.T) {
	userRepo := newFakeUserRepo()
	courseRepo := newFakeCourseRepo()
	owner := seedInstructor(t, userRepo, "grace", true)
	other := seedInstructor(t, userRepo, "alan", true)
	svc := NewCourseService(courseRepo, userRepo)

	course, err := svc.Create(owner, dto.CourseCreateRequest{Name: "Compilers"})
	require.NoError(t, err)

	_, err = svc.AddStudent(owner, course.ID, other.ID)
	require.Error(t, err)
	assert.Equal(t, "Only students can be enrolled in a course.", err.Error())
}

func TestUpdateCourseRequiresOwnership(t *testing.T) {
	userRepo := newFakeUserRepo()
	courseRepo := newFakeCourseRepo()
	owner := seedInstructor(t, userRepo, "grace", true)
	other := seedInstructor(t, userRepo, "alan", true)
	svc := NewCourseService(courseRepo, userRepo)

	course, err := svc.Create(owner, dto.CourseCreateRequest{Name: "Networks"})
	require.NoError(t, err)

	_, err = svc.Update(other, course.ID, dto.CourseUpdateRequest{Name: "Computer Networks"})
	require.Error(t, err)
	assert.Equal(t, "You are not the owner of this course.", err.Error())
}

func TestListEnrolled(t *testing.T) {
	userRepo := newFakeUserRepo()
	courseRepo := newFakeCourseRepo()
	instructor := seedInstructor(t, userRepo, "grace", true)
	student := seedStudent(t, userRepo, "ada", "secret123")
	svc := NewCourseService(courseRepo, userRepo)

	course, err := svc.Create(instructor, dto.CourseCreateRequest{Name: "Graphics"})
	require.NoError(t, err)
	_, err = svc.AddStudent(instructor, course.ID, student.ID)
	require.NoError(t, err)

	enrolled, err := svc.ListEnrolled(student)
	require.NoError(t, err)
	require.Len(t, enrolled, 1)
	assert.Equal(t, "Graphics", enrolled[0].Name)
}

func TestListRequiresApprovedInstructor(t *testing.T) {
	userRepo := newFakeUserRepo()
	unapproved := seedInstructor(t, userRepo, "newbie", false)
	svc := NewCourseService(newFakeCourseRepo(), userRepo)

	_, err := svc.List(unapproved)
	require.Error(t, err)
	assert.Equal(t, "You should be approved by any admin to see the result.", err.Error())
}
