package repository

import (
	"github.com/quizmakerhq/quizmaker/internal/model"
	"gorm.io/gorm"
)

type CourseRepository interface {
	Create(course *model.Course) error
	FindByID(id uint) (*model.Course, error)
	FindAll() ([]model.Course, error)
	FindByOwner(instructorID uint) ([]model.Course, error)
	FindByStudent(userID uint) ([]model.Course, error)
	CountByOwner(instructorID uint) (int64, error)
	SlugExists(slug string) (bool, error)
	Update(course *model.Course) error
	Delete(id uint) error
	AddStudent(course *model.Course, student *model.Student) error
	RemoveStudent(course *model.Course, student *model.Student) error
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(course *model.Course) error {
	return r.db.Create(course).Error
}

func (r *courseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.db.Preload("Students.User").First(&course, id).Error
	return &course, err
}

func (r *courseRepository) FindAll() ([]model.Course, error) {
	var courses []model.Course
	err := r.db.Preload("Students.User").Order("created_at DESC").Find(&courses).Error
	return courses, err
}

func (r *courseRepository) FindByOwner(instructorID uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.Preload("Students.User").
		Where("owner_id = ?", instructorID).
		Order("created_at DESC").
		Find(&courses).Error
	return courses, err
}

func (r *courseRepository) FindByStudent(userID uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.Preload("Students.User").
		Joins("JOIN course_students ON course_students.course_id = courses.id").
		Where("course_students.student_user_id = ?", userID).
		Find(&courses).Error
	return courses, err
}

func (r *courseRepository) CountByOwner(instructorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Course{}).Where("owner_id = ?", instructorID).Count(&count).Error
	return count, err
}

func (r *courseRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Course{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (r *courseRepository) Update(course *model.Course) error {
	return r.db.Save(course).Error
}

func (r *courseRepository) Delete(id uint) error {
	return r.db.Delete(&model.Course{}, id).Error
}

func (r *courseRepository) AddStudent(course *model.Course, student *model.Student) error {
	return r.db.Model(course).Association("Students").Append(student)
}

func (r *courseRepository) RemoveStudent(course *model.Course, student *model.Student) error {
	return r.db.Model(course).Association("Students").Delete(student)
}
