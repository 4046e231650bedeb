package repository

import (
	"github.com/quizmakerhq/quizmaker/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByID(id uint) (*model.User, error)
	FindByLogin(usernameOrEmail string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	Update(user *model.User) error
	UsernameExists(username string) (bool, error)
	EmailExists(email string) (bool, error)
	StudentIDExists(studentID string) (bool, error)
	FindStudents() ([]model.Student, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	// GORM creates the associated Instructor/Student profile in the same insert batch.
	return r.db.Create(user).Error
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.db.Preload("Instructor").Preload("Student").First(&user, id).Error
	return &user, err
}

func (r *userRepository) FindByLogin(usernameOrEmail string) (*model.User, error) {
	var user model.User
	err := r.db.Preload("Instructor").Preload("Student").
		Where("LOWER(username) = LOWER(?)", usernameOrEmail).
		First(&user).Error
	if err == gorm.ErrRecordNotFound {
		err = r.db.Preload("Instructor").Preload("Student").
			Where("LOWER(email) = LOWER(?)", usernameOrEmail).
			First(&user).Error
	}
	return &user, err
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Where("LOWER(email) = LOWER(?)", email).First(&user).Error
	return &user, err
}

func (r *userRepository) Update(user *model.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) UsernameExists(username string) (bool, error) {
	var count int64
	err := r.db.Model(&model.User{}).Where("LOWER(username) = LOWER(?)", username).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&model.User{}).Where("LOWER(email) = LOWER(?)", email).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) StudentIDExists(studentID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Student{}).Where("student_id = ?", studentID).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) FindStudents() ([]model.Student, error) {
	var students []model.Student
	err := r.db.Preload("User").Find(&students).Error
	return students, err
}
