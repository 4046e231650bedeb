package repository

import (
	"time"

	"github.com/quizmakerhq/quizmaker/internal/model"
	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(quiz *model.Quiz) error
	FindByID(id uint) (*model.Quiz, error)
	Update(quiz *model.Quiz) error
	SaveAll(quizzes []model.Quiz) error
	SlugExists(slug string) (bool, error)
	FindSiblings(ownerID uint, courseID *uint) ([]model.Quiz, error)
	FindEndedByParticipant(userID uint, now time.Time) ([]model.Quiz, error)
	FindWaitingByParticipant(userID uint, now time.Time) ([]model.Quiz, error)
	FindByOwner(ownerID uint) ([]model.Quiz, error)
	FindByCourse(courseID uint) ([]model.Quiz, error)
	FindPublicOpen(now time.Time) ([]model.Quiz, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(quiz *model.Quiz) error {
	// GORM creates the quiz_questions join rows for any inline questions.
	return r.db.Create(quiz).Error
}

func (r *quizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.db.
		Preload("Owner").
		Preload("Questions").
		Preload("Participants.Participant").
		Preload("Course.Students.User").
		First(&quiz, id).Error
	return &quiz, err
}

func (r *quizRepository) Update(quiz *model.Quiz) error {
	return r.db.Omit("Questions", "Participants", "Course", "Owner").Save(quiz).Error
}

func (r *quizRepository) SaveAll(quizzes []model.Quiz) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range quizzes {
			err := tx.Model(&model.Quiz{}).
				Where("id = ?", quizzes[i].ID).
				Update("percentage", quizzes[i].Percentage).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *quizRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Quiz{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (r *quizRepository) FindSiblings(ownerID uint, courseID *uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	query := r.db.Where("owner_id = ?", ownerID).Where("is_deleted = ?", false)
	if courseID != nil {
		query = query.Where("course_id = ?", *courseID)
	} else {
		query = query.Where("course_id IS NULL")
	}
	err := query.Find(&quizzes).Error
	return quizzes, err
}

func (r *quizRepository) FindEndedByParticipant(userID uint, now time.Time) ([]model.Quiz, error) {
	return r.findByParticipant(userID, `quizzes."end" <= ?`, now)
}

func (r *quizRepository) FindWaitingByParticipant(userID uint, now time.Time) ([]model.Quiz, error) {
	return r.findByParticipant(userID, `quizzes."end" > ?`, now)
}

func (r *quizRepository) findByParticipant(userID uint, endCond string, now time.Time) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.db.
		Preload("Owner").
		Preload("Questions").
		Preload("Participants.Participant").
		Joins("JOIN quiz_participants ON quiz_participants.quiz_id = quizzes.id").
		Where("quiz_participants.participant_id = ?", userID).
		Where(endCond, now).
		Where("quizzes.is_deleted = ?", false).
		Order(`quizzes."end" ASC`).
		Find(&quizzes).Error
	return quizzes, err
}

func (r *quizRepository) FindByOwner(ownerID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.db.
		Preload("Owner").
		Preload("Questions").
		Preload("Participants.Participant").
		Where("owner_id = ?", ownerID).
		Where("is_deleted = ?", false).
		Order(`"end" DESC`).
		Find(&quizzes).Error
	return quizzes, err
}

func (r *quizRepository) FindByCourse(courseID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.db.
		Preload("Owner").
		Preload("Questions").
		Preload("Participants.Participant").
		Where("course_id = ?", courseID).
		Where("is_deleted = ?", false).
		Order(`"end" ASC`).
		Find(&quizzes).Error
	return quizzes, err
}

// FindPublicOpen returns public quizzes that have questions and have not ended yet.
func (r *quizRepository) FindPublicOpen(now time.Time) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.db.
		Preload("Owner").
		Preload("Questions").
		Preload("Participants.Participant").
		Where("is_private = ?", false).
		Where("is_deleted = ?", false).
		Where(`"end" > ?`, now).
		Where("(SELECT COUNT(*) FROM quiz_questions WHERE quiz_questions.quiz_id = quizzes.id) > 0").
		Order(`"end" ASC`).
		Find(&quizzes).Error
	return quizzes, err
}
