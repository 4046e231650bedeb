package repository

import (
	"github.com/quizmakerhq/quizmaker/internal/model"
	"gorm.io/gorm"
)

type ParticipantAnswerRepository interface {
	CreateBatch(answers []model.ParticipantAnswer) error
	SaveBatch(answers []model.ParticipantAnswer) error
	FindByQuizAndParticipant(quizID, participantID uint) ([]model.ParticipantAnswer, error)
	FindOne(quizID, questionID, participantID uint) (*model.ParticipantAnswer, error)
	ExistsForQuestion(questionID uint) (bool, error)
}

type participantAnswerRepository struct {
	db *gorm.DB
}

func NewParticipantAnswerRepository(db *gorm.DB) ParticipantAnswerRepository {
	return &participantAnswerRepository{db: db}
}

// CreateBatch writes one submission's answers atomically; the composite unique
// index rejects the whole batch on any duplicate (quiz, question, participant).
func (r *participantAnswerRepository) CreateBatch(answers []model.ParticipantAnswer) error {
	if len(answers) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&answers).Error
	})
}

// SaveBatch persists graded answers all-or-nothing.
func (r *participantAnswerRepository) SaveBatch(answers []model.ParticipantAnswer) error {
	if len(answers) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range answers {
			if err := tx.Omit("Question").Save(&answers[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *participantAnswerRepository) FindByQuizAndParticipant(quizID, participantID uint) ([]model.ParticipantAnswer, error) {
	var answers []model.ParticipantAnswer
	err := r.db.Preload("Question").
		Where("quiz_id = ? AND participant_id = ?", quizID, participantID).
		Order("question_id ASC").
		Find(&answers).Error
	return answers, err
}

func (r *participantAnswerRepository) FindOne(quizID, questionID, participantID uint) (*model.ParticipantAnswer, error) {
	var answer model.ParticipantAnswer
	err := r.db.Preload("Question").
		Where("quiz_id = ? AND question_id = ? AND participant_id = ?", quizID, questionID, participantID).
		First(&answer).Error
	return &answer, err
}

func (r *participantAnswerRepository) ExistsForQuestion(questionID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.ParticipantAnswer{}).Where("question_id = ?", questionID).Count(&count).Error
	return count > 0, err
}
