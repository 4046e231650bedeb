package repository

import (
	"github.com/quizmakerhq/quizmaker/internal/model"
	"gorm.io/gorm"
)

type QuizParticipantRepository interface {
	Create(participant *model.QuizParticipant) error
	CreateBatch(participants []model.QuizParticipant) error
	Update(participant *model.QuizParticipant) error
	FindByQuizAndParticipant(quizID, participantID uint) (*model.QuizParticipant, error)
	FindByQuiz(quizID uint) ([]model.QuizParticipant, error)
}

type quizParticipantRepository struct {
	db *gorm.DB
}

func NewQuizParticipantRepository(db *gorm.DB) QuizParticipantRepository {
	return &quizParticipantRepository{db: db}
}

func (r *quizParticipantRepository) Create(participant *model.QuizParticipant) error {
	return r.db.Create(participant).Error
}

func (r *quizParticipantRepository) CreateBatch(participants []model.QuizParticipant) error {
	if len(participants) == 0 {
		return nil
	}
	return r.db.Create(&participants).Error
}

func (r *quizParticipantRepository) Update(participant *model.QuizParticipant) error {
	return r.db.Save(participant).Error
}

func (r *quizParticipantRepository) FindByQuizAndParticipant(quizID, participantID uint) (*model.QuizParticipant, error) {
	var participant model.QuizParticipant
	err := r.db.Preload("Participant").
		Where("quiz_id = ? AND participant_id = ?", quizID, participantID).
		First(&participant).Error
	return &participant, err
}

func (r *quizParticipantRepository) FindByQuiz(quizID uint) ([]model.QuizParticipant, error) {
	var participants []model.QuizParticipant
	err := r.db.Preload("Participant").
		Where("quiz_id = ?", quizID).
		Find(&participants).Error
	return participants, err
}
