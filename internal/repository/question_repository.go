package repository

import (
	"github.com/quizmakerhq/quizmaker/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	CreateForQuiz(question *model.Question, quiz *model.Quiz) error
	FindByID(id uint) (*model.Question, error)
	Update(question *model.Question) error
	Delete(id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

// CreateForQuiz inserts the question and attaches it to the quiz in one transaction.
func (r *questionRepository) CreateForQuiz(question *model.Question, quiz *model.Quiz) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(question).Error; err != nil {
			return err
		}
		return tx.Model(quiz).Association("Questions").Append(question)
	})
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	err := r.db.First(&question, id).Error
	return &question, err
}

func (r *questionRepository) Update(question *model.Question) error {
	return r.db.Save(question).Error
}

func (r *questionRepository) Delete(id uint) error {
	return r.db.Delete(&model.Question{}, id).Error
}
