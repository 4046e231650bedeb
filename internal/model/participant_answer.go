package model

import "time"

// ParticipantAnswer holds one submitted answer. The (quiz, question, participant)
// uniqueness is enforced at the database level so a re-submission fails instead
// of overwriting history.
type ParticipantAnswer struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	QuizID        uint      `json:"quiz_id" gorm:"not null;uniqueIndex:idx_quiz_question_participant"`
	QuestionID    uint      `json:"question_id" gorm:"not null;uniqueIndex:idx_quiz_question_participant"`
	Question      Question  `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	ParticipantID uint      `json:"participant_id" gorm:"not null;uniqueIndex:idx_quiz_question_participant"`
	Answer        string    `json:"answer" gorm:"size:255"`
	IsCorrect     bool      `json:"is_correct" gorm:"default:false"`
	IsValidated   bool      `json:"is_validated" gorm:"default:false"`
	Point         int       `json:"point" gorm:"default:0"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
