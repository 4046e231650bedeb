package model

import "time"

// QuizParticipant records one user's participation in one quiz.
// A participant appears at most once per quiz.
type QuizParticipant struct {
	ID            uint       `gorm:"primarykey" json:"id"`
	QuizID        uint       `json:"quiz" gorm:"not null;uniqueIndex:idx_quiz_participant"`
	ParticipantID uint       `json:"participant_id" gorm:"not null;uniqueIndex:idx_quiz_participant"`
	Participant   User       `json:"participant,omitempty" gorm:"foreignKey:ParticipantID"`
	Grade         float64    `json:"grade" gorm:"default:0"`
	Completion    float64    `json:"completion" gorm:"default:0"`
	FinishedIn    *time.Time `json:"finished_in,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
