package model

import (
	"strings"
	"time"
)

const (
	QuestionTypeText        = "text"
	QuestionTypeMultichoice = "multichoice"
	QuestionTypeTrueFalse   = "truefalse"
)

type Question struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	QuestionType string    `json:"question_type" gorm:"size:50;not null;default:'multichoice'"`
	Question     string    `json:"question" gorm:"type:text;not null"`
	Answer       string    `json:"answer" gorm:"type:text"`
	Point        int       `json:"point" gorm:"not null;default:0"`
	OptionA      *string   `json:"A,omitempty" gorm:"size:255"`
	OptionB      *string   `json:"B,omitempty" gorm:"size:255"`
	OptionC      *string   `json:"C,omitempty" gorm:"size:255"`
	OptionD      *string   `json:"D,omitempty" gorm:"size:255"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AutoGradable reports whether submissions for this question can be graded
// without an instructor. Free-text questions always need manual points.
func (q *Question) AutoGradable() bool {
	return q.QuestionType == QuestionTypeMultichoice || q.QuestionType == QuestionTypeTrueFalse
}

// Matches compares a submitted answer against the canonical one,
// case-insensitively and ignoring surrounding whitespace.
func (q *Question) Matches(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(q.Answer))
}
