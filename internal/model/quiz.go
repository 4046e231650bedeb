package model

import "time"

const (
	QuizStatusScheduled = "scheduled"
	QuizStatusOpen      = "open"
	QuizStatusClosed    = "closed"
	QuizStatusDeleted   = "deleted"
)

type Quiz struct {
	ID           uint              `gorm:"primarykey" json:"id"`
	OwnerID      uint              `json:"owner_id" gorm:"not null;index"`
	Owner        User              `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	CourseID     *uint             `json:"course,omitempty" gorm:"index"`
	Course       *Course           `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:SET NULL"`
	Questions    []Question        `json:"questions,omitempty" gorm:"many2many:quiz_questions"`
	Participants []QuizParticipant `json:"participants,omitempty" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
	Name         string            `json:"name" gorm:"size:50;not null"`
	Slug         string            `json:"slug" gorm:"size:120;uniqueIndex"`
	Description  string            `json:"description" gorm:"type:text"`
	Start        time.Time         `json:"start" gorm:"not null"`
	End          time.Time         `json:"end" gorm:"not null"`
	BeGraded     bool              `json:"be_graded" gorm:"default:true"`
	Percentage   float64           `json:"percentage" gorm:"default:0"`
	IsPrivate    bool              `json:"is_private" gorm:"default:false"`
	IsDeleted    bool              `json:"-" gorm:"default:false;index"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// Status derives the lifecycle state from the stored window; nothing is persisted.
func (q *Quiz) Status(now time.Time) string {
	switch {
	case q.IsDeleted:
		return QuizStatusDeleted
	case now.Before(q.Start):
		return QuizStatusScheduled
	case now.After(q.End):
		return QuizStatusClosed
	default:
		return QuizStatusOpen
	}
}

// IsOpen reports whether the quiz currently accepts participants and answers.
func (q *Quiz) IsOpen(now time.Time) bool {
	return q.Status(now) == QuizStatusOpen
}

func (q *Quiz) HasEnded(now time.Time) bool {
	return now.After(q.End)
}
