package model

import "time"

// Instructor wraps a User account. IsApproved is flipped by an admin out-of-band
// and gates course, quiz and question creation.
type Instructor struct {
	UserID     uint      `gorm:"primarykey" json:"user_id"`
	User       *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	IsApproved bool      `json:"is_approved" gorm:"default:false"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Student wraps a User account with the institution-issued student number.
type Student struct {
	UserID    uint      `gorm:"primarykey" json:"user_id"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	StudentID string    `json:"student_id" gorm:"size:50;not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
