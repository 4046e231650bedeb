package model

import (
	"strings"
	"time"
)

const (
	UserTypeInstructor = "instructor"
	UserTypeStudent    = "student"
)

const (
	GenderFemale = "female"
	GenderMale   = "male"
)

type User struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	Username     string     `json:"username" gorm:"size:30;not null;uniqueIndex"`
	Email        string     `json:"email" gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string     `json:"-" gorm:"not null"`
	FirstName    string     `json:"first_name" gorm:"size:30"`
	LastName     string     `json:"last_name" gorm:"size:150"`
	Gender       string     `json:"gender" gorm:"size:10"`
	UserType     string     `json:"user_type" gorm:"size:50;not null"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	IsStaff      bool       `json:"is_staff" gorm:"default:false"`
	DateJoined   time.Time  `json:"date_joined" gorm:"autoCreateTime"`
	Instructor   *Instructor `json:"instructor,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Student      *Student    `json:"student,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (u *User) IsInstructor() bool {
	return u.UserType == UserTypeInstructor
}

func (u *User) IsStudent() bool {
	return u.UserType == UserTypeStudent
}

// IsApprovedInstructor reports whether the user is an instructor approved by an admin.
func (u *User) IsApprovedInstructor() bool {
	return u.IsInstructor() && u.Instructor != nil && u.Instructor.IsApproved
}

// FullName falls back to the username when both name fields are blank.
func (u *User) FullName() string {
	full := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if full == "" {
		return u.Username
	}
	return full
}
