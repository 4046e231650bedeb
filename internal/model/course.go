package model

import "time"

type Course struct {
	ID        uint        `gorm:"primarykey" json:"id"`
	OwnerID   *uint       `json:"owner_id" gorm:"index"`
	Owner     *Instructor `json:"owner,omitempty" gorm:"foreignKey:OwnerID;references:UserID;constraint:OnDelete:SET NULL"`
	Students  []Student   `json:"students,omitempty" gorm:"many2many:course_students"`
	Name      string      `json:"name" gorm:"size:50;not null"`
	Slug      string      `json:"slug" gorm:"size:120;uniqueIndex"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
