package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Username     string    `gorm:"size:150;not null;uniqueIndex" json:"username" validate:"required,max=150,username"`
	Email        string    `gorm:"size:254;not null;uniqueIndex" json:"email" validate:"required,max=254,email"`
	FirstName    string    `gorm:"size:150" json:"first_name" validate:"max=150"`
	LastName     string    `gorm:"size:150" json:"last_name" validate:"max=150"`
	PasswordHash string    `gorm:"not null" json:"-"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	ensureID(&u.ID)
	return nil
}
