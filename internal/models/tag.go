package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tag is a labeled recipe category. Name, color and slug are each unique
// across the table.
//
// The check tags are the SQLite forms of the constraints of the same name in
// the PostgreSQL migrations.
type Tag struct {
	ID    uuid.UUID `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name  string    `gorm:"size:50;not null;uniqueIndex" json:"name" validate:"required,max=50"`
	Color string    `gorm:"size:7;not null;uniqueIndex;check:tags_color_hex,color GLOB '#[0-9a-fA-F][0-9a-fA-F][0-9a-fA-F]' OR color GLOB '#[0-9a-fA-F][0-9a-fA-F][0-9a-fA-F][0-9a-fA-F][0-9a-fA-F][0-9a-fA-F]'" json:"color" validate:"required,hexcode"`
	Slug  string    `gorm:"size:50;not null;uniqueIndex;check:tags_slug_format,slug <> '' AND slug NOT GLOB '*[^a-zA-Z0-9_-]*'" json:"slug" validate:"required,max=50,slug"`
}

func (Tag) TableName() string {
	return "tags"
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	ensureID(&t.ID)
	return nil
}

func (t Tag) String() string {
	return t.Name
}
