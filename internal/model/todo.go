package model

import (
	"github.com/google/uuid"
)

// Todo is a text item owned by exactly one board at a time.
type Todo struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BoardID  uuid.UUID `gorm:"type:uuid;not null;index" json:"board_id"`
	Content  string    `gorm:"not null" json:"content"`
	Position int       `gorm:"not null" json:"position"`
}
