package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Model base model, primary keys are UUID strings generated on insert
type Model struct {
	ID        string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

// BeforeCreate assigns a new UUID unless one was set explicitly
func (m *Model) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
