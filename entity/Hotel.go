package entity

import (
	"time"

	"gorm.io/gorm"
)

type Hotel struct {
	ID          string    `gorm:"primaryKey;size:24" json:"_id"`
	Name        string    `gorm:"not null" json:"name"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	Description string    `json:"description"`
	Stars       int       `json:"stars"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Rooms []Room `json:"-"`
}

func (h *Hotel) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = NewID()
	}
	return nil
}
