package entity

import (
	"time"

	"gorm.io/gorm"
)

// Review is scoped to a hotel, a tour, or both.
type Review struct {
	ID      string  `gorm:"primaryKey;size:24" json:"_id"`
	UserID  string  `gorm:"index;not null" json:"userId"`
	HotelID *string `gorm:"size:24;index" json:"hotelId,omitempty"`
	TourID  *string `gorm:"size:24;index" json:"tourId,omitempty"`
	Rating  int     `json:"rating"`
	Comment string  `json:"comment"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = NewID()
	}
	return nil
}
