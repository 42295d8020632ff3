package entity

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ImgRoom holds the uploaded image URLs of a room.
type ImgRoom struct {
	Avatar string                     `json:"avatar"`
	Img    datatypes.JSONSlice[string] `json:"img"`
}

type Room struct {
	ID          string  `gorm:"primaryKey;size:24" json:"_id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Price       float64 `json:"price"`
	Capacity    int     `json:"capacity"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description"`

	ImgRoom ImgRoom `gorm:"embedded;embeddedPrefix:img_room_" json:"imgRoom"`

	// serialized as the expanded hotel, null when the hotel row is missing
	HotelID string `gorm:"size:24;index;not null" json:"-"`
	Hotel   *Hotel `json:"hotelId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = NewID()
	}
	if r.ImgRoom.Img == nil {
		r.ImgRoom.Img = datatypes.JSONSlice[string]{}
	}
	return nil
}
