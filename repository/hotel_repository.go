package repository

import (
	"context"

	"booking/entity"

	"gorm.io/gorm"
)

type HotelRepository struct {
	DB *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{DB: db}
}

func (r *HotelRepository) FindAll(ctx context.Context) ([]entity.Hotel, error) {
	var hotels []entity.Hotel
	err := r.DB.WithContext(ctx).Order("created_at ASC").Find(&hotels).Error
	return hotels, err
}

func (r *HotelRepository) Create(ctx context.Context, hotel *entity.Hotel) error {
	return r.DB.WithContext(ctx).Create(hotel).Error
}
