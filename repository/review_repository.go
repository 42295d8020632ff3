package repository

import (
	"context"

	"booking/entity"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	return r.DB.WithContext(ctx).Create(review).Error
}

func (r *ReviewRepository) FindAll(ctx context.Context) ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) FindByHotel(ctx context.Context, hotelID string) ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.DB.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) FindByTour(ctx context.Context, tourID string) ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.DB.WithContext(ctx).
		Where("tour_id = ?", tourID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}
