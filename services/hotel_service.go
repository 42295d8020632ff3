package services

import (
	"context"
	"strings"

	"booking/entity"
	"booking/pkg/apperr"
	"booking/repository"
)

type HotelService struct {
	Repo *repository.HotelRepository
}

func NewHotelService(repo *repository.HotelRepository) *HotelService {
	return &HotelService{Repo: repo}
}

func (s *HotelService) List(ctx context.Context) ([]entity.Hotel, error) {
	hotels, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, apperr.NewUpstream(err)
	}
	return hotels, nil
}

func (s *HotelService) Create(ctx context.Context, hotel *entity.Hotel) error {
	hotel.Name = strings.TrimSpace(hotel.Name)
	if hotel.Name == "" {
		return apperr.NewValidation("name is required", nil)
	}
	if hotel.Stars < 0 || hotel.Stars > 5 {
		return apperr.NewValidation("stars must be between 0 and 5", nil)
	}
	if err := s.Repo.Create(ctx, hotel); err != nil {
		return apperr.NewUpstream(err)
	}
	return nil
}
