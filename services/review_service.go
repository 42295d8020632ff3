package services

import (
	"context"
	"errors"

	"booking/entity"
	"booking/pkg/apperr"
	"booking/repository"
)

type CreateReviewInput struct {
	UserID  string
	HotelID *string
	TourID  *string
	Rating  int
	Comment string
}

type ReviewService struct {
	Repo *repository.ReviewRepository
}

func NewReviewService(repo *repository.ReviewRepository) *ReviewService {
	return &ReviewService{Repo: repo}
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func (s *ReviewService) Create(ctx context.Context, in CreateReviewInput) (*entity.Review, error) {
	hotelID, tourID := nonEmpty(in.HotelID), nonEmpty(in.TourID)

	switch {
	case in.UserID == "":
		return nil, apperr.NewValidation("missing user identity", nil)
	case in.Rating < 1 || in.Rating > 5:
		return nil, apperr.NewValidation("rating must be between 1 and 5", nil)
	case hotelID == nil && tourID == nil:
		return nil, apperr.NewValidation("either hotelId or tourId is required", nil)
	case hotelID != nil && !entity.IsID(*hotelID):
		return nil, apperr.NewValidation("invalid hotelId", errors.New(*hotelID+" is not a valid ObjectID"))
	case tourID != nil && !entity.IsID(*tourID):
		return nil, apperr.NewValidation("invalid tourId", errors.New(*tourID+" is not a valid ObjectID"))
	}

	review := &entity.Review{
		UserID:  in.UserID,
		HotelID: hotelID,
		TourID:  tourID,
		Rating:  in.Rating,
		Comment: in.Comment,
	}
	if err := s.Repo.Create(ctx, review); err != nil {
		return nil, apperr.NewUpstream(err)
	}
	return review, nil
}

func (s *ReviewService) List(ctx context.Context) ([]entity.Review, error) {
	reviews, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, apperr.NewUpstream(err)
	}
	return reviews, nil
}

func (s *ReviewService) ListByHotel(ctx context.Context, hotelID string) ([]entity.Review, error) {
	reviews, err := s.Repo.FindByHotel(ctx, hotelID)
	if err != nil {
		return nil, apperr.NewUpstream(err)
	}
	return reviews, nil
}

func (s *ReviewService) ListByTour(ctx context.Context, tourID string) ([]entity.Review, error) {
	reviews, err := s.Repo.FindByTour(ctx, tourID)
	if err != nil {
		return nil, apperr.NewUpstream(err)
	}
	return reviews, nil
}
