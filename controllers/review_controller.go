package controllers

import (
	"booking/pkg/apperr"
	"booking/pkg/resp"
	"booking/services"
	"booking/utils"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	Service *services.ReviewService
}

func NewReviewController(s *services.ReviewService) *ReviewController {
	return &ReviewController{Service: s}
}

type CreateReviewReq struct {
	HotelID *string `json:"hotelId"`
	TourID  *string `json:"tourId"`
	Rating  int     `json:"rating" binding:"required,min=1,max=5"`
	Comment string  `json:"comment" binding:"max=2000"`
}

// POST /api/v1/create-review (user)
func (rc *ReviewController) Create(c *gin.Context) {
	var req CreateReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Error(c, apperr.NewValidation("invalid request body", err))
		return
	}

	review, err := rc.Service.Create(c.Request.Context(), services.CreateReviewInput{
		UserID:  utils.CurrentUserID(c),
		HotelID: req.HotelID,
		TourID:  req.TourID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Create review successful", review)
}

// GET /api/v1/get-reviews (admin)
func (rc *ReviewController) List(c *gin.Context) {
	reviews, err := rc.Service.List(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.List(c, "Get review successful", reviews)
}

// GET /api/v1/get-reviews-by-hotelId/:hotelId (admin)
func (rc *ReviewController) ListByHotel(c *gin.Context) {
	reviews, err := rc.Service.ListByHotel(c.Request.Context(), c.Param("hotelId"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.List(c, "Get review successful", reviews)
}

// GET /api/v1/get-reviews-by-tourId/:tourId (admin)
func (rc *ReviewController) ListByTour(c *gin.Context) {
	reviews, err := rc.Service.ListByTour(c.Request.Context(), c.Param("tourId"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.List(c, "Get review successful", reviews)
}
