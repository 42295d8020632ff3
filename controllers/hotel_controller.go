package controllers

import (
	"booking/entity"
	"booking/pkg/apperr"
	"booking/pkg/resp"
	"booking/services"

	"github.com/gin-gonic/gin"
)

type HotelController struct {
	Service *services.HotelService
}

func NewHotelController(s *services.HotelService) *HotelController {
	return &HotelController{Service: s}
}

type createHotelReq struct {
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Description string `json:"description"`
	Stars       int    `json:"stars" binding:"min=0,max=5"`
}

// GET /api/v1/get-hotels
func (ctl *HotelController) List(c *gin.Context) {
	hotels, err := ctl.Service.List(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.List(c, "Get hotel successful", hotels)
}

// POST /api/v1/create-hotel (admin)
func (ctl *HotelController) Create(c *gin.Context) {
	var req createHotelReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Error(c, apperr.NewValidation("invalid request body", err))
		return
	}

	hotel := &entity.Hotel{
		Name:        req.Name,
		Address:     req.Address,
		City:        req.City,
		Description: req.Description,
		Stars:       req.Stars,
	}
	if err := ctl.Service.Create(c.Request.Context(), hotel); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Add hotel successful", hotel)
}
