package controllers

import (
	"booking/pkg/apperr"
	"booking/pkg/resp"
	"booking/services"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	Service *services.RoomService
}

func NewRoomController(s *services.RoomService) *RoomController {
	return &RoomController{Service: s}
}

// roomForm accepts multipart form fields or a JSON body.
type roomForm struct {
	HotelID     *string  `form:"hotelId" json:"hotelId" binding:"omitempty,objectid"`
	Name        *string  `form:"name" json:"name"`
	Type        *string  `form:"type" json:"type"`
	Description *string  `form:"description" json:"description"`
	Price       *float64 `form:"price" json:"price" binding:"omitempty,gte=0"`
	Capacity    *int     `form:"capacity" json:"capacity" binding:"omitempty,gte=0"`
	Quantity    *int     `form:"quantity" json:"quantity" binding:"omitempty,gte=0"`
}

func (f roomForm) fields() services.RoomFields {
	return services.RoomFields{
		HotelID:     f.HotelID,
		Name:        f.Name,
		Type:        f.Type,
		Description: f.Description,
		Price:       f.Price,
		Capacity:    f.Capacity,
		Quantity:    f.Quantity,
	}
}

// GET /api/v1/get-rooms
func (ctl *RoomController) List(c *gin.Context) {
	rooms, err := ctl.Service.List(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.List(c, "Get room successful", rooms)
}

// GET /api/v1/get-rooms-by-hotelId?hotelId=
func (ctl *RoomController) ListByHotel(c *gin.Context) {
	rooms, err := ctl.Service.ListByHotel(c.Request.Context(), c.Query("hotelId"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.List(c, "Get room successful", rooms)
}

// POST /api/v1/create-room (multipart: fields, avatar, files[])
func (ctl *RoomController) Create(c *gin.Context) {
	var req roomForm
	if err := c.ShouldBind(&req); err != nil {
		resp.Error(c, apperr.NewValidation("invalid request body", err))
		return
	}
	avatar, gallery, err := roomFiles(c)
	if err != nil {
		resp.Error(c, apperr.NewValidation("invalid multipart form", err))
		return
	}

	var hotelID string
	if req.HotelID != nil {
		hotelID = *req.HotelID
	}
	room, err := ctl.Service.Create(c.Request.Context(), hotelID, req.fields(), avatar, gallery)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Add room successful", room)
}

// PUT /api/v1/edit-room/:roomId
func (ctl *RoomController) Edit(c *gin.Context) {
	var req roomForm
	if err := c.ShouldBind(&req); err != nil {
		resp.Error(c, apperr.NewValidation("invalid request body", err))
		return
	}
	avatar, _, err := roomFiles(c)
	if err != nil {
		resp.Error(c, apperr.NewValidation("invalid multipart form", err))
		return
	}

	room, err := ctl.Service.Edit(c.Request.Context(), c.Param("roomId"), req.fields(), avatar)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Update room successful", room)
}

// DELETE /api/v1/delete-room/:roomId
func (ctl *RoomController) Delete(c *gin.Context) {
	if err := ctl.Service.Delete(c.Request.Context(), c.Param("roomId")); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Delete room successful", nil)
}
