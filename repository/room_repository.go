package repository

import (
	"context"

	"booking/entity"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RoomRepository struct {
	DB *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{DB: db}
}

// FindAll loads every room with its hotel expanded.
func (r *RoomRepository) FindAll(ctx context.Context) ([]entity.Room, error) {
	var rooms []entity.Room
	err := r.DB.WithContext(ctx).
		Preload("Hotel").
		Order("rooms.created_at ASC").
		Find(&rooms).Error
	return rooms, err
}

// FindByHotel keeps only rooms whose expanded hotel has exactly hotelID.
// The inner join drops rooms that point at a missing hotel.
func (r *RoomRepository) FindByHotel(ctx context.Context, hotelID string) ([]entity.Room, error) {
	var rooms []entity.Room
	err := r.DB.WithContext(ctx).
		Joins("JOIN hotels ON hotels.id = rooms.hotel_id").
		Where("hotels.id = ?", hotelID).
		Preload("Hotel").
		Order("rooms.created_at ASC").
		Find(&rooms).Error
	return rooms, err
}

// FindByID returns gorm.ErrRecordNotFound when no room has id.
func (r *RoomRepository) FindByID(ctx context.Context, id string) (*entity.Room, error) {
	var room entity.Room
	err := r.DB.WithContext(ctx).
		Preload("Hotel").
		Where("rooms.id = ?", id).
		First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *RoomRepository) Create(ctx context.Context, room *entity.Room) error {
	return r.DB.WithContext(ctx).Omit("Hotel").Create(room).Error
}

// Update merges the given columns into the room.
func (r *RoomRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).
		Model(&entity.Room{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *RoomRepository) SetAvatar(ctx context.Context, id, url string) error {
	return r.DB.WithContext(ctx).
		Model(&entity.Room{}).
		Where("id = ?", id).
		Update("img_room_avatar", url).Error
}

// SetGallery replaces the gallery with urls.
func (r *RoomRepository) SetGallery(ctx context.Context, id string, urls []string) error {
	if urls == nil {
		urls = []string{}
	}
	return r.DB.WithContext(ctx).
		Model(&entity.Room{}).
		Where("id = ?", id).
		Update("img_room_img", datatypes.JSONSlice[string](urls)).Error
}

// Delete removes the room and reports whether a row was deleted.
func (r *RoomRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&entity.Room{})
	return res.RowsAffected > 0, res.Error
}
