package services

import (
	"context"
	"errors"
	"fmt"

	"booking/entity"
	"booking/pkg/apperr"
	"booking/pkg/media"
	"booking/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const msgRoomNotFound = "Room is not found!"

// RoomFields are the descriptive room fields a caller may set. Nil
// means the field was not supplied.
type RoomFields struct {
	HotelID     *string
	Name        *string
	Type        *string
	Description *string
	Price       *float64
	Capacity    *int
	Quantity    *int
}

func (f RoomFields) columns() map[string]any {
	cols := map[string]any{}
	if f.HotelID != nil {
		cols["hotel_id"] = *f.HotelID
	}
	if f.Name != nil {
		cols["name"] = *f.Name
	}
	if f.Type != nil {
		cols["type"] = *f.Type
	}
	if f.Description != nil {
		cols["description"] = *f.Description
	}
	if f.Price != nil {
		cols["price"] = *f.Price
	}
	if f.Capacity != nil {
		cols["capacity"] = *f.Capacity
	}
	if f.Quantity != nil {
		cols["quantity"] = *f.Quantity
	}
	return cols
}

func (f RoomFields) applyTo(r *entity.Room) {
	if f.Name != nil {
		r.Name = *f.Name
	}
	if f.Type != nil {
		r.Type = *f.Type
	}
	if f.Description != nil {
		r.Description = *f.Description
	}
	if f.Price != nil {
		r.Price = *f.Price
	}
	if f.Capacity != nil {
		r.Capacity = *f.Capacity
	}
	if f.Quantity != nil {
		r.Quantity = *f.Quantity
	}
}

type RoomService struct {
	Repo  *repository.RoomRepository
	Media MediaUploader
	Log   *zap.Logger
}

func NewRoomService(repo *repository.RoomRepository, uploader MediaUploader, log *zap.Logger) *RoomService {
	if log == nil {
		log = zap.NewNop()
	}
	return &RoomService{Repo: repo, Media: uploader, Log: log}
}

// RoomFolder is where the images of room id are placed.
func RoomFolder(id string) string {
	return "booking/room/" + id
}

func avatarKey(id string) string { return id + "_avatar" }

func galleryKey(id string, i int) string { return fmt.Sprintf("%s_%d", id, i) }

func (s *RoomService) List(ctx context.Context) ([]entity.Room, error) {
	rooms, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, apperr.NewUpstream(err)
	}
	return rooms, nil
}

func (s *RoomService) ListByHotel(ctx context.Context, hotelID string) ([]entity.Room, error) {
	rooms, err := s.Repo.FindByHotel(ctx, hotelID)
	if err != nil {
		return nil, apperr.NewUpstream(err)
	}
	return rooms, nil
}

// Create persists the room, then uploads the avatar and each gallery
// file in order. Every successful upload is persisted before the next
// one starts, so a failure part way leaves the earlier URLs stored.
func (s *RoomService) Create(ctx context.Context, hotelID string, fields RoomFields, avatar *media.File, gallery []media.File) (*entity.Room, error) {
	if !entity.IsID(hotelID) {
		return nil, apperr.NewValidation("invalid hotelId", fmt.Errorf("%q is not a valid ObjectID", hotelID))
	}
	if avatar == nil {
		return nil, apperr.NewValidation("avatar is required", nil)
	}

	room := &entity.Room{HotelID: hotelID}
	fields.applyTo(room)
	if err := s.Repo.Create(ctx, room); err != nil {
		return nil, apperr.NewUpstream(err)
	}
	log := s.Log.With(zap.String("room_id", room.ID))
	log.Info("room created", zap.String("hotel_id", hotelID), zap.Int("gallery_files", len(gallery)))

	if err := s.replaceAvatar(ctx, room.ID, *avatar); err != nil {
		return nil, err
	}

	if len(gallery) > 0 {
		urls := make([]string, 0, len(gallery))
		for i, f := range gallery {
			url, err := s.upload(ctx, f, galleryKey(room.ID, i), RoomFolder(room.ID))
			if err != nil {
				log.Warn("gallery upload failed", zap.Int("index", i), zap.Int("persisted", len(urls)), zap.Error(err))
				return nil, err
			}
			urls = append(urls, url)
			if err := s.Repo.SetGallery(ctx, room.ID, urls); err != nil {
				return nil, apperr.NewUpstream(err)
			}
		}
	}

	return s.reload(ctx, room.ID)
}

// Edit merges fields into an existing room and, when avatar is given,
// replaces its avatar. The two writes are independent.
func (s *RoomService) Edit(ctx context.Context, id string, fields RoomFields, avatar *media.File) (*entity.Room, error) {
	if !entity.IsID(id) {
		return nil, apperr.NewValidation("invalid roomId", fmt.Errorf("%q is not a valid ObjectID", id))
	}
	if _, err := s.find(ctx, id); err != nil {
		return nil, err
	}
	if fields.HotelID != nil && !entity.IsID(*fields.HotelID) {
		return nil, apperr.NewValidation("invalid hotelId", fmt.Errorf("%q is not a valid ObjectID", *fields.HotelID))
	}

	if err := s.Repo.Update(ctx, id, fields.columns()); err != nil {
		return nil, apperr.NewUpstream(err)
	}
	if avatar != nil {
		if err := s.replaceAvatar(ctx, id, *avatar); err != nil {
			return nil, err
		}
	}
	return s.reload(ctx, id)
}

// Delete removes the room by its identifier, then destroys its images.
// Image cleanup failures are logged and do not fail the delete.
func (s *RoomService) Delete(ctx context.Context, id string) error {
	if !entity.IsID(id) {
		return apperr.NewValidation("invalid roomId", fmt.Errorf("%q is not a valid ObjectID", id))
	}
	room, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	deleted, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return apperr.NewUpstream(err)
	}
	if !deleted {
		return apperr.NewNotFound(msgRoomNotFound)
	}

	folder := RoomFolder(id)
	var assets []string
	if room.ImgRoom.Avatar != "" {
		assets = append(assets, folder+"/"+avatarKey(id))
	}
	for i := range room.ImgRoom.Img {
		assets = append(assets, folder+"/"+galleryKey(id, i))
	}
	for _, publicID := range assets {
		if err := s.Media.Destroy(ctx, publicID); err != nil {
			s.Log.Warn("room image cleanup failed", zap.String("room_id", id), zap.String("public_id", publicID), zap.Error(err))
		}
	}
	s.Log.Info("room deleted", zap.String("room_id", id), zap.Int("images", len(assets)))
	return nil
}

func (s *RoomService) replaceAvatar(ctx context.Context, id string, f media.File) error {
	url, err := s.upload(ctx, f, avatarKey(id), RoomFolder(id))
	if err != nil {
		s.Log.Warn("avatar upload failed", zap.String("room_id", id), zap.Error(err))
		return err
	}
	if err := s.Repo.SetAvatar(ctx, id, url); err != nil {
		return apperr.NewUpstream(err)
	}
	return nil
}

func (s *RoomService) upload(ctx context.Context, f media.File, publicID, folder string) (string, error) {
	url, err := s.Media.Upload(ctx, f, publicID, folder)
	if err != nil {
		return "", apperr.NewUpstream(err)
	}
	return url, nil
}

func (s *RoomService) find(ctx context.Context, id string) (*entity.Room, error) {
	room, err := s.Repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NewNotFound(msgRoomNotFound)
	}
	if err != nil {
		return nil, apperr.NewUpstream(err)
	}
	return room, nil
}

func (s *RoomService) reload(ctx context.Context, id string) (*entity.Room, error) {
	room, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.NewUpstream(err)
	}
	return room, nil
}
