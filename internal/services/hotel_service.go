package services

import (
	"context"

	"github.com/google/uuid"

	dbm "tourline/internal/models/db_models"
	"tourline/internal/models/request_models"
	"tourline/internal/repositories"
	"tourline/pkg/utils"
)

type HotelServiceInterface interface {
	ListHotels(ctx context.Context, keyword string) ([]dbm.Hotel, error)
	UpsertHotel(ctx context.Context, req request_models.UpsertHotelRequest) (*dbm.Hotel, error)
	DeleteHotel(ctx context.Context, id uuid.UUID) error
}

type HotelService struct {
	hotelRepo repositories.HotelRepository
}

func NewHotelService(hotelRepo repositories.HotelRepository) HotelServiceInterface {
	return &HotelService{hotelRepo: hotelRepo}
}

func (s *HotelService) ListHotels(ctx context.Context, keyword string) ([]dbm.Hotel, error) {
	var (
		hotels []dbm.Hotel
		err    error
	)
	if keyword == "" {
		hotels, err = s.hotelRepo.List(ctx)
	} else {
		hotels, err = s.hotelRepo.Search(ctx, keyword)
	}
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return hotels, nil
}

func (s *HotelService) UpsertHotel(ctx context.Context, req request_models.UpsertHotelRequest) (*dbm.Hotel, error) {
	hotel := &dbm.Hotel{
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
		Notes:    req.Notes,
		ImageURL: req.ImageURL,
	}
	if req.ID != "" {
		id, err := uuid.Parse(req.ID)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		hotel.ID = id
	}

	if err := s.hotelRepo.Save(ctx, hotel); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return hotel, nil
}

func (s *HotelService) DeleteHotel(ctx context.Context, id uuid.UUID) error {
	if err := s.hotelRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
