package services

import (
	"context"

	"github.com/google/uuid"

	dbm "tourline/internal/models/db_models"
	"tourline/internal/models/request_models"
	"tourline/internal/repositories"
	"tourline/pkg/utils"
)

type SpotServiceInterface interface {
	ListSpots(ctx context.Context, keyword string) ([]dbm.Spot, error)
	UpsertSpot(ctx context.Context, req request_models.UpsertSpotRequest) (*dbm.Spot, error)
	DeleteSpot(ctx context.Context, id uuid.UUID) error
}

type SpotService struct {
	spotRepo repositories.SpotRepository
}

func NewSpotService(spotRepo repositories.SpotRepository) SpotServiceInterface {
	return &SpotService{spotRepo: spotRepo}
}

func (s *SpotService) ListSpots(ctx context.Context, keyword string) ([]dbm.Spot, error) {
	var (
		spots []dbm.Spot
		err   error
	)
	if keyword == "" {
		spots, err = s.spotRepo.List(ctx)
	} else {
		spots, err = s.spotRepo.Search(ctx, keyword)
	}
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return spots, nil
}

func (s *SpotService) UpsertSpot(ctx context.Context, req request_models.UpsertSpotRequest) (*dbm.Spot, error) {
	spot := &dbm.Spot{
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
		Phone:       req.Phone,
		ImageURL:    req.ImageURL,
	}
	if req.ID != "" {
		id, err := uuid.Parse(req.ID)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		spot.ID = id
	}

	if err := s.spotRepo.Save(ctx, spot); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return spot, nil
}

func (s *SpotService) DeleteSpot(ctx context.Context, id uuid.UUID) error {
	if err := s.spotRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
