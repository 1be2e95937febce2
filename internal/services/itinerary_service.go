package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	dbm "tourline/internal/models/db_models"
	"tourline/internal/models/request_models"
	"tourline/internal/models/response_models"
	"tourline/internal/repositories"
	"tourline/pkg/utils"
)

type ItineraryServiceInterface interface {
	CreateItinerary(ctx context.Context, req request_models.CreateItineraryRequest) (uuid.UUID, error)
	GetItineraryDetails(ctx context.Context, id uuid.UUID) (*response_models.ItineraryResponse, error)
	ListItineraries(ctx context.Context, groupID uuid.UUID) ([]dbm.Itinerary, error)
	AddDay(ctx context.Context, itineraryID uuid.UUID) (uuid.UUID, error)
	AddActivity(ctx context.Context, req request_models.AddActivityRequest) error
	UpdateActivity(ctx context.Context, req request_models.UpdateActivityRequest) error
	RemoveActivity(ctx context.Context, activityID uuid.UUID) error
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepository
}

func NewItineraryService(itineraryRepo repositories.ItineraryRepository) ItineraryServiceInterface {
	return &ItineraryService{itineraryRepo: itineraryRepo}
}

func (s *ItineraryService) CreateItinerary(ctx context.Context, req request_models.CreateItineraryRequest) (uuid.UUID, error) {
	groupID, err := uuid.Parse(req.GroupID)
	if err != nil {
		return uuid.Nil, utils.ErrInvalidInput
	}
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return uuid.Nil, utils.ErrInvalidInput
	}

	itinerary := &dbm.Itinerary{
		GroupID:   groupID,
		Title:     req.Title,
		StartDate: start.Unix(),
	}
	if err := s.itineraryRepo.CreateWithDays(ctx, itinerary, req.Days); err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	return itinerary.ID, nil
}

func (s *ItineraryService) GetItineraryDetails(ctx context.Context, id uuid.UUID) (*response_models.ItineraryResponse, error) {
	itinerary, err := s.itineraryRepo.GetDetailsById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}
	return buildItineraryResponse(itinerary), nil
}

func (s *ItineraryService) ListItineraries(ctx context.Context, groupID uuid.UUID) ([]dbm.Itinerary, error) {
	itineraries, err := s.itineraryRepo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return itineraries, nil
}

func (s *ItineraryService) AddDay(ctx context.Context, itineraryID uuid.UUID) (uuid.UUID, error) {
	itinerary, err := s.itineraryRepo.GetDetailsById(ctx, itineraryID)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return uuid.Nil, utils.ErrItineraryNotFound
	}

	newID, err := s.itineraryRepo.AddDay(ctx, itineraryID)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	return newID, nil
}

func (s *ItineraryService) AddActivity(ctx context.Context, req request_models.AddActivityRequest) error {
	dayID, err := uuid.Parse(req.DayID)
	if err != nil {
		return utils.ErrInvalidInput
	}

	activity := &dbm.ItineraryActivity{
		ItineraryDayID: dayID,
		Time:           req.Time,
		EndTime:        req.EndTime,
		Title:          req.Title,
		Location:       req.Location,
		Notes:          req.Notes,
	}
	if req.SpotID != "" {
		spotID, err := uuid.Parse(req.SpotID)
		if err != nil {
			return utils.ErrInvalidInput
		}
		activity.SpotID = &spotID
	}

	if err := s.itineraryRepo.AddActivity(ctx, activity); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ItineraryService) UpdateActivity(ctx context.Context, req request_models.UpdateActivityRequest) error {
	activityID, err := uuid.Parse(req.ActivityID)
	if err != nil {
		return utils.ErrInvalidInput
	}

	activity := &dbm.ItineraryActivity{
		Time:     req.Time,
		EndTime:  req.EndTime,
		Title:    req.Title,
		Location: req.Location,
		Notes:    req.Notes,
	}
	activity.ID = activityID

	if err := s.itineraryRepo.UpdateActivity(ctx, activity); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ItineraryService) RemoveActivity(ctx context.Context, activityID uuid.UUID) error {
	if err := s.itineraryRepo.RemoveActivity(ctx, activityID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func buildItineraryResponse(itinerary *dbm.Itinerary) *response_models.ItineraryResponse {
	out := &response_models.ItineraryResponse{
		ID:        itinerary.ID.String(),
		Title:     itinerary.Title,
		StartDate: utils.FormatRFC3339TW(utils.FromUnixSecondsTW(itinerary.StartDate)),
		Days:      make([]response_models.ItineraryDayResponse, 0, len(itinerary.Days)),
	}

	for _, day := range itinerary.Days {
		dayResp := response_models.ItineraryDayResponse{
			ID:         day.ID.String(),
			Date:       day.Date.Format("2006-01-02"),
			Activities: make([]response_models.ActivityResponse, 0, len(day.Activities)),
		}
		for _, activity := range day.Activities {
			actResp := response_models.ActivityResponse{
				ID:       activity.ID.String(),
				Time:     activity.Time.Format(time.RFC3339),
				Title:    activity.Title,
				Location: activity.Location,
				Notes:    activity.Notes,
			}
			if activity.EndTime != nil {
				actResp.EndTime = activity.EndTime.Format(time.RFC3339)
			}
			if activity.SpotID != nil {
				actResp.SpotID = activity.SpotID.String()
			}
			if activity.Spot != nil {
				actResp.SpotName = activity.Spot.Name
			}
			dayResp.Activities = append(dayResp.Activities, actResp)
		}
		out.Days = append(out.Days, dayResp)
	}
	return out
}
