package request_models

import "time"

type CreateItineraryRequest struct {
	GroupID   string `json:"group_id" binding:"required,uuid4"`
	Title     string `json:"title" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	Days      int    `json:"days" binding:"required,min=1,max=60"`
}

type AddActivityRequest struct {
	DayID    string     `json:"day_id" binding:"required,uuid4"`
	Time     time.Time  `json:"time" binding:"required"`
	EndTime  *time.Time `json:"end_time"`
	Title    string     `json:"title" binding:"required"`
	Location string     `json:"location"`
	Notes    string     `json:"notes"`
	SpotID   string     `json:"spot_id"`
}

type UpdateActivityRequest struct {
	ActivityID string     `json:"activity_id" binding:"required,uuid4"`
	Time       time.Time  `json:"time" binding:"required"`
	EndTime    *time.Time `json:"end_time"`
	Title      string     `json:"title" binding:"required"`
	Location   string     `json:"location"`
	Notes      string     `json:"notes"`
}

type RemoveActivityRequest struct {
	ActivityID string `json:"activity_id" binding:"required,uuid4"`
}

type AddDayRequest struct {
	ItineraryID string `json:"itinerary_id" binding:"required,uuid4"`
}
