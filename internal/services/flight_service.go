// internal/services/flight_service.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"tourline/internal/models/response_models"
	"tourline/pkg/memcache"
)

type FlightConfig struct {
	APIKey  string // optional; mock generator is used when empty
	BaseURL string
}

type FlightServiceInterface interface {
	GetStatus(ctx context.Context, flightNumber string, date string) (*response_models.FlightStatusResponse, error)
}

type flightService struct {
	http  *http.Client
	cfg   FlightConfig
	cache memcache.TTLCache[*response_models.FlightStatusResponse]
}

const flightCacheTTL = 5 * time.Minute

func NewFlightService(cfg FlightConfig, httpClient *http.Client, cache memcache.TTLCache[*response_models.FlightStatusResponse]) FlightServiceInterface {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if cache == nil {
		cache = memcache.NewTTLCache[*response_models.FlightStatusResponse]()
	}
	return &flightService{
		http:  httpClient,
		cfg:   cfg,
		cache: cache,
	}
}

// GetStatus never fails the caller: when the provider is unreachable or no
// API key is configured, a deterministic mock result is returned instead.
// This is a non-critical display, so availability wins over correctness.
func (s *flightService) GetStatus(ctx context.Context, flightNumber string, date string) (*response_models.FlightStatusResponse, error) {
	flightNumber = strings.ToUpper(strings.TrimSpace(flightNumber))
	if flightNumber == "" {
		return nil, fmt.Errorf("flight number is required")
	}
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	key := flightNumber + "|" + date
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	var status *response_models.FlightStatusResponse
	if s.cfg.APIKey == "" {
		status = mockFlightStatus(flightNumber, date)
	} else {
		live, err := s.fetchLive(ctx, flightNumber, date)
		if err != nil {
			logrus.WithError(err).WithField("flight", flightNumber).
				Warn("flight provider failed, falling back to mock data")
			live = mockFlightStatus(flightNumber, date)
		}
		status = live
	}

	s.cache.Set(key, status, flightCacheTTL)
	return status, nil
}

func (s *flightService) fetchLive(ctx context.Context, flightNumber string, date string) (*response_models.FlightStatusResponse, error) {
	endpoint := fmt.Sprintf("%s/flights/number/%s/%s",
		s.cfg.BaseURL, url.PathEscape(flightNumber), url.PathEscape(date))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-RapidAPI-Key", s.cfg.APIKey)

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("flight provider status %d", resp.StatusCode)
	}

	var payload []struct {
		Status    string `json:"status"`
		Departure struct {
			Airport struct {
				IATA string `json:"iata"`
			} `json:"airport"`
			ScheduledTime struct {
				Local string `json:"local"`
			} `json:"scheduledTime"`
			Gate     string `json:"gate"`
			Terminal string `json:"terminal"`
		} `json:"departure"`
		Arrival struct {
			Airport struct {
				IATA string `json:"iata"`
			} `json:"airport"`
			ScheduledTime struct {
				Local string `json:"local"`
			} `json:"scheduledTime"`
		} `json:"arrival"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return nil, fmt.Errorf("flight provider returned no legs")
	}

	leg := payload[0]
	return &response_models.FlightStatusResponse{
		FlightNumber: flightNumber,
		Date:         date,
		Status:       leg.Status,
		Departure:    leg.Departure.Airport.IATA,
		Arrival:      leg.Arrival.Airport.IATA,
		ScheduledDep: leg.Departure.ScheduledTime.Local,
		ScheduledArr: leg.Arrival.ScheduledTime.Local,
		Gate:         leg.Departure.Gate,
		Terminal:     leg.Departure.Terminal,
	}, nil
}

// ------------------- Mock generator -------------------

var mockStatuses = []string{"Scheduled", "Boarding", "Departed", "En Route", "Landed", "Delayed"}

var mockAirports = []string{"TPE", "NRT", "KIX", "HND", "ICN", "HKG", "BKK", "SIN"}

// mockFlightStatus derives everything from a hash of flight number + date so
// repeated lookups agree with each other.
func mockFlightStatus(flightNumber string, date string) *response_models.FlightStatusResponse {
	h := fnv.New64a()
	h.Write([]byte(flightNumber))
	h.Write([]byte(date))
	seed := h.Sum64()

	dep := mockAirports[seed%uint64(len(mockAirports))]
	arr := mockAirports[(seed/7)%uint64(len(mockAirports))]
	if arr == dep {
		arr = mockAirports[(seed/7+1)%uint64(len(mockAirports))]
	}

	depHour := 6 + int(seed%16) // 06:00 .. 21:00
	durationMin := 90 + int((seed/11)%300)
	depTime := fmt.Sprintf("%s %02d:%02d", date, depHour, int((seed/3)%60))
	arrMinutes := depHour*60 + int((seed/3)%60) + durationMin
	arrTime := fmt.Sprintf("%s %02d:%02d", date, (arrMinutes/60)%24, arrMinutes%60)

	return &response_models.FlightStatusResponse{
		FlightNumber: flightNumber,
		Date:         date,
		Status:       mockStatuses[(seed/13)%uint64(len(mockStatuses))],
		Departure:    dep,
		Arrival:      arr,
		ScheduledDep: depTime,
		ScheduledArr: arrTime,
		Gate:         fmt.Sprintf("%c%d", 'A'+byte((seed/17)%6), 1+(seed/19)%30),
		Terminal:     fmt.Sprintf("%d", 1+(seed/23)%3),
		Mock:         true,
	}
}
