package response_models

type FlightStatusResponse struct {
	FlightNumber string `json:"flight_number"`
	Date         string `json:"date"`
	Status       string `json:"status"`
	Departure    string `json:"departure"`
	Arrival      string `json:"arrival"`
	ScheduledDep string `json:"scheduled_departure"`
	ScheduledArr string `json:"scheduled_arrival"`
	Gate         string `json:"gate,omitempty"`
	Terminal     string `json:"terminal,omitempty"`
	// True when the data came from the deterministic generator instead of
	// the live provider.
	Mock bool `json:"mock"`
}
