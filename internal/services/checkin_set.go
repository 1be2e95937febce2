package services

import "github.com/google/uuid"

const (
	EventCheckIn  = "INSERT"
	EventCheckOut = "DELETE"
	EventSOS      = "SOS"
)

// CheckinEvent is what the realtime channel delivers: enough for a viewer to
// update its checked-in set without a refetch. Group filtering happens on the
// consumer side by cross-referencing traveler_id against its roster.
type CheckinEvent struct {
	Event        string    `json:"event"`
	TravelerID   uuid.UUID `json:"traveler_id"`
	LocationName string    `json:"location_name,omitempty"`
	Message      string    `json:"message,omitempty"`
}

// CheckinSet is the presence state derived from events. Apply is a pure
// reducer: it computes the next state from the latest prior state, so event
// handlers never mutate a stale snapshot. Last event wins per traveler.
type CheckinSet map[uuid.UUID]struct{}

func NewCheckinSet(ids ...uuid.UUID) CheckinSet {
	set := make(CheckinSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (s CheckinSet) Contains(travelerID uuid.UUID) bool {
	_, ok := s[travelerID]
	return ok
}

func (s CheckinSet) Apply(event CheckinEvent) CheckinSet {
	next := make(CheckinSet, len(s)+1)
	for id := range s {
		next[id] = struct{}{}
	}

	switch event.Event {
	case EventCheckIn:
		next[event.TravelerID] = struct{}{}
	case EventCheckOut:
		delete(next, event.TravelerID)
	}
	return next
}
