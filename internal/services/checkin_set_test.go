package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCheckinSetApplyInsert(t *testing.T) {
	id := uuid.New()
	set := NewCheckinSet()

	next := set.Apply(CheckinEvent{Event: EventCheckIn, TravelerID: id})

	assert.True(t, next.Contains(id))
	assert.False(t, set.Contains(id), "Apply must not mutate the prior state")
}

func TestCheckinSetApplyDelete(t *testing.T) {
	id := uuid.New()
	set := NewCheckinSet(id)

	next := set.Apply(CheckinEvent{Event: EventCheckOut, TravelerID: id})

	assert.False(t, next.Contains(id))
	assert.True(t, set.Contains(id))
}

func TestCheckinSetLastEventWins(t *testing.T) {
	id := uuid.New()
	set := NewCheckinSet()

	set = set.Apply(CheckinEvent{Event: EventCheckIn, TravelerID: id})
	set = set.Apply(CheckinEvent{Event: EventCheckOut, TravelerID: id})
	set = set.Apply(CheckinEvent{Event: EventCheckIn, TravelerID: id})

	assert.True(t, set.Contains(id))
	assert.Len(t, set, 1)
}

func TestCheckinSetIgnoresUnknownEvents(t *testing.T) {
	id := uuid.New()
	set := NewCheckinSet(id)

	next := set.Apply(CheckinEvent{Event: EventSOS, TravelerID: id})

	assert.True(t, next.Contains(id), "SOS events do not change presence")
}

func TestCheckinSetDeleteIsIdempotent(t *testing.T) {
	id := uuid.New()
	set := NewCheckinSet()

	next := set.Apply(CheckinEvent{Event: EventCheckOut, TravelerID: id})

	assert.Empty(t, next)
}
