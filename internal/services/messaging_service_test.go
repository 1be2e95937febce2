package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "tourline/internal/models/db_models"
	"tourline/internal/models/request_models"
	"tourline/pkg/utils"
)

type fakeGroupRepo struct {
	groups map[uuid.UUID]*dbm.Group
}

func newFakeGroupRepo() *fakeGroupRepo {
	return &fakeGroupRepo{groups: make(map[uuid.UUID]*dbm.Group)}
}

func (f *fakeGroupRepo) Insert(ctx context.Context, group *dbm.Group) error {
	if group.ID == uuid.Nil {
		group.ID = uuid.New()
	}
	f.groups[group.ID] = group
	return nil
}

func (f *fakeGroupRepo) Update(ctx context.Context, group *dbm.Group) error {
	f.groups[group.ID] = group
	return nil
}

func (f *fakeGroupRepo) FindById(ctx context.Context, id uuid.UUID) (*dbm.Group, error) {
	return f.groups[id], nil
}

func (f *fakeGroupRepo) FindByJoinCode(ctx context.Context, joinCode string) (*dbm.Group, error) {
	for _, group := range f.groups {
		if group.JoinCode == joinCode {
			return group, nil
		}
	}
	return nil, nil
}

func (f *fakeGroupRepo) ListByLeader(ctx context.Context, leaderID uuid.UUID) ([]dbm.Group, error) {
	var out []dbm.Group
	for _, group := range f.groups {
		if group.LeaderID == leaderID {
			out = append(out, *group)
		}
	}
	return out, nil
}

func (f *fakeGroupRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.groups, id)
	return nil
}

type lineCall struct {
	path string
	auth string
	body map[string]interface{}
}

func newLineTestServer(t *testing.T, status int) (*httptest.Server, *[]lineCall) {
	t.Helper()
	var mu sync.Mutex
	calls := &[]lineCall{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		mu.Lock()
		*calls = append(*calls, lineCall{
			path: r.URL.Path,
			auth: r.Header.Get("Authorization"),
			body: body,
		})
		mu.Unlock()
		w.WriteHeader(status)
	}))
	t.Cleanup(server.Close)
	return server, calls
}

func newMessagingService(baseURL string, travelerRepo *fakeTravelerRepo, groupRepo *fakeGroupRepo) MessagingServiceInterface {
	return NewLineMessagingService(LineConfig{
		ChannelToken: "test-token",
		BaseURL:      baseURL,
	}, nil, travelerRepo, groupRepo)
}

func TestPushToOne(t *testing.T) {
	server, calls := newLineTestServer(t, http.StatusOK)
	service := newMessagingService(server.URL, newFakeTravelerRepo(), newFakeGroupRepo())

	err := service.PushToOne(context.Background(), "U123", "集合時間到了")
	require.NoError(t, err)

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, "/v2/bot/message/push", call.path)
	assert.Equal(t, "Bearer test-token", call.auth)
	assert.Equal(t, "U123", call.body["to"])
}

func TestPushToOneProviderFailure(t *testing.T) {
	server, _ := newLineTestServer(t, http.StatusTooManyRequests)
	service := newMessagingService(server.URL, newFakeTravelerRepo(), newFakeGroupRepo())

	err := service.PushToOne(context.Background(), "U123", "hello")
	assert.ErrorIs(t, err, utils.ErrMessagingProvider)
}

func TestMulticastDeduplicates(t *testing.T) {
	server, calls := newLineTestServer(t, http.StatusOK)
	service := newMessagingService(server.URL, newFakeTravelerRepo(), newFakeGroupRepo())

	sent, err := service.Multicast(context.Background(),
		[]string{"U1", "U2", "U1", "", "U3", "U2"},
		[]request_models.MessageBlock{{Type: "text", Text: "hi"}})
	require.NoError(t, err)
	assert.Equal(t, 3, sent)

	require.Len(t, *calls, 1)
	recipients := (*calls)[0].body["to"].([]interface{})
	assert.Equal(t, []interface{}{"U1", "U2", "U3"}, recipients, "order is preserved")
}

func TestMulticastEmptyIsNoOp(t *testing.T) {
	server, calls := newLineTestServer(t, http.StatusOK)
	service := newMessagingService(server.URL, newFakeTravelerRepo(), newFakeGroupRepo())

	sent, err := service.Multicast(context.Background(), []string{"", ""}, []request_models.MessageBlock{{Type: "text", Text: "hi"}})
	require.NoError(t, err)
	assert.Zero(t, sent)
	assert.Empty(t, *calls, "no provider call for an empty recipient list")
}

func TestBroadcastSendsToBoundTravelers(t *testing.T) {
	server, calls := newLineTestServer(t, http.StatusOK)
	travelerRepo := newFakeTravelerRepo()
	groupRepo := newFakeGroupRepo()
	service := newMessagingService(server.URL, travelerRepo, groupRepo)

	group := &dbm.Group{Name: "東京五日"}
	require.NoError(t, groupRepo.Insert(context.Background(), group))

	bound := "U-bound"
	travelerRepo.travelers[uuid.New()] = &dbm.Traveler{
		BaseModel: dbm.BaseModel{ID: uuid.New()}, GroupID: &group.ID,
		FullName: "王小明", MessagingIdentity: &bound,
	}
	travelerRepo.travelers[uuid.New()] = &dbm.Traveler{
		BaseModel: dbm.BaseModel{ID: uuid.New()}, GroupID: &group.ID,
		FullName: "陳大文", // never bound, excluded
	}

	sent, err := service.Broadcast(context.Background(), group.ID, "明早七點出發")
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	require.Len(t, *calls, 1)
	assert.Equal(t, "/v2/bot/message/multicast", (*calls)[0].path)
}

func TestBroadcastUnknownGroup(t *testing.T) {
	server, _ := newLineTestServer(t, http.StatusOK)
	service := newMessagingService(server.URL, newFakeTravelerRepo(), newFakeGroupRepo())

	_, err := service.Broadcast(context.Background(), uuid.New(), "hi")
	assert.ErrorIs(t, err, utils.ErrGroupNotFound)
}

func TestBindIdentity(t *testing.T) {
	travelerRepo := newFakeTravelerRepo()
	groupRepo := newFakeGroupRepo()
	service := newMessagingService("http://unused", travelerRepo, groupRepo)

	group := &dbm.Group{Name: "東京五日", JoinCode: "ABC123"}
	require.NoError(t, groupRepo.Insert(context.Background(), group))

	travelerID := uuid.New()
	travelerRepo.travelers[travelerID] = &dbm.Traveler{
		BaseModel: dbm.BaseModel{ID: travelerID}, GroupID: &group.ID, FullName: "王小明",
	}

	// Join code matching is case-insensitive on input.
	err := service.BindIdentity(context.Background(), "王小明", " abc123 ", "U456")
	require.NoError(t, err)
	assert.Equal(t, "U456", travelerRepo.bound[travelerID])
}

func TestBindIdentityUnknownJoinCode(t *testing.T) {
	service := newMessagingService("http://unused", newFakeTravelerRepo(), newFakeGroupRepo())

	err := service.BindIdentity(context.Background(), "王小明", "NOPE99", "U456")
	assert.ErrorIs(t, err, utils.ErrGroupNotFound)
}

func TestBindIdentityUnknownTraveler(t *testing.T) {
	groupRepo := newFakeGroupRepo()
	group := &dbm.Group{Name: "東京五日", JoinCode: "ABC123"}
	require.NoError(t, groupRepo.Insert(context.Background(), group))
	service := newMessagingService("http://unused", newFakeTravelerRepo(), groupRepo)

	err := service.BindIdentity(context.Background(), "查無此人", "ABC123", "U456")
	assert.ErrorIs(t, err, utils.ErrTravelerNotFound)
}
