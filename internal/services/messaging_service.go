// internal/services/messaging_service.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"tourline/internal/models/request_models"
	"tourline/internal/repositories"
	"tourline/pkg/utils"
)

// LineConfig holds the server-side credential for the LINE Messaging API.
// The channel token never reaches a client.
type LineConfig struct {
	ChannelToken string
	BaseURL      string // e.g. "https://api.line.me"
}

type MessagingServiceInterface interface {
	PushToOne(ctx context.Context, to string, text string) error
	// Multicast deduplicates recipients before sending and no-ops with a
	// zero count when the deduplicated list is empty. Failure is
	// all-or-nothing for the call; there is no per-recipient accounting.
	Multicast(ctx context.Context, to []string, messages []request_models.MessageBlock) (int, error)
	Broadcast(ctx context.Context, groupID uuid.UUID, text string) (int, error)
	BindIdentity(ctx context.Context, displayName string, joinCode string, lineUserID string) error
}

type lineMessagingService struct {
	http         *http.Client
	cfg          LineConfig
	travelerRepo repositories.TravelerRepository
	groupRepo    repositories.GroupRepository
}

func NewLineMessagingService(
	cfg LineConfig,
	httpClient *http.Client,
	travelerRepo repositories.TravelerRepository,
	groupRepo repositories.GroupRepository,
) MessagingServiceInterface {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &lineMessagingService{
		http:         httpClient,
		cfg:          cfg,
		travelerRepo: travelerRepo,
		groupRepo:    groupRepo,
	}
}

func (s *lineMessagingService) PushToOne(ctx context.Context, to string, text string) error {
	if to == "" || text == "" {
		return utils.ErrInvalidInput
	}

	body := map[string]interface{}{
		"to": to,
		"messages": []request_models.MessageBlock{
			{Type: "text", Text: text},
		},
	}
	return s.post(ctx, "/v2/bot/message/push", body)
}

func (s *lineMessagingService) Multicast(ctx context.Context, to []string, messages []request_models.MessageBlock) (int, error) {
	recipients := dedupe(to)
	if len(recipients) == 0 {
		return 0, nil
	}
	if len(messages) == 0 {
		return 0, utils.ErrInvalidInput
	}

	// Provider limit (500 recipients per call) is a known constraint and
	// is not chunked here.
	body := map[string]interface{}{
		"to":       recipients,
		"messages": messages,
	}
	if err := s.post(ctx, "/v2/bot/message/multicast", body); err != nil {
		return 0, err
	}
	return len(recipients), nil
}

func (s *lineMessagingService) Broadcast(ctx context.Context, groupID uuid.UUID, text string) (int, error) {
	group, err := s.groupRepo.FindById(ctx, groupID)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	if group == nil {
		return 0, utils.ErrGroupNotFound
	}

	travelers, err := s.travelerRepo.ListBoundByGroup(ctx, groupID)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}

	recipients := make([]string, 0, len(travelers))
	for _, traveler := range travelers {
		if traveler.MessagingIdentity != nil {
			recipients = append(recipients, *traveler.MessagingIdentity)
		}
	}

	return s.Multicast(ctx, recipients, []request_models.MessageBlock{
		{Type: "text", Text: text},
	})
}

// BindIdentity associates a LINE user with a traveler by matching display
// name inside the group that owns the join code. Not-found errors surface to
// the caller untouched.
func (s *lineMessagingService) BindIdentity(ctx context.Context, displayName string, joinCode string, lineUserID string) error {
	if displayName == "" || joinCode == "" || lineUserID == "" {
		return utils.ErrInvalidInput
	}

	group, err := s.groupRepo.FindByJoinCode(ctx, strings.ToUpper(strings.TrimSpace(joinCode)))
	if err != nil {
		return utils.ErrDatabaseError
	}
	if group == nil {
		return utils.ErrGroupNotFound
	}

	traveler, err := s.travelerRepo.FindByGroupAndName(ctx, group.ID, strings.TrimSpace(displayName))
	if err != nil {
		return utils.ErrDatabaseError
	}
	if traveler == nil {
		return utils.ErrTravelerNotFound
	}

	if err := s.travelerRepo.UpdateMessagingIdentity(ctx, traveler.ID, lineUserID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *lineMessagingService) post(ctx context.Context, path string, body interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.ChannelToken)

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrMessagingProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// The provider response is surfaced as an opaque error string;
		// no retry, no backoff.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: status %d: %s", utils.ErrMessagingProvider, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	return nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
