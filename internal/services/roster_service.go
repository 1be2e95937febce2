package services

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"

	dbm "tourline/internal/models/db_models"
	"tourline/internal/models/request_models"
	"tourline/internal/repositories"
	"tourline/pkg/utils"
)

// SaveResult distinguishes a full save from a degraded one where only the
// stable core fields made it to storage.
type SaveResult struct {
	ID       uuid.UUID
	Degraded bool
}

type RosterServiceInterface interface {
	ListTravelers(ctx context.Context, groupID uuid.UUID) ([]dbm.Traveler, error)
	UpsertTraveler(ctx context.Context, req request_models.UpsertTravelerRequest) (*SaveResult, error)
	BulkImport(ctx context.Context, groupID uuid.UUID, rows []map[string]string) (inserted int, skipped int, err error)
	DeleteTraveler(ctx context.Context, id uuid.UUID) error
}

type RosterService struct {
	travelerRepo repositories.TravelerRepository
}

func NewRosterService(travelerRepo repositories.TravelerRepository) RosterServiceInterface {
	return &RosterService{
		travelerRepo: travelerRepo,
	}
}

// ListTravelers returns the group roster in room order. Rows are read as raw
// column maps and normalized, because the persisted schema has evolved and
// legacy rows may still carry old field names. A traveler is never dropped
// for a missing or renamed field; defaults fill the gaps.
func (s *RosterService) ListTravelers(ctx context.Context, groupID uuid.UUID) ([]dbm.Traveler, error) {
	rows, err := s.travelerRepo.ListRawByGroup(ctx, groupID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	travelers := make([]dbm.Traveler, 0, len(rows))
	for _, row := range rows {
		travelers = append(travelers, normalizeTravelerRow(row))
	}

	SortByRoom(travelers)
	return travelers, nil
}

// SortByRoom orders travelers by room number with numeric-aware comparison
// ("9" before "10"). The sort is stable: ties keep their original order.
func SortByRoom(travelers []dbm.Traveler) {
	sort.SliceStable(travelers, func(i, j int) bool {
		return utils.CompareRoomNumbers(travelers[i].RoomNumber, travelers[j].RoomNumber) < 0
	})
}

func (s *RosterService) UpsertTraveler(ctx context.Context, req request_models.UpsertTravelerRequest) (*SaveResult, error) {
	if strings.TrimSpace(req.FullName) == "" || strings.TrimSpace(req.RoomNumber) == "" {
		return nil, utils.ErrInvalidInput
	}

	traveler := &dbm.Traveler{
		FullName:     strings.TrimSpace(req.FullName),
		RoomNumber:   strings.TrimSpace(req.RoomNumber),
		Gender:       req.Gender,
		DietaryNeeds: req.DietaryNeeds,
	}
	if traveler.Gender == "" {
		traveler.Gender = dbm.GenderUnspecified
	}
	if traveler.DietaryNeeds == "" {
		traveler.DietaryNeeds = dbm.DietaryNone
	}
	if req.MessagingIdentity != "" {
		identity := req.MessagingIdentity
		traveler.MessagingIdentity = &identity
	}
	if req.ID != "" {
		id, err := uuid.Parse(req.ID)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		traveler.ID = id
	}
	if req.GroupID != "" {
		groupID, err := uuid.Parse(req.GroupID)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		traveler.GroupID = &groupID
	}

	err := s.travelerRepo.Save(ctx, traveler)
	if err == nil {
		return &SaveResult{ID: traveler.ID}, nil
	}

	if !isUndefinedColumn(err) {
		return nil, utils.ErrDatabaseError
	}

	// Schema drift: an optional column is missing server-side. Replay the
	// write with the core field set and report degraded success.
	logrus.WithError(err).Warn("traveler save hit missing column, retrying with core fields")
	if err := s.travelerRepo.SaveCore(ctx, traveler); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &SaveResult{ID: traveler.ID, Degraded: true}, nil
}

// BulkImport maps arbitrary spreadsheet rows onto the canonical schema. Rows
// lacking a resolvable name are skipped; the batch never aborts because of
// them.
func (s *RosterService) BulkImport(ctx context.Context, groupID uuid.UUID, rows []map[string]string) (int, int, error) {
	travelers := make([]*dbm.Traveler, 0, len(rows))
	skipped := 0

	for _, row := range rows {
		fields := resolveImportRow(row)

		name := strings.TrimSpace(fields["full_name"])
		if name == "" {
			skipped++
			continue
		}

		gid := groupID
		traveler := &dbm.Traveler{
			GroupID:      &gid,
			FullName:     name,
			RoomNumber:   strings.TrimSpace(fields["room_number"]),
			Gender:       strings.TrimSpace(fields["gender"]),
			DietaryNeeds: strings.TrimSpace(fields["dietary_needs"]),
		}
		if traveler.Gender == "" {
			traveler.Gender = dbm.GenderUnspecified
		}
		if traveler.DietaryNeeds == "" {
			traveler.DietaryNeeds = dbm.DietaryNone
		}
		if identity := strings.TrimSpace(fields["messaging_identity"]); identity != "" {
			traveler.MessagingIdentity = &identity
		}

		travelers = append(travelers, traveler)
	}

	inserted, err := s.travelerRepo.BulkInsert(ctx, travelers)
	if err != nil {
		return 0, 0, utils.ErrDatabaseError
	}
	return inserted, skipped, nil
}

func (s *RosterService) DeleteTraveler(ctx context.Context, id uuid.UUID) error {
	if err := s.travelerRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// ------------------- Normalization -------------------

const undefinedColumnCode = "42703"

func isUndefinedColumn(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == undefinedColumnCode
}

// headerAliases maps canonical field names to the spreadsheet headers and
// legacy column names seen in the wild. Matching is case-insensitive and
// whitespace-trimmed.
var headerAliases = map[string][]string{
	"full_name":          {"full_name", "fullname", "name", "姓名", "名字"},
	"room_number":        {"room_number", "room", "room_no", "roomno", "房號", "房号", "房間", "房间"},
	"gender":             {"gender", "sex", "性別", "性别"},
	"dietary_needs":      {"dietary_needs", "dietary", "diet", "飲食", "饮食", "飲食需求", "饮食需求"},
	"messaging_identity": {"messaging_identity", "line_id", "lineid", "line"},
}

func canonicalHeader(header string) string {
	needle := strings.ToLower(strings.TrimSpace(header))
	for canonical, aliases := range headerAliases {
		for _, alias := range aliases {
			if needle == strings.ToLower(alias) {
				return canonical
			}
		}
	}
	return ""
}

func resolveImportRow(row map[string]string) map[string]string {
	fields := make(map[string]string, len(row))
	for header, value := range row {
		canonical := canonicalHeader(header)
		if canonical == "" {
			continue
		}
		if _, taken := fields[canonical]; taken && strings.TrimSpace(value) == "" {
			continue
		}
		fields[canonical] = value
	}
	return fields
}

// normalizeTravelerRow maps one raw storage row onto the canonical Traveler.
// Legacy field names are honored and missing values fall back to defaults.
func normalizeTravelerRow(row map[string]interface{}) dbm.Traveler {
	traveler := dbm.Traveler{
		FullName:     firstString(row, "full_name", "name"),
		RoomNumber:   firstString(row, "room_number", "room", "room_no"),
		Gender:       firstString(row, "gender"),
		DietaryNeeds: firstString(row, "dietary_needs"),
	}
	if traveler.Gender == "" {
		traveler.Gender = dbm.GenderUnspecified
	}
	if traveler.DietaryNeeds == "" {
		traveler.DietaryNeeds = dbm.DietaryNone
	}

	if raw := firstString(row, "id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			traveler.ID = id
		} else {
			logrus.WithField("id", raw).Debug("traveler row has a malformed id, keeping it with a zero id")
		}
	}
	if gid, err := uuid.Parse(firstString(row, "group_id")); err == nil {
		traveler.GroupID = &gid
	}
	if identity := firstString(row, "messaging_identity"); identity != "" {
		traveler.MessagingIdentity = &identity
	}

	return traveler
}

func firstString(row map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		v, ok := row[key]
		if !ok || v == nil {
			continue
		}
		var s string
		switch value := v.(type) {
		case string:
			s = value
		case []byte:
			s = string(value)
		case interface{ String() string }:
			s = value.String()
		default:
			continue
		}
		if strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}
