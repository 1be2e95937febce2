package services

import (
	"context"

	"github.com/google/uuid"

	dbm "tourline/internal/models/db_models"
	"tourline/internal/models/request_models"
	"tourline/internal/models/response_models"
	"tourline/internal/repositories"
	"tourline/pkg/utils"
)

type LedgerServiceInterface interface {
	AddEntry(ctx context.Context, req request_models.CreateLedgerEntryRequest) (uuid.UUID, error)
	GetSummary(ctx context.Context, groupID uuid.UUID) (*response_models.LedgerSummaryResponse, error)
	DeleteEntry(ctx context.Context, id uuid.UUID) error
}

type LedgerService struct {
	ledgerRepo repositories.LedgerRepository
}

func NewLedgerService(ledgerRepo repositories.LedgerRepository) LedgerServiceInterface {
	return &LedgerService{ledgerRepo: ledgerRepo}
}

func (s *LedgerService) AddEntry(ctx context.Context, req request_models.CreateLedgerEntryRequest) (uuid.UUID, error) {
	groupID, err := uuid.Parse(req.GroupID)
	if err != nil {
		return uuid.Nil, utils.ErrInvalidInput
	}

	entry := &dbm.LedgerEntry{
		GroupID:     groupID,
		AmountMinor: req.AmountMinor,
		Currency:    req.Currency,
		Category:    req.Category,
		Note:        req.Note,
		ReceiptURL:  req.ReceiptURL,
		SpentAt:     req.SpentAt,
	}
	if entry.SpentAt == 0 {
		entry.SpentAt = utils.NowUnixSeconds()
	}

	if err := s.ledgerRepo.Insert(ctx, entry); err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	return entry.ID, nil
}

func (s *LedgerService) GetSummary(ctx context.Context, groupID uuid.UUID) (*response_models.LedgerSummaryResponse, error) {
	entries, err := s.ledgerRepo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	totals, err := s.ledgerRepo.TotalsByCategory(ctx, groupID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := &response_models.LedgerSummaryResponse{
		Entries: make([]response_models.LedgerEntryResponse, 0, len(entries)),
		Totals:  totals,
	}
	for _, entry := range entries {
		out.Entries = append(out.Entries, response_models.LedgerEntryResponse{
			ID:          entry.ID.String(),
			AmountMinor: entry.AmountMinor,
			Currency:    entry.Currency,
			Category:    entry.Category,
			Note:        entry.Note,
			ReceiptURL:  entry.ReceiptURL,
			SpentAt:     utils.FormatRFC3339TW(utils.FromUnixSecondsTW(entry.SpentAt)),
		})
	}
	return out, nil
}

func (s *LedgerService) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	if err := s.ledgerRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
