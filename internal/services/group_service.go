package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	dbm "tourline/internal/models/db_models"
	"tourline/internal/models/request_models"
	"tourline/internal/repositories"
	"tourline/pkg/utils"
)

type GroupServiceInterface interface {
	CreateGroup(ctx context.Context, leaderID uuid.UUID, req request_models.CreateGroupRequest) (*dbm.Group, error)
	UpdateGroup(ctx context.Context, id uuid.UUID, req request_models.UpdateGroupRequest) (*dbm.Group, error)
	GetGroup(ctx context.Context, id uuid.UUID) (*dbm.Group, error)
	ListGroups(ctx context.Context, leaderID uuid.UUID) ([]dbm.Group, error)
	DeleteGroup(ctx context.Context, id uuid.UUID) error
}

type GroupService struct {
	groupRepo repositories.GroupRepository
}

func NewGroupService(groupRepo repositories.GroupRepository) GroupServiceInterface {
	return &GroupService{groupRepo: groupRepo}
}

func (s *GroupService) CreateGroup(ctx context.Context, leaderID uuid.UUID, req request_models.CreateGroupRequest) (*dbm.Group, error) {
	joinCode, err := utils.GenerateJoinCode(6)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	group := &dbm.Group{
		LeaderID:  leaderID,
		Name:      req.Name,
		JoinCode:  joinCode,
		StartDate: parseDateUnix(req.StartDate),
		EndDate:   parseDateUnix(req.EndDate),
		Notes:     req.Notes,
	}
	if err := s.groupRepo.Insert(ctx, group); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return group, nil
}

func (s *GroupService) UpdateGroup(ctx context.Context, id uuid.UUID, req request_models.UpdateGroupRequest) (*dbm.Group, error) {
	group, err := s.groupRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if group == nil {
		return nil, utils.ErrGroupNotFound
	}

	if req.Name != "" {
		group.Name = req.Name
	}
	if req.StartDate != "" {
		group.StartDate = parseDateUnix(req.StartDate)
	}
	if req.EndDate != "" {
		group.EndDate = parseDateUnix(req.EndDate)
	}
	if req.Notes != "" {
		group.Notes = req.Notes
	}
	if req.NotifyLineID != nil {
		group.NotifyLineID = req.NotifyLineID
	}

	if err := s.groupRepo.Update(ctx, group); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return group, nil
}

func (s *GroupService) GetGroup(ctx context.Context, id uuid.UUID) (*dbm.Group, error) {
	group, err := s.groupRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if group == nil {
		return nil, utils.ErrGroupNotFound
	}
	return group, nil
}

func (s *GroupService) ListGroups(ctx context.Context, leaderID uuid.UUID) ([]dbm.Group, error) {
	groups, err := s.groupRepo.ListByLeader(ctx, leaderID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return groups, nil
}

func (s *GroupService) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	if err := s.groupRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func parseDateUnix(date string) int64 {
	if date == "" {
		return 0
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0
	}
	return t.Unix()
}
