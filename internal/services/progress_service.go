package services

import (
	"context"
	"errors"
	"log"

	"chronowalker/internal/models/db_models"
	"chronowalker/internal/models/request_models"
	"chronowalker/internal/models/response_models"
	"chronowalker/internal/repositories"
	"chronowalker/pkg/utils"
)

type ProgressServiceInterface interface {
	CreateProgress(ctx context.Context, userID int, req request_models.CreateProgressRequest) (response_models.UserProgress, error)
	ListProgress(ctx context.Context, userID, skip, limit int) ([]response_models.UserProgress, error)
	UpdateProgress(ctx context.Context, userID, id int, req request_models.UpdateProgressRequest) (response_models.UserProgress, error)
	DeleteProgress(ctx context.Context, userID, id int) (response_models.UserProgress, error)
}

type ProgressService struct {
	progressRepository repositories.ProgressRepository
}

func NewProgressService(progressRepository repositories.ProgressRepository) ProgressServiceInterface {
	return &ProgressService{
		progressRepository: progressRepository,
	}
}

// CreateProgress starts a route for the user. The existence check gives the
// friendly conflict error; the unique index in the store is the real guard.
func (s *ProgressService) CreateProgress(ctx context.Context, userID int, req request_models.CreateProgressRequest) (response_models.UserProgress, error) {
	existing, err := s.progressRepository.GetByUserAndRoute(ctx, userID, req.RouteID)
	if err != nil {
		log.Printf("Error checking progress: %v", err)
		return response_models.UserProgress{}, utils.ErrDatabaseError
	}
	if existing != nil {
		return response_models.UserProgress{}, utils.ErrProgressExists
	}

	status := req.Status
	if status == "" {
		status = "in_progress"
	}

	progress := &db_models.UserProgress{
		UserID:               userID,
		RouteID:              req.RouteID,
		Status:               status,
		CompletedPointsCount: req.CompletedPointsCount,
	}

	if err := s.progressRepository.Create(ctx, progress); err != nil {
		if errors.Is(err, utils.ErrProgressExists) {
			return response_models.UserProgress{}, utils.ErrProgressExists
		}
		log.Printf("Error creating progress: %v", err)
		return response_models.UserProgress{}, utils.ErrDatabaseError
	}

	return progressToResponse(*progress), nil
}

func (s *ProgressService) ListProgress(ctx context.Context, userID, skip, limit int) ([]response_models.UserProgress, error) {
	if skip < 0 {
		return nil, utils.ErrInvalidSkip
	}
	if limit < 1 || limit > 100 {
		return nil, utils.ErrInvalidLimit
	}

	records, err := s.progressRepository.ListByUser(ctx, userID, skip, limit)
	if err != nil {
		log.Printf("Error listing progress: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.UserProgress, 0, len(records))
	for _, record := range records {
		responses = append(responses, progressToResponse(record))
	}
	return responses, nil
}

func (s *ProgressService) UpdateProgress(ctx context.Context, userID, id int, req request_models.UpdateProgressRequest) (response_models.UserProgress, error) {
	progress, err := s.fetchOwned(ctx, userID, id)
	if err != nil {
		return response_models.UserProgress{}, err
	}

	if req.Status != nil {
		progress.Status = *req.Status
	}
	if req.CompletedPointsCount != nil {
		progress.CompletedPointsCount = *req.CompletedPointsCount
	}

	if err := s.progressRepository.Update(ctx, progress); err != nil {
		log.Printf("Error updating progress: %v", err)
		return response_models.UserProgress{}, utils.ErrDatabaseError
	}

	return progressToResponse(*progress), nil
}

func (s *ProgressService) DeleteProgress(ctx context.Context, userID, id int) (response_models.UserProgress, error) {
	progress, err := s.fetchOwned(ctx, userID, id)
	if err != nil {
		return response_models.UserProgress{}, err
	}

	if err := s.progressRepository.Delete(ctx, id); err != nil {
		log.Printf("Error deleting progress: %v", err)
		return response_models.UserProgress{}, utils.ErrDatabaseError
	}

	return progressToResponse(*progress), nil
}

// fetchOwned loads the record and enforces that only the owning user mutates it.
func (s *ProgressService) fetchOwned(ctx context.Context, userID, id int) (*db_models.UserProgress, error) {
	progress, err := s.progressRepository.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching progress: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if progress == nil {
		return nil, utils.ErrProgressNotFound
	}
	if progress.UserID != userID {
		return nil, utils.ErrNotOwner
	}
	return progress, nil
}

func progressToResponse(progress db_models.UserProgress) response_models.UserProgress {
	return response_models.UserProgress{
		ID:                   progress.ID,
		UserID:               progress.UserID,
		RouteID:              progress.RouteID,
		Status:               progress.Status,
		CompletedPointsCount: progress.CompletedPointsCount,
	}
}
