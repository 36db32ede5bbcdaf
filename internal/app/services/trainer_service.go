package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sparta/academy/internal/app/mappers"
	"github.com/sparta/academy/internal/app/models"
	"github.com/sparta/academy/internal/app/models/dto"
	"github.com/sparta/academy/internal/app/repositories"
	"github.com/sparta/academy/internal/pkg/apperrors"
)

// TrainerService defines the interface for trainer-related operations
type TrainerService interface {
	GetAllTrainers(ctx context.Context) ([]dto.TrainerRecord, error)
	GetTrainerByID(ctx context.Context, id int64) (*dto.TrainerRecord, error)
	CreateTrainer(ctx context.Context, trainer *models.Trainer) (*dto.TrainerRecord, error)
	UpdateTrainer(ctx context.Context, id int64, trainer *models.Trainer) (*dto.TrainerRecord, error)
	DeleteTrainerByID(ctx context.Context, id int64) (bool, error)
}

// trainerServiceImpl implements the TrainerService interface
type trainerServiceImpl struct {
	trainerRepo   TrainerGateway
	trainerMapper *mappers.TrainerMapper
}

// NewTrainerService creates a new trainer service instance
func NewTrainerService(trainerRepo TrainerGateway, trainerMapper *mappers.TrainerMapper) TrainerService {
	return &trainerServiceImpl{
		trainerRepo:   trainerRepo,
		trainerMapper: trainerMapper,
	}
}

// GetAllTrainers retrieves all trainers mapped to transport records.
// An empty store yields an empty list, not an error.
func (s *trainerServiceImpl) GetAllTrainers(ctx context.Context) ([]dto.TrainerRecord, error) {
	trainers, err := s.trainerRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving trainers: %w", err)
	}

	records := make([]dto.TrainerRecord, 0, len(trainers))
	for _, trainer := range trainers {
		records = append(records, *s.trainerMapper.ToRecord(trainer))
	}
	return records, nil
}

// GetTrainerByID retrieves a trainer by ID
func (s *trainerServiceImpl) GetTrainerByID(ctx context.Context, id int64) (*dto.TrainerRecord, error) {
	trainer, err := s.trainerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving trainer: %w", err)
	}
	if trainer == nil {
		return nil, apperrors.NewTrainerNotFoundError(id)
	}

	return s.trainerMapper.ToRecord(trainer), nil
}

// CreateTrainer persists a new trainer and returns the mapped record.
// No field-level validation happens here; the data model enforces the
// name constraint.
func (s *trainerServiceImpl) CreateTrainer(ctx context.Context, trainer *models.Trainer) (*dto.TrainerRecord, error) {
	if trainer == nil {
		return nil, apperrors.NewBadRequestError("Trainer entity cannot be null")
	}

	if err := s.trainerRepo.Save(ctx, trainer); err != nil {
		return nil, fmt.Errorf("error creating trainer: %w", err)
	}

	return s.trainerMapper.ToRecord(trainer), nil
}

// UpdateTrainer overwrites every mutable field of an existing trainer.
// The entity's identifier is forced to the given ID, discarding any
// identifier carried on the input.
func (s *trainerServiceImpl) UpdateTrainer(ctx context.Context, id int64, trainer *models.Trainer) (*dto.TrainerRecord, error) {
	if id <= 0 || trainer == nil {
		return nil, apperrors.NewBadRequestError("Trainer ID and entity cannot be null")
	}

	exists, err := s.trainerRepo.ExistsByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error checking trainer existence: %w", err)
	}
	if !exists {
		return nil, apperrors.NewTrainerNotFoundError(id)
	}

	trainer.ID = id
	if err := s.trainerRepo.Save(ctx, trainer); err != nil {
		if errors.Is(err, repositories.ErrTrainerNotFound) {
			return nil, apperrors.NewTrainerNotFoundError(id)
		}
		return nil, fmt.Errorf("error updating trainer: %w", err)
	}

	return s.trainerMapper.ToRecord(trainer), nil
}

// DeleteTrainerByID deletes a trainer if present. Returns true when the
// trainer existed and was deleted, false when there was nothing to
// delete; absence is not an error.
func (s *trainerServiceImpl) DeleteTrainerByID(ctx context.Context, id int64) (bool, error) {
	exists, err := s.trainerRepo.ExistsByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("error checking trainer existence: %w", err)
	}
	if !exists {
		return false, nil
	}

	if err := s.trainerRepo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrTrainerInUse) {
			return false, apperrors.NewConflictError(fmt.Sprintf("Trainer with ID %d still has assigned courses", id))
		}
		return false, fmt.Errorf("error deleting trainer: %w", err)
	}
	return true, nil
}
