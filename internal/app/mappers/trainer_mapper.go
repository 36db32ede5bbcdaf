package mappers

import (
	"github.com/sparta/academy/internal/app/models"
	"github.com/sparta/academy/internal/app/models/dto"
)

// TrainerMapper converts between trainer entities and transport records.
// A single instance is constructed at startup and injected wherever the
// conversion is needed.
type TrainerMapper struct{}

// NewTrainerMapper creates a new trainer mapper
func NewTrainerMapper() *TrainerMapper {
	return &TrainerMapper{}
}

// ToRecord flattens a trainer entity into its transport record. The
// conversion is lossy by design: timestamps and the owned course list
// never cross the API boundary.
func (m *TrainerMapper) ToRecord(trainer *models.Trainer) *dto.TrainerRecord {
	if trainer == nil {
		return nil
	}
	return &dto.TrainerRecord{
		ID:       trainer.ID,
		FullName: trainer.FullName,
	}
}

// ToEntity expands a transport record into a trainer entity. CreatedAt
// and UpdatedAt are left at their zero values; the database defaults
// them on write.
func (m *TrainerMapper) ToEntity(record *dto.TrainerRecord) *models.Trainer {
	if record == nil {
		return nil
	}
	return &models.Trainer{
		ID:       record.ID,
		FullName: record.FullName,
	}
}
