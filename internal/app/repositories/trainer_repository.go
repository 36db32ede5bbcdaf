package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sparta/academy/internal/app/models"
	"github.com/sparta/academy/internal/pkg/dberrors"
)

// Trainer error types
var (
	ErrTrainerNotFound = errors.New("trainer not found")
	// ErrTrainerInUse is returned when a trainer delete is blocked because
	// courses still reference the trainer.
	ErrTrainerInUse = errors.New("trainer still referenced by courses")
)

// TrainerRepository handles database operations for trainers
type TrainerRepository struct {
	db *pgxpool.Pool
}

// NewTrainerRepository creates a new trainer repository
func NewTrainerRepository(db *pgxpool.Pool) *TrainerRepository {
	return &TrainerRepository{
		db: db,
	}
}

// Save persists a trainer. A trainer without an ID is inserted and the
// database-assigned ID and timestamps are written back onto the entity;
// a trainer with an ID overwrites the existing row.
func (r *TrainerRepository) Save(ctx context.Context, trainer *models.Trainer) error {
	if trainer.ID == 0 {
		query := `
			INSERT INTO trainers (full_name)
			VALUES ($1)
			RETURNING trainer_id, created_at, updated_at
		`
		err := r.db.QueryRow(ctx, query, trainer.FullName).Scan(
			&trainer.ID,
			&trainer.CreatedAt,
			&trainer.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("error inserting trainer: %w", err)
		}
		return nil
	}

	query := `
		UPDATE trainers
		SET full_name = $1
		WHERE trainer_id = $2
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, trainer.FullName, trainer.ID).Scan(
		&trainer.CreatedAt,
		&trainer.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrTrainerNotFound
		}
		return fmt.Errorf("error updating trainer: %w", err)
	}
	return nil
}

// FindByID retrieves a trainer by ID, returning nil when no row matches
func (r *TrainerRepository) FindByID(ctx context.Context, id int64) (*models.Trainer, error) {
	query := `
		SELECT trainer_id, full_name, created_at, updated_at
		FROM trainers
		WHERE trainer_id = $1
	`

	var trainer models.Trainer
	err := r.db.QueryRow(ctx, query, id).Scan(
		&trainer.ID,
		&trainer.FullName,
		&trainer.CreatedAt,
		&trainer.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving trainer: %w", err)
	}

	return &trainer, nil
}

// FindAll retrieves all trainers
func (r *TrainerRepository) FindAll(ctx context.Context) ([]*models.Trainer, error) {
	query := `
		SELECT trainer_id, full_name, created_at, updated_at
		FROM trainers
		ORDER BY trainer_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trainers []*models.Trainer
	for rows.Next() {
		var trainer models.Trainer
		if err := rows.Scan(
			&trainer.ID,
			&trainer.FullName,
			&trainer.CreatedAt,
			&trainer.UpdatedAt,
		); err != nil {
			return nil, err
		}
		trainers = append(trainers, &trainer)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return trainers, nil
}

// ExistsByID checks whether a trainer row exists
func (r *TrainerRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM trainers WHERE trainer_id = $1)`,
		id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking trainer existence: %w", err)
	}

	return exists, nil
}

// DeleteByID deletes a trainer by ID
func (r *TrainerRepository) DeleteByID(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM trainers WHERE trainer_id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return ErrTrainerInUse
		}
		return fmt.Errorf("error deleting trainer: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrTrainerNotFound
	}

	return nil
}
