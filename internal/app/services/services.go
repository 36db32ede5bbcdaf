package services

import (
	"context"

	"github.com/sparta/academy/internal/app/models"
	"github.com/sparta/academy/internal/app/repositories"
)

// TrainerGateway is the persistence capability set the services consume
// for trainers. Save assigns the identifier on first save; FindByID
// returns nil without error when no row matches.
type TrainerGateway interface {
	Save(ctx context.Context, trainer *models.Trainer) error
	FindByID(ctx context.Context, id int64) (*models.Trainer, error)
	FindAll(ctx context.Context) ([]*models.Trainer, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
}

// CourseGateway is the persistence capability set the services consume
// for courses, including the filtered lookups exposed by the course
// query endpoints.
type CourseGateway interface {
	Save(ctx context.Context, course *models.Course) error
	FindByID(ctx context.Context, id int64) (*models.Course, error)
	FindAll(ctx context.Context) ([]*models.Course, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error

	FindByTrainerID(ctx context.Context, trainerID int64) ([]*models.Course, error)
	FindByTitleContaining(ctx context.Context, title string) ([]*models.Course, error)
	FindByDescriptionContaining(ctx context.Context, description string) ([]*models.Course, error)
	FindByTrainerIDAndEnrollDateAfter(ctx context.Context, trainerID int64, after models.Date) ([]*models.Course, error)
	CountByTrainerID(ctx context.Context, trainerID int64) (int64, error)
	ExistsByTitleIgnoreCase(ctx context.Context, title string) (bool, error)
}

var (
	_ TrainerGateway = (*repositories.TrainerRepository)(nil)
	_ CourseGateway  = (*repositories.CourseRepository)(nil)
)
