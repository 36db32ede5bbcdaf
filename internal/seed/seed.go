package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/sparta/academy/internal/app/models"
	"github.com/sparta/academy/internal/app/repositories"
)

// CreateDefaultData inserts a handful of sample trainers and courses so a
// fresh development database is not empty. Runs only when the trainers
// table holds no rows.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	trainerRepo := repositories.NewTrainerRepository(dbPool)
	courseRepo := repositories.NewCourseRepository(dbPool)

	existing, err := trainerRepo.FindAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		lgr.Debug().Msg("Trainers already present, skipping default data")
		return nil
	}

	lgr.Info().Msg("Creating default data (trainers/courses)...")
	var finalErr error

	trainers := []*models.Trainer{
		{FullName: "John Doe"},
		{FullName: "Jane Smith"},
	}
	for _, trainer := range trainers {
		if err := trainerRepo.Save(ctx, trainer); err != nil {
			lgr.Error().Err(err).Str("trainer", trainer.FullName).Msg("Error creating default trainer")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if trainers[0].ID > 0 {
		nextMonth := models.DateOf(time.Now().AddDate(0, 1, 0))
		courses := []*models.Course{
			{
				Title:       "Java Basics",
				Description: "Intro to Java",
				EnrollDate:  nextMonth,
				Trainer:     &models.Trainer{ID: trainers[0].ID},
			},
			{
				Title:       "Go Fundamentals",
				Description: "Intro to Go services",
				EnrollDate:  nextMonth.AddDays(14),
				Trainer:     &models.Trainer{ID: trainers[0].ID},
			},
		}
		for _, course := range courses {
			if err := courseRepo.Save(ctx, course); err != nil {
				lgr.Error().Err(err).Str("course", course.Title).Msg("Error creating default course")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	return finalErr
}
