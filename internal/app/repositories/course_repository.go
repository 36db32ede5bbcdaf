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

// Course error types
var (
	ErrCourseNotFound = errors.New("course not found")
	// ErrTrainerReferenceNotFound is returned when a course write violates the
	// trainer foreign key, i.e. the referenced trainer row no longer exists.
	ErrTrainerReferenceNotFound = errors.New("referenced trainer not found")
)

const courseColumns = `course_id, title, description, enroll_date, trainer_id, created_at, updated_at`

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// trainerID extracts the scalar foreign key from a course's trainer reference
func trainerID(course *models.Course) int64 {
	if course.Trainer == nil {
		return 0
	}
	return course.Trainer.ID
}

// Save persists a course. A course without an ID is inserted, one with an
// ID overwrites the existing row. A foreign key violation on the trainer
// reference is reported as ErrTrainerReferenceNotFound.
func (r *CourseRepository) Save(ctx context.Context, course *models.Course) error {
	if course.ID == 0 {
		query := `
			INSERT INTO courses (title, description, enroll_date, trainer_id)
			VALUES ($1, $2, $3, $4)
			RETURNING course_id, created_at, updated_at
		`
		err := r.db.QueryRow(ctx, query,
			course.Title, course.Description, course.EnrollDate.Time, trainerID(course),
		).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
		if err != nil {
			if dberrors.IsForeignKeyViolation(err) {
				return ErrTrainerReferenceNotFound
			}
			return fmt.Errorf("error inserting course: %w", err)
		}
		return nil
	}

	query := `
		UPDATE courses
		SET title = $1, description = $2, enroll_date = $3, trainer_id = $4
		WHERE course_id = $5
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		course.Title, course.Description, course.EnrollDate.Time, trainerID(course), course.ID,
	).Scan(&course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrCourseNotFound
		}
		if dberrors.IsForeignKeyViolation(err) {
			return ErrTrainerReferenceNotFound
		}
		return fmt.Errorf("error updating course: %w", err)
	}
	return nil
}

// scanCourse reads one course row, wrapping the trainer foreign key into
// a placeholder trainer reference.
func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	var tID int64
	err := row.Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.EnrollDate.Time,
		&tID,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	course.EnrollDate = models.DateOf(course.EnrollDate.Time)
	course.Trainer = &models.Trainer{ID: tID}
	return &course, nil
}

// queryCourses runs a course query and scans all resulting rows
func (r *CourseRepository) queryCourses(ctx context.Context, query string, args ...interface{}) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// FindByID retrieves a course by ID, returning nil when no row matches
func (r *CourseRepository) FindByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE course_id = $1`

	course, err := scanCourse(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// FindAll retrieves all courses
func (r *CourseRepository) FindAll(ctx context.Context) ([]*models.Course, error) {
	return r.queryCourses(ctx, `SELECT `+courseColumns+` FROM courses ORDER BY course_id`)
}

// FindByTrainerID retrieves all courses owned by a trainer
func (r *CourseRepository) FindByTrainerID(ctx context.Context, trainerID int64) ([]*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE trainer_id = $1 ORDER BY course_id`
	return r.queryCourses(ctx, query, trainerID)
}

// FindByTitleContaining retrieves courses whose title contains the given substring
func (r *CourseRepository) FindByTitleContaining(ctx context.Context, title string) ([]*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE title LIKE '%' || $1 || '%' ORDER BY course_id`
	return r.queryCourses(ctx, query, title)
}

// FindByDescriptionContaining retrieves courses whose description contains the given substring
func (r *CourseRepository) FindByDescriptionContaining(ctx context.Context, description string) ([]*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE description LIKE '%' || $1 || '%' ORDER BY course_id`
	return r.queryCourses(ctx, query, description)
}

// FindByTrainerIDAndEnrollDateAfter retrieves a trainer's courses enrolling after the given date
func (r *CourseRepository) FindByTrainerIDAndEnrollDateAfter(ctx context.Context, trainerID int64, after models.Date) ([]*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE trainer_id = $1 AND enroll_date > $2 ORDER BY course_id`
	return r.queryCourses(ctx, query, trainerID, after.Time)
}

// CountByTrainerID counts the courses owned by a trainer
func (r *CourseRepository) CountByTrainerID(ctx context.Context, trainerID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM courses WHERE trainer_id = $1`, trainerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return count, nil
}

// ExistsByTitleIgnoreCase checks whether a course with the given title exists, ignoring case
func (r *CourseRepository) ExistsByTitleIgnoreCase(ctx context.Context, title string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM courses WHERE LOWER(title) = LOWER($1))`,
		title).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking course title existence: %w", err)
	}
	return exists, nil
}

// ExistsByID checks whether a course row exists
func (r *CourseRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM courses WHERE course_id = $1)`,
		id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking course existence: %w", err)
	}
	return exists, nil
}

// DeleteByID deletes a course by ID
func (r *CourseRepository) DeleteByID(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE course_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrCourseNotFound
	}

	return nil
}
