package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sparta/academy/internal/app/mappers"
	"github.com/sparta/academy/internal/app/models"
	"github.com/sparta/academy/internal/app/models/dto"
	"github.com/sparta/academy/internal/app/repositories"
	"github.com/sparta/academy/internal/pkg/apperrors"
)

// CourseService defines the interface for course-related operations
type CourseService interface {
	CreateCourse(ctx context.Context, course *models.Course) (*dto.CourseRecord, error)
	GetAllCourses(ctx context.Context) ([]dto.CourseRecord, error)
	GetCourseByID(ctx context.Context, id int64) (*dto.CourseRecord, error)
	UpdateCourse(ctx context.Context, id int64, course *models.Course) (*dto.CourseRecord, error)
	DeleteCourse(ctx context.Context, id int64) (bool, error)

	GetCoursesByTrainerID(ctx context.Context, trainerID int64) ([]dto.CourseRecord, error)
	GetUpcomingCoursesByTrainerID(ctx context.Context, trainerID int64, after models.Date) ([]dto.CourseRecord, error)
	SearchCoursesByTitle(ctx context.Context, title string) ([]dto.CourseRecord, error)
	SearchCoursesByDescription(ctx context.Context, description string) ([]dto.CourseRecord, error)
	CountCoursesByTrainerID(ctx context.Context, trainerID int64) (int64, error)
	IsTitleTaken(ctx context.Context, title string) (bool, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo   CourseGateway
	trainerRepo  TrainerGateway
	courseMapper *mappers.CourseMapper
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo CourseGateway, trainerRepo TrainerGateway, courseMapper *mappers.CourseMapper) CourseService {
	return &courseServiceImpl{
		courseRepo:   courseRepo,
		trainerRepo:  trainerRepo,
		courseMapper: courseMapper,
	}
}

// validateCourse validates course fields before any persistence call.
// Conditions are evaluated in a fixed order and the first failure is
// reported; failures are never aggregated.
func (s *courseServiceImpl) validateCourse(course *models.Course) error {
	if course == nil {
		return apperrors.NewBadRequestError("Course cannot be null")
	}
	if strings.TrimSpace(course.Title) == "" {
		return apperrors.NewBadRequestError("Course title cannot be empty")
	}
	if strings.TrimSpace(course.Description) == "" {
		return apperrors.NewBadRequestError("Course description cannot be empty")
	}
	if course.EnrollDate.IsZero() {
		return apperrors.NewBadRequestError("Enroll date cannot be null")
	}
	if course.EnrollDate.Before(models.Today()) {
		return apperrors.NewBadRequestError("Enroll date cannot be in the past")
	}
	if course.Trainer == nil {
		return apperrors.NewBadRequestError("Course must have a trainer assigned")
	}
	return nil
}

// checkTrainerExists verifies the referenced trainer row is present. The
// database foreign key remains the final authority; this check turns the
// common case into a clean not-found instead of a constraint violation.
func (s *courseServiceImpl) checkTrainerExists(ctx context.Context, trainerID int64) error {
	exists, err := s.trainerRepo.ExistsByID(ctx, trainerID)
	if err != nil {
		return fmt.Errorf("error checking trainer existence: %w", err)
	}
	if !exists {
		return apperrors.NewTrainerNotFoundError(trainerID)
	}
	return nil
}

// CreateCourse validates and persists a new course
func (s *courseServiceImpl) CreateCourse(ctx context.Context, course *models.Course) (*dto.CourseRecord, error) {
	if err := s.validateCourse(course); err != nil {
		return nil, err
	}

	if err := s.checkTrainerExists(ctx, course.Trainer.ID); err != nil {
		return nil, err
	}

	if err := s.courseRepo.Save(ctx, course); err != nil {
		if errors.Is(err, repositories.ErrTrainerReferenceNotFound) {
			return nil, apperrors.NewTrainerNotFoundError(course.Trainer.ID)
		}
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	return s.courseMapper.ToRecord(course), nil
}

// GetAllCourses retrieves all courses mapped to transport records.
// An empty store yields an empty list, not an error.
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]dto.CourseRecord, error) {
	courses, err := s.courseRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return s.toRecords(courses), nil
}

// GetCourseByID retrieves a course by ID
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*dto.CourseRecord, error) {
	course, err := s.courseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	if course == nil {
		return nil, apperrors.NewCourseNotFoundError(id)
	}

	return s.courseMapper.ToRecord(course), nil
}

// UpdateCourse validates the incoming entity and overwrites title,
// description, enroll date and trainer reference on the stored course.
// The stored identifier and creation timestamp are preserved.
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id int64, course *models.Course) (*dto.CourseRecord, error) {
	if id <= 0 || course == nil {
		return nil, apperrors.NewBadRequestError("Course ID and entity cannot be null")
	}

	existing, err := s.courseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	if existing == nil {
		return nil, apperrors.NewCourseNotFoundError(id)
	}

	if err := s.validateCourse(course); err != nil {
		return nil, err
	}

	if err := s.checkTrainerExists(ctx, course.Trainer.ID); err != nil {
		return nil, err
	}

	existing.Title = course.Title
	existing.Description = course.Description
	existing.EnrollDate = course.EnrollDate
	existing.Trainer = course.Trainer

	if err := s.courseRepo.Save(ctx, existing); err != nil {
		if errors.Is(err, repositories.ErrTrainerReferenceNotFound) {
			return nil, apperrors.NewTrainerNotFoundError(course.Trainer.ID)
		}
		if errors.Is(err, repositories.ErrCourseNotFound) {
			return nil, apperrors.NewCourseNotFoundError(id)
		}
		return nil, fmt.Errorf("error updating course: %w", err)
	}

	return s.courseMapper.ToRecord(existing), nil
}

// DeleteCourse deletes a course if present. Returns true when the course
// existed and was deleted, false when there was nothing to delete;
// absence is not an error.
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) (bool, error) {
	exists, err := s.courseRepo.ExistsByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("error checking course existence: %w", err)
	}
	if !exists {
		return false, nil
	}

	if err := s.courseRepo.DeleteByID(ctx, id); err != nil {
		return false, fmt.Errorf("error deleting course: %w", err)
	}
	return true, nil
}

// GetCoursesByTrainerID retrieves all courses owned by a trainer
func (s *courseServiceImpl) GetCoursesByTrainerID(ctx context.Context, trainerID int64) ([]dto.CourseRecord, error) {
	if err := s.checkTrainerExists(ctx, trainerID); err != nil {
		return nil, err
	}

	courses, err := s.courseRepo.FindByTrainerID(ctx, trainerID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses by trainer: %w", err)
	}
	return s.toRecords(courses), nil
}

// GetUpcomingCoursesByTrainerID retrieves a trainer's courses enrolling
// strictly after the given date. A zero date means today.
func (s *courseServiceImpl) GetUpcomingCoursesByTrainerID(ctx context.Context, trainerID int64, after models.Date) ([]dto.CourseRecord, error) {
	if err := s.checkTrainerExists(ctx, trainerID); err != nil {
		return nil, err
	}

	if after.IsZero() {
		after = models.Today()
	}

	courses, err := s.courseRepo.FindByTrainerIDAndEnrollDateAfter(ctx, trainerID, after)
	if err != nil {
		return nil, fmt.Errorf("error retrieving upcoming courses: %w", err)
	}
	return s.toRecords(courses), nil
}

// SearchCoursesByTitle retrieves courses whose title contains the given substring
func (s *courseServiceImpl) SearchCoursesByTitle(ctx context.Context, title string) ([]dto.CourseRecord, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperrors.NewBadRequestError("Search title cannot be empty")
	}

	courses, err := s.courseRepo.FindByTitleContaining(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("error searching courses by title: %w", err)
	}
	return s.toRecords(courses), nil
}

// SearchCoursesByDescription retrieves courses whose description contains the given substring
func (s *courseServiceImpl) SearchCoursesByDescription(ctx context.Context, description string) ([]dto.CourseRecord, error) {
	if strings.TrimSpace(description) == "" {
		return nil, apperrors.NewBadRequestError("Search description cannot be empty")
	}

	courses, err := s.courseRepo.FindByDescriptionContaining(ctx, description)
	if err != nil {
		return nil, fmt.Errorf("error searching courses by description: %w", err)
	}
	return s.toRecords(courses), nil
}

// CountCoursesByTrainerID counts the courses owned by a trainer
func (s *courseServiceImpl) CountCoursesByTrainerID(ctx context.Context, trainerID int64) (int64, error) {
	if err := s.checkTrainerExists(ctx, trainerID); err != nil {
		return 0, err
	}

	count, err := s.courseRepo.CountByTrainerID(ctx, trainerID)
	if err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return count, nil
}

// IsTitleTaken reports whether a course with the given title already exists, ignoring case
func (s *courseServiceImpl) IsTitleTaken(ctx context.Context, title string) (bool, error) {
	if strings.TrimSpace(title) == "" {
		return false, apperrors.NewBadRequestError("Course title cannot be empty")
	}

	taken, err := s.courseRepo.ExistsByTitleIgnoreCase(ctx, title)
	if err != nil {
		return false, fmt.Errorf("error checking course title: %w", err)
	}
	return taken, nil
}

// toRecords maps course entities to transport records, never nil
func (s *courseServiceImpl) toRecords(courses []*models.Course) []dto.CourseRecord {
	records := make([]dto.CourseRecord, 0, len(courses))
	for _, course := range courses {
		records = append(records, *s.courseMapper.ToRecord(course))
	}
	return records
}
