package mappers

import (
	"github.com/sparta/academy/internal/app/models"
	"github.com/sparta/academy/internal/app/models/dto"
)

// CourseMapper converts between course entities and transport records.
type CourseMapper struct{}

// NewCourseMapper creates a new course mapper
func NewCourseMapper() *CourseMapper {
	return &CourseMapper{}
}

// ToRecord flattens a course entity into its transport record, collapsing
// the trainer relation to its scalar identifier. A course without a
// trainer reference maps to a zero trainer ID.
func (m *CourseMapper) ToRecord(course *models.Course) *dto.CourseRecord {
	if course == nil {
		return nil
	}

	record := &dto.CourseRecord{
		ID:          course.ID,
		Title:       course.Title,
		Description: course.Description,
		EnrollDate:  course.EnrollDate,
	}
	if course.Trainer != nil {
		record.TrainerID = course.Trainer.ID
	}
	return record
}

// ToEntity expands a transport record into a course entity. The trainer
// ID is wrapped into a placeholder trainer carrying only that ID; it is
// never fetched from storage here and exists solely to satisfy the
// relational reference at write time. CreatedAt and UpdatedAt are left
// for the database defaults.
func (m *CourseMapper) ToEntity(record *dto.CourseRecord) *models.Course {
	if record == nil {
		return nil
	}
	return &models.Course{
		ID:          record.ID,
		Title:       record.Title,
		Description: record.Description,
		EnrollDate:  record.EnrollDate,
		Trainer:     m.trainerFromID(record.TrainerID),
	}
}

// trainerFromID builds the placeholder trainer reference for a foreign
// key ID. An absent ID maps to a nil reference.
func (m *CourseMapper) trainerFromID(trainerID int64) *models.Trainer {
	if trainerID == 0 {
		return nil
	}
	return &models.Trainer{ID: trainerID}
}
