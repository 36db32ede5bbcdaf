package dto

import "github.com/sparta/academy/internal/app/models"

// CourseRecord is the flat transport view of a course. The trainer
// relation collapses to its scalar identifier.
type CourseRecord struct {
	ID          int64       `json:"id" example:"1"`
	Title       string      `json:"title" example:"Java Basics"`
	Description string      `json:"description" example:"Intro to Java"`
	EnrollDate  models.Date `json:"enrollDate" swaggertype:"string" example:"2025-01-15"`
	TrainerID   int64       `json:"trainerId" example:"2"`
}

// CourseCountResponse carries the number of courses owned by a trainer
type CourseCountResponse struct {
	TrainerID int64 `json:"trainerId" example:"2"`
	Count     int64 `json:"count" example:"7"`
}

// TitleTakenResponse reports whether a course title is already in use
type TitleTakenResponse struct {
	Title string `json:"title" example:"Java Basics"`
	Taken bool   `json:"taken" example:"true"`
}
