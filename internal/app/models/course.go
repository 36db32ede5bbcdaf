package models

import "time"

// Course represents a course taught by exactly one trainer. The trainer
// reference is mandatory for a persisted course; the database enforces
// the foreign key. CreatedAt and UpdatedAt are defaulted by the database
// and never written by the application.
type Course struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EnrollDate  Date      `json:"enrollDate"`
	Trainer     *Trainer  `json:"trainer,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
