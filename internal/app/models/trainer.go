package models

import "time"

// Trainer represents an academy trainer. A trainer owns zero or more
// courses; the relation is held on the Course side only so the entity
// graph never forms a cycle. Course lists are fetched on demand through
// the course repository when a reverse lookup is needed.
type Trainer struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"fullName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
