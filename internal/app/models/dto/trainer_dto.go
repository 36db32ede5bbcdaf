package dto

// TrainerRecord is the flat transport view of a trainer. The owned
// course list is deliberately omitted; clients query courses by trainer
// through the course endpoints instead.
type TrainerRecord struct {
	ID       int64  `json:"id" example:"1"`
	FullName string `json:"fullName" example:"John Doe"`
}
