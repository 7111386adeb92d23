package dto

// SubmitRegistrationRequest submits the caller's membership registration
type SubmitRegistrationRequest struct {
	Name         string `json:"name" binding:"required"`
	Branch       string `json:"branch" binding:"required"`
	Year         string `json:"year" binding:"required"`
	Skills       string `json:"skills" binding:"required"`
	InterestArea string `json:"interestArea" binding:"required"`
}

// UpdateRegistrationStatusRequest moves a registration through review
type UpdateRegistrationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected"`
}
