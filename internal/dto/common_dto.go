package dto

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate runs struct-tag validation on a request DTO.
func Validate(req interface{}) error {
	return validate.Struct(req)
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}

// ClientConfigResponse exposes display policy the mobile client needs.
// The match threshold lives here, not in the matching engine.
type ClientConfigResponse struct {
	MatchThreshold     int `json:"match_threshold"`
	CompatibilityCount int `json:"compatibility_question_count"`
	CertificationCount int `json:"certification_question_count"`
}
