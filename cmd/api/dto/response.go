package dto

// ErrorResponseDTO 는 공통 에러 응답 형식이다.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"Failed to generate case study."`
}

// HealthResponseDTO 는 /health 응답이다.
type HealthResponseDTO struct {
	Status string `json:"status" example:"ok"`
	Mongo  string `json:"mongo,omitempty" example:"up"`
}
