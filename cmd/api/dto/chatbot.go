package dto

// ChatRequestDTO 는 /api/chat 요청 본문이다. 대화 이력은 클라이언트가 관리한다.
type ChatRequestDTO struct {
	Message string `json:"message" example:"What is safety stock?"`
}

// ChatResponseDTO 는 /api/chat 응답이다. inline 에러 모드에서는 실패도 여기에 "Error: ..." 로 담긴다.
type ChatResponseDTO struct {
	Reply string `json:"reply"`
}
