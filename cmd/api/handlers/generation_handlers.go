package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"case-studio/cmd/api/dto"
	"case-studio/cmd/api/services"
)

const errInvalidRequest = "invalid_request"

// ChatHandler godoc
// @Summary      챗봇 질의
// @Description  메시지를 단일 턴 프롬프트로 생성 모델에 전달한다. 대화 이력은 저장하지 않는다.
// @Description  inline 에러 모드(기본)에서는 실패해도 200 과 함께 reply 에 "Error: ..." 를 담는다.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ChatRequestDTO  true  "chat request"
// @Success      200   {object}  dto.ChatResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      502   {object}  dto.ErrorResponseDTO  "inline 에러 모드가 꺼진 경우"
// @Failure      504   {object}  dto.ErrorResponseDTO  "inline 에러 모드가 꺼진 경우"
// @Router       /api/chat [post]
func ChatHandler(svc *services.GenerationService, inlineErrors bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ChatRequestDTO
		if err := bindJSON(c, &req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: errInvalidRequest})
			return
		}

		result, chatErr := svc.Chat(c.Request.Context(), req.Message)
		if chatErr != nil {
			if inlineErrors {
				c.JSON(http.StatusOK, dto.ChatResponseDTO{Reply: "Error: " + chatErr.Message})
				return
			}
			c.JSON(chatErr.StatusCode, dto.ErrorResponseDTO{Error: chatErr.Message})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// GenerateCaseStudyHandler godoc
// @Summary      케이스 스터디 생성
// @Description  폼 입력으로 8개 섹션 케이스 스터디 프롬프트를 조립해 생성한다.
// @Description  shape 는 요청한 형태이며 모델 출력이 실제로 따르는지는 검사하지 않는다.
// @Tags         generation
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CaseStudyRequestDTO  true  "case study form"
// @Success      200   {object}  dto.GenerationResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Failure      504   {object}  dto.ErrorResponseDTO
// @Router       /generate-case-study [post]
func GenerateCaseStudyHandler(svc *services.GenerationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CaseStudyRequestDTO
		if err := bindJSON(c, &req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: errInvalidRequest})
			return
		}

		result, genErr := svc.GenerateCaseStudy(c.Request.Context(), req)
		if genErr != nil {
			c.JSON(genErr.StatusCode, dto.ErrorResponseDTO{Error: genErr.Message})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// GenerateNumericalsHandler godoc
// @Summary      numericals 전용 생성
// @Description  지정한 개수와 난이도로 물류 numericals 만 생성한다. topic 이 비면 "General Logistics".
// @Tags         generation
// @Accept       json
// @Produce      json
// @Param        body  body      dto.NumericalsRequestDTO  true  "numericals request"
// @Success      200   {object}  dto.GenerationResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Failure      504   {object}  dto.ErrorResponseDTO
// @Router       /generate-numericals-only [post]
func GenerateNumericalsHandler(svc *services.GenerationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.NumericalsRequestDTO
		if err := bindJSON(c, &req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: errInvalidRequest})
			return
		}

		result, genErr := svc.GenerateNumericals(c.Request.Context(), req)
		if genErr != nil {
			c.JSON(genErr.StatusCode, dto.ErrorResponseDTO{Error: genErr.Message})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// bindJSON 은 빈 body 를 빈 객체로 취급한다. 누락된 필드는 빈 값으로 치환된다.
func bindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
