package services

import (
	"context"
	"net/http"

	"case-studio/cmd/api/dto"
	"case-studio/cmd/api/trace"
	"case-studio/internal/logger"
	"case-studio/generator"
	"case-studio/prompt"
)

const (
	RouteChat       = "chat"
	RouteCaseStudy  = "generate-case-study"
	RouteNumericals = "generate-numericals-only"
)

const (
	ErrMsgCaseStudyFailed  = "Failed to generate case study."
	ErrMsgNumericalsFailed = "Failed to generate numericals."
)

// GenerationService 는 프롬프트 조립과 생성 모델 호출을 묶는다.
// Generator 는 main 에서 주입되며, 테스트에서는 가짜 구현으로 바꾼다.
type GenerationService struct {
	gen generator.Generator
}

// GenerationServiceError 는 핸들러가 그대로 HTTP 응답으로 옮길 수 있는 실패 정보다.
type GenerationServiceError struct {
	StatusCode int
	// Message 는 사용자에게 노출해도 되는 문구다.
	Message string
	Kind    generator.Kind
	Cause   error
}

func (e *GenerationServiceError) Error() string {
	if e == nil {
		return "generation_failed"
	}
	return e.Message
}

func (e *GenerationServiceError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewGenerationService(gen generator.Generator) *GenerationService {
	return &GenerationService{gen: gen}
}

// Chat 은 사용자 메시지를 그대로 단일 턴 프롬프트로 보낸다.
func (s *GenerationService) Chat(ctx context.Context, message string) (dto.ChatResponseDTO, *GenerationServiceError) {
	out, err := s.generate(ctx, RouteChat, message)
	if err != nil {
		genErr := generator.Classify(err)
		return dto.ChatResponseDTO{}, &GenerationServiceError{
			StatusCode: upstreamStatus(genErr.Kind, http.StatusBadGateway),
			Message:    genErr.Message,
			Kind:       genErr.Kind,
			Cause:      err,
		}
	}
	return dto.ChatResponseDTO{Reply: out}, nil
}

// GenerateCaseStudy 는 케이스 스터디 프롬프트를 조립해 생성한다.
func (s *GenerationService) GenerateCaseStudy(ctx context.Context, req dto.CaseStudyRequestDTO) (dto.GenerationResponseDTO, *GenerationServiceError) {
	p := req.ToPrompt()
	out, err := s.generate(ctx, RouteCaseStudy, prompt.BuildCaseStudyPrompt(p))
	if err != nil {
		return dto.GenerationResponseDTO{}, newGenerationFailure(err, ErrMsgCaseStudyFailed)
	}
	return dto.GenerationResponseDTO{Output: out, Shape: CaseStudyShape(p)}, nil
}

// GenerateNumericals 는 numericals 전용 프롬프트를 조립해 생성한다.
func (s *GenerationService) GenerateNumericals(ctx context.Context, req dto.NumericalsRequestDTO) (dto.GenerationResponseDTO, *GenerationServiceError) {
	out, err := s.generate(ctx, RouteNumericals, prompt.BuildNumericalsOnlyPrompt(req.ToPrompt()))
	if err != nil {
		return dto.GenerationResponseDTO{}, newGenerationFailure(err, ErrMsgNumericalsFailed)
	}
	return dto.GenerationResponseDTO{Output: out, Shape: dto.ShapeNumericalsOnly}, nil
}

// CaseStudyShape 는 케이스 스터디 요청이 기대하는 응답 형태를 돌려준다.
func CaseStudyShape(req prompt.CaseStudyRequest) dto.Shape {
	if req.IncludeNumericals {
		return dto.ShapeCaseStudyWithNumericals
	}
	return dto.ShapeNumericalsOnly
}

func (s *GenerationService) generate(ctx context.Context, route, p string) (string, error) {
	ctx = generator.WithRoute(ctx, route)
	out, err := s.gen.Generate(ctx, p)
	if err != nil {
		logger.ErrorWithFields("generation failed", logger.GenerationFields(route, trace.RequestIDFromContext(ctx), logger.Fields{
			"kind":  string(generator.KindOf(err)),
			"error": err.Error(),
		}))
		return "", err
	}
	return out, nil
}

func newGenerationFailure(err error, message string) *GenerationServiceError {
	kind := generator.Classify(err).Kind
	return &GenerationServiceError{
		StatusCode: upstreamStatus(kind, http.StatusInternalServerError),
		Message:    message,
		Kind:       kind,
		Cause:      err,
	}
}

// upstreamStatus 는 타임아웃만 504 로 구분하고 나머지는 fallback 을 쓴다.
func upstreamStatus(kind generator.Kind, fallback int) int {
	if kind == generator.KindTimeout {
		return http.StatusGatewayTimeout
	}
	return fallback
}
