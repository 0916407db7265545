package dto

import "case-studio/prompt"

// CaseStudyRequestDTO 는 /generate-case-study 요청 본문이다.
// 배포된 브라우저 클라이언트는 numericalCount / numericalDifficulty 로 보내므로
// 두 이름을 모두 받고, 표준 필드가 비어 있을 때만 별칭을 사용한다.
// 클라이언트의 numerical-only 모드는 includeNumericals 를 true 로 보내면서
// numericalOnly 를 켜므로, numericalOnly 가 true 이면 numericals 전용으로 취급한다.
type CaseStudyRequestDTO struct {
	CompanyName        string `json:"companyName" example:"Northwind Freight"`
	Industry           string `json:"industry" example:"3PL Warehousing"`
	KPIs               string `json:"kpis" example:"OTIF, dock-to-stock time"`
	Context            string `json:"context"`
	Scenario           string `json:"scenario" example:"Others"`
	CustomScenario     string `json:"customScenario" example:"Port congestion delays"`
	IncludeNumericals  bool   `json:"includeNumericals"`
	NumberOfNumericals int    `json:"numberOfNumericals" example:"3"`
	Difficulty         string `json:"difficulty" example:"medium" enums:"easy,medium,hard"`

	NumericalCount      int    `json:"numericalCount,omitempty" swaggerignore:"true"`
	NumericalDifficulty string `json:"numericalDifficulty,omitempty" swaggerignore:"true"`
	NumericalOnly       bool   `json:"numericalOnly,omitempty" swaggerignore:"true"`
}

// ToPrompt 는 별칭 필드를 정리해 prompt.CaseStudyRequest 로 변환한다.
func (d CaseStudyRequestDTO) ToPrompt() prompt.CaseStudyRequest {
	count := d.NumberOfNumericals
	if count == 0 {
		count = d.NumericalCount
	}
	difficulty := d.Difficulty
	if difficulty == "" {
		difficulty = d.NumericalDifficulty
	}
	return prompt.CaseStudyRequest{
		CompanyName:        d.CompanyName,
		Industry:           d.Industry,
		KPIs:               d.KPIs,
		Context:            d.Context,
		Scenario:           d.Scenario,
		CustomScenario:     d.CustomScenario,
		IncludeNumericals:  d.IncludeNumericals && !d.NumericalOnly,
		NumberOfNumericals: count,
		Difficulty:         prompt.Difficulty(difficulty),
	}
}

// NumericalsRequestDTO 는 /generate-numericals-only 요청 본문이다.
type NumericalsRequestDTO struct {
	NumberOfNumericals int    `json:"numberOfNumericals" example:"5"`
	Difficulty         string `json:"difficulty" example:"hard"`
	Topic              string `json:"topic,omitempty" example:"Inventory Management"`
}

func (d NumericalsRequestDTO) ToPrompt() prompt.NumericalsRequest {
	return prompt.NumericalsRequest{
		NumberOfNumericals: d.NumberOfNumericals,
		Difficulty:         prompt.Difficulty(d.Difficulty),
		Topic:              d.Topic,
	}
}

// Shape 은 클라이언트가 요청한 응답 형태다. 실제 모델 출력이 이를 따르는지는 검사하지 않는다.
type Shape string

const (
	ShapeCaseStudyWithNumericals Shape = "case_study_with_numericals"
	ShapeNumericalsOnly          Shape = "numericals_only"
)

// GenerationResponseDTO 는 두 생성 엔드포인트의 성공 응답이다.
type GenerationResponseDTO struct {
	Output string `json:"output"`
	Shape  Shape  `json:"shape" example:"case_study_with_numericals"`
}
