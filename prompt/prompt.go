// Package prompt assembles the natural-language prompts sent to the generation
// provider. Builders are pure: the same input always renders the same text.
package prompt

import (
	"embed"
	"strings"
	"text/template"
)

// ScenarioOthers is the scenario choice that defers to CustomScenario.
const ScenarioOthers = "Others"

// DefaultTopic replaces an empty numericals topic.
const DefaultTopic = "General Logistics"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// CaseStudyRequest is the form input for a case study.
type CaseStudyRequest struct {
	CompanyName        string
	Industry           string
	KPIs               string
	Context            string
	Scenario           string
	CustomScenario     string
	IncludeNumericals  bool
	NumberOfNumericals int
	Difficulty         Difficulty
}

// NumericalsRequest is the input for standalone numericals.
type NumericalsRequest struct {
	NumberOfNumericals int
	Difficulty         Difficulty
	Topic              string
}

//go:embed templates/*.tmpl
var templateFS embed.FS

// text/template on purpose: user text goes to the model verbatim, unescaped.
var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

type caseStudyData struct {
	CompanyName        string
	Industry           string
	Scenario           string
	KPIs               string
	Context            string
	IncludeNumericals  bool
	NumberOfNumericals int
	Difficulty         Difficulty
}

// EffectiveScenario returns CustomScenario when "Others" was chosen and a
// custom text was given, and Scenario otherwise.
func (r CaseStudyRequest) EffectiveScenario() string {
	if r.Scenario == ScenarioOthers && strings.TrimSpace(r.CustomScenario) != "" {
		return r.CustomScenario
	}
	return r.Scenario
}

// EffectiveTopic returns Topic, or DefaultTopic when Topic is empty.
func (r NumericalsRequest) EffectiveTopic() string {
	if r.Topic == "" {
		return DefaultTopic
	}
	return r.Topic
}

// BuildCaseStudyPrompt renders the eight-section case study prompt followed by
// the numericals instruction and the additional context block.
func BuildCaseStudyPrompt(req CaseStudyRequest) string {
	return render("case_study.tmpl", caseStudyData{
		CompanyName:        req.CompanyName,
		Industry:           req.Industry,
		Scenario:           req.EffectiveScenario(),
		KPIs:               req.KPIs,
		Context:            req.Context,
		IncludeNumericals:  req.IncludeNumericals,
		NumberOfNumericals: req.NumberOfNumericals,
		Difficulty:         req.Difficulty,
	})
}

// BuildNumericalsOnlyPrompt renders the standalone numericals prompt.
func BuildNumericalsOnlyPrompt(req NumericalsRequest) string {
	return render("numericals.tmpl", NumericalsRequest{
		NumberOfNumericals: req.NumberOfNumericals,
		Difficulty:         req.Difficulty,
		Topic:              req.EffectiveTopic(),
	})
}

// render executes a template that was parsed at init. The templates only read
// string, int and bool fields, so Execute cannot fail at runtime.
func render(name string, data any) string {
	var sb strings.Builder
	if err := templates.ExecuteTemplate(&sb, name, data); err != nil {
		panic("prompt: " + name + ": " + err.Error())
	}
	return sb.String()
}
