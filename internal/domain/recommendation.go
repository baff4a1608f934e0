package domain

type Stakeholder string

const (
	StakeholderPolicyGovernance        Stakeholder = "policy_governance"
	StakeholderAcademicResearch        Stakeholder = "academic_research"
	StakeholderEnvironmentalNGO        Stakeholder = "environmental_ngo"
	StakeholderCorporateSustainability Stakeholder = "corporate_sustainability"
)

var Stakeholders = []Stakeholder{
	StakeholderPolicyGovernance,
	StakeholderAcademicResearch,
	StakeholderEnvironmentalNGO,
	StakeholderCorporateSustainability,
}

func (s Stakeholder) Valid() bool {
	for _, v := range Stakeholders {
		if s == v {
			return true
		}
	}
	return false
}

type DataRange struct {
	StartYear Year `json:"startYear" validate:"required"`
	EndYear   Year `json:"endYear" validate:"required,gtefield=StartYear"`
}

type RecommendationContext struct {
	Country            string      `json:"country" validate:"required"`
	Stakeholder        Stakeholder `json:"stakeholder" validate:"required,stakeholder"`
	DataRange          DataRange   `json:"dataRange"`
	IncludePredictions bool        `json:"includePredictions"`
	Language           string      `json:"language,omitempty"`
}

type RecommendationText struct {
	Objective                  string   `json:"Objective"`
	SpecificActions            []string `json:"Specific Actions"`
	ImplementationTimeframe    string   `json:"Implementation Timeframe"`
	RequiredResources          []string `json:"Required Resources"`
	ExpectedMeasurableImpact   string   `json:"Expected Measurable Impact"`
	SupportingEvidenceFromData string   `json:"Supporting Evidence from Data"`
}

type Recommendation struct {
	Text RecommendationText `json:"text"`
}

type RecommendationData struct {
	Country         string           `json:"country"`
	Stakeholder     Stakeholder      `json:"stakeholder"`
	GeneratedAt     string           `json:"generatedAt"`
	Summary         string           `json:"summary"`
	Recommendations []Recommendation `json:"recommendations"`
}

// RecommendationResponse is language-model output: identical requests may
// yield different text.
type RecommendationResponse struct {
	Success bool               `json:"success"`
	Data    RecommendationData `json:"data"`
}

type AnalysisType string

const (
	AnalysisComparative AnalysisType = "comparative"
	AnalysisTrend       AnalysisType = "trend"
	AnalysisCorrelation AnalysisType = "correlation"
)

type InsightRequest struct {
	Countries    []string     `json:"countries" validate:"required,min=1,dive,required"`
	Metrics      []string     `json:"metrics" validate:"required,min=1,dive,required"`
	Timeframe    string       `json:"timeframe"`
	AnalysisType AnalysisType `json:"analysisType" validate:"required,oneof=comparative trend correlation"`
}

type InsightMetric struct {
	Metric     string  `json:"metric"`
	Value      float64 `json:"value"`
	Trend      string  `json:"trend"`
	Confidence float64 `json:"confidence"`
}

type Insight struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	Category        string        `json:"category"`
	Priority        string        `json:"priority"`
	Data            InsightMetric `json:"data"`
	Recommendations []string      `json:"recommendations"`
	Sources         []string      `json:"sources"`
}

type InsightData struct {
	Countries    []string  `json:"countries"`
	Metrics      []string  `json:"metrics"`
	Timeframe    string    `json:"timeframe"`
	AnalysisType string    `json:"analysisType"`
	GeneratedAt  string    `json:"generatedAt"`
	Insights     []Insight `json:"insights"`
}

type InsightResponse struct {
	Success bool        `json:"success"`
	Data    InsightData `json:"data"`
}

type TemplateQuestion struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Type     string   `json:"type"`
	Options  []string `json:"options,omitempty"`
	Required bool     `json:"required"`
}

type Template struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Stakeholder Stakeholder        `json:"stakeholder"`
	Category    string             `json:"category"`
	Questions   []TemplateQuestion `json:"questions"`
}

type TemplatesResponse struct {
	Success bool       `json:"success"`
	Data    []Template `json:"data"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}
