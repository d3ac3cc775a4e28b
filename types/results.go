package types

type ScoreResult struct {
	Score                 int      `json:"score"`
	Components            []string `json:"components"`
	RiskLevel             string   `json:"risk_level"`
	AnnualStrokeRisk      string   `json:"annual_stroke_risk"`
	TherapyRecommendation string   `json:"therapy_recommendation"`
	Interpretation        string   `json:"interpretation"`
}

type BMIResult struct {
	BMI            float64 `json:"bmi"`
	Category       string  `json:"category"`
	RiskLevel      string  `json:"risk_level"`
	WeightKg       float64 `json:"weight_kg"`
	HeightCm       float64 `json:"height_cm"`
	Interpretation string  `json:"interpretation"`
}

type MAPResult struct {
	MAP               float64 `json:"map"`
	Category          string  `json:"category"`
	RecommendedAction string  `json:"recommended_action"`
	Systolic          int     `json:"systolic"`
	Diastolic         int     `json:"diastolic"`
	Interpretation    string  `json:"interpretation"`
}

type SoapRecord struct {
	Subjective string `json:"subjective"`
	Objective  string `json:"objective"`
	Assessment string `json:"assessment"`
	Plan       string `json:"plan"`
}

type InteractionRecord struct {
	PrimaryDrug     string `json:"primary_drug"`
	InteractingDrug string `json:"interacting_drug"`
	Severity        string `json:"severity"`
	Effect          string `json:"effect"`
	Recommendation  string `json:"recommendation"`
}

// InteractionReport wraps the matched records with the checked drug list and
// an overall recommendation.
type InteractionReport struct {
	DrugsChecked      []string            `json:"drugs_checked"`
	InteractionsFound bool                `json:"interactions_found"`
	Interactions      []InteractionRecord `json:"interactions"`
	Recommendation    string              `json:"recommendation"`
}

// CopilotResponse is the single record the dispatcher assembles per
// transcript. SoapNotes is always present; the other sub-results appear only
// when their trigger fired.
type CopilotResponse struct {
	DocID            string             `json:"doc_id"`
	SoapNotes        SoapRecord         `json:"soap_notes"`
	Chads2Score      *ScoreResult       `json:"chads2_score,omitempty"`
	DrugInteractions *InteractionReport `json:"drug_interactions,omitempty"`
}
