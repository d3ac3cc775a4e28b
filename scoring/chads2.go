// Package scoring implements the fixed clinical score calculators: CHADS2
// stroke risk, BMI and mean arterial pressure. All calculators are total
// functions over static tables; there are no error paths.
package scoring

import (
	"auramed.com/copilot/types"
)

const (
	RiskLow      = "Low"
	RiskModerate = "Moderate"
	RiskHigh     = "High"
	RiskUnknown  = "Unknown"
)

// CHADS2 point weights.
const (
	pointsCHF          = 1
	pointsHypertension = 1
	pointsAge75        = 1
	pointsDiabetes     = 1
	pointsStrokeTIA    = 2
)

// Component labels, appended in evaluation order.
const (
	ComponentCHF       = "CHF"
	ComponentHTN       = "HTN"
	ComponentAge75     = "Age≥75"
	ComponentDiabetes  = "DM"
	ComponentStrokeTIA = "Stroke/TIA"
)

type chads2Tier struct {
	Risk           string
	StrokeRate     string
	Therapy        string
	Interpretation string
}

var chads2Tiers = map[int]chads2Tier{
	0: {RiskLow, "0.6%/year", "Aspirin or no therapy", "Low stroke risk - aspirin or no therapy may be sufficient"},
	1: {RiskLow, "1.9%/year", "Anticoagulation considered", "Low stroke risk - anticoagulation should be considered"},
	2: {RiskModerate, "2.8%/year", "Anticoagulation recommended", "Moderate stroke risk - anticoagulation is recommended"},
	3: {RiskModerate, "3.9%/year", "Anticoagulation recommended", "Moderate stroke risk - anticoagulation is strongly recommended"},
	4: {RiskHigh, "5.9%/year", "Anticoagulation recommended", "High stroke risk - anticoagulation is essential"},
	5: {RiskHigh, "7.3%/year", "Anticoagulation recommended", "High stroke risk - anticoagulation is essential"},
	6: {RiskHigh, "9.8%/year", "Anticoagulation recommended", "High stroke risk - anticoagulation is essential"},
}

var chads2UnknownTier = chads2Tier{
	Risk:           RiskUnknown,
	StrokeRate:     "N/A",
	Therapy:        "Consult guidelines",
	Interpretation: "Consult stroke risk guidelines",
}

// ScoreCHADS2 sums the fixed point weights over the present flags. The score
// is always in [0,6]; the unknown tier is a guard for values the formula
// cannot produce.
func ScoreCHADS2(flags types.PatientFlags) types.ScoreResult {
	score := 0
	components := []string{}

	if flags.CongestiveHeartFailure {
		score += pointsCHF
		components = append(components, ComponentCHF)
	}
	if flags.Hypertension {
		score += pointsHypertension
		components = append(components, ComponentHTN)
	}
	if flags.Age >= 75 {
		score += pointsAge75
		components = append(components, ComponentAge75)
	}
	if flags.Diabetes {
		score += pointsDiabetes
		components = append(components, ComponentDiabetes)
	}
	if flags.StrokeTIAHistory {
		score += pointsStrokeTIA
		components = append(components, ComponentStrokeTIA)
	}

	tier, ok := chads2Tiers[score]
	if !ok {
		tier = chads2UnknownTier
	}

	return types.ScoreResult{
		Score:                 score,
		Components:            components,
		RiskLevel:             tier.Risk,
		AnnualStrokeRisk:      tier.StrokeRate,
		TherapyRecommendation: tier.Therapy,
		Interpretation:        tier.Interpretation,
	}
}
