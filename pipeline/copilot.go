// Package pipeline assembles the co-pilot dispatcher: every transcript goes
// through the SOAP extractor, and the CHADS2 calculator and interaction
// matcher run only when their trigger phrases appear in the transcript.
package pipeline

import (
	"encoding/json"
	"strings"

	"auramed.com/copilot/interactions"
	"auramed.com/copilot/logger"
	"auramed.com/copilot/scoring"
	"auramed.com/copilot/soap"
	"auramed.com/copilot/types"
)

var DefaultChads2Triggers = []string{"atrial fibrillation", "afib", "stroke risk", "chads2"}

var DefaultDrugMentions = []string{"warfarin", "metformin", "lisinopril", "atorvastatin", "aspirin"}

// DemoProfile is the stand-in patient used whenever the CHADS2 trigger
// fires. The dispatcher performs no attribute extraction from the
// transcript; this is an acknowledged limitation of the demo.
var DemoProfile = types.PatientFlags{
	Age:                    78,
	Hypertension:           true,
	CongestiveHeartFailure: false,
	Diabetes:               true,
	StrokeTIAHistory:       true,
}

type CopilotParams struct {
	RuleSets []types.RuleSet `json:"rule_sets"`
}

// NewCopilot builds the dispatcher Pipeline. Rule sets are applied in order;
// a later non-empty list replaces the earlier one.
func NewCopilot(params CopilotParams) (Pipeline, error) {
	copilotLogger := logger.NewLogger("Copilot pipeline")
	copilotLogger.Info().
		Interface("params", params).
		Msg("Starting co-pilot pipeline (see parameters in 'params' field)")

	triggers := DefaultChads2Triggers
	mentions := DefaultDrugMentions
	for _, rs := range params.RuleSets {
		if len(rs.Chads2Triggers) > 0 {
			triggers = rs.Chads2Triggers
		}
		if len(rs.DrugMentions) > 0 {
			mentions = rs.DrugMentions
		}
	}

	extractor := soap.NewExtractor(MergedKeywords(params.RuleSets))

	return func(request Request) <-chan string {
		out := make(chan string, 1)
		go func() {
			defer close(out)
			response := dispatch(extractor, triggers, mentions, request)
			body, err := json.Marshal(response)
			if err != nil {
				// CopilotResponse has no unmarshalable fields; keep the
				// pipeline total anyway.
				copilotLogger.Err(err).Str("tid", request.Tid).Msg("Failed to marshal response")
				body = []byte("{}")
			}
			out <- string(body)
		}()
		return out
	}, nil
}

func dispatch(
	extractor *soap.Extractor,
	triggers []string,
	mentions []string,
	request Request,
) types.CopilotResponse {
	response := types.CopilotResponse{
		DocID:     request.Tid,
		SoapNotes: extractor.Extract(request.Text),
	}

	lower := strings.ToLower(request.Text)

	if containsAny(lower, triggers) {
		result := scoring.ScoreCHADS2(DemoProfile)
		response.Chads2Score = &result
	}

	if mentioned := mentionedDrugs(lower, mentions); len(mentioned) > 0 {
		report := interactions.BuildReport(mentioned)
		response.DrugInteractions = &report
	}

	return response
}

// MergedKeywords applies the rule-set overrides, in order, to the default
// SOAP keyword lists.
func MergedKeywords(ruleSets []types.RuleSet) types.SoapKeywords {
	keywords := soap.DefaultKeywords
	for _, rs := range ruleSets {
		keywords = mergeKeywords(keywords, rs.SoapKeywords)
	}
	return keywords
}

func mergeKeywords(base types.SoapKeywords, override types.SoapKeywords) types.SoapKeywords {
	if len(override.Subjective) > 0 {
		base.Subjective = override.Subjective
	}
	if len(override.Objective) > 0 {
		base.Objective = override.Objective
	}
	if len(override.Assessment) > 0 {
		base.Assessment = override.Assessment
	}
	if len(override.Plan) > 0 {
		base.Plan = override.Plan
	}
	return base
}

func containsAny(lowerText string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(lowerText, strings.ToLower(phrase)) {
			return true
		}
	}
	return false
}

// mentionedDrugs keeps the mention-list order, which fixes the pair order in
// the interaction report.
func mentionedDrugs(lowerText string, mentions []string) []string {
	var found []string
	for _, drug := range mentions {
		if strings.Contains(lowerText, strings.ToLower(drug)) {
			found = append(found, drug)
		}
	}
	return found
}
