// Package soap buckets transcript sentences into the four SOAP note
// sections using static keyword lists. A sentence lands in at most one
// section: the lists are evaluated in priority order subjective, objective,
// assessment, plan.
package soap

import (
	"strings"

	"auramed.com/copilot/types"
)

var DefaultKeywords = types.SoapKeywords{
	Subjective: []string{"reports", "complains", "states", "describes", "feels", "experiences"},
	Objective:  []string{"exam", "findings", "results", "measurements", "vitals", "lab", "imaging"},
	Assessment: []string{"diagnosis", "impression", "assessment", "likely", "probable", "consistent with"},
	Plan:       []string{"plan", "recommend", "order", "prescribe", "follow-up", "monitor"},
}

const (
	FallbackSubjective = "Patient reports symptoms as described in transcript."
	FallbackObjective  = "Physical exam findings and vitals not specified in transcript."
	FallbackAssessment = "Clinical assessment based on presented symptoms and history."
	FallbackPlan       = "Follow up as needed, consider additional testing."
)

type Extractor struct {
	keywords types.SoapKeywords
}

func NewExtractor(keywords types.SoapKeywords) *Extractor {
	if len(keywords.Subjective) == 0 {
		keywords.Subjective = DefaultKeywords.Subjective
	}
	if len(keywords.Objective) == 0 {
		keywords.Objective = DefaultKeywords.Objective
	}
	if len(keywords.Assessment) == 0 {
		keywords.Assessment = DefaultKeywords.Assessment
	}
	if len(keywords.Plan) == 0 {
		keywords.Plan = DefaultKeywords.Plan
	}
	return &Extractor{keywords: keywords}
}

// SplitSentences breaks a transcript on ". " boundaries and newlines. The
// trailing period of a sentence is kept; empty fragments are dropped.
func SplitSentences(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '\r'
	})

	var sentences []string
	for _, field := range fields {
		for _, part := range strings.Split(field, ". ") {
			part = strings.TrimSpace(part)
			if len(part) > 0 {
				sentences = append(sentences, part)
			}
		}
	}
	return sentences
}

func matchesAny(sentence string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(sentence, keyword) {
			return true
		}
	}
	return false
}

// Extract classifies every sentence into its first matching section and
// joins each section's sentences with a single space, preserving transcript
// order. Sections without a match get their static fallback sentence.
func (ext *Extractor) Extract(text string) types.SoapRecord {
	var subjective, objective, assessment, plan []string

	for _, sentence := range SplitSentences(text) {
		lower := strings.ToLower(sentence)
		switch {
		case matchesAny(lower, ext.keywords.Subjective):
			subjective = append(subjective, sentence)
		case matchesAny(lower, ext.keywords.Objective):
			objective = append(objective, sentence)
		case matchesAny(lower, ext.keywords.Assessment):
			assessment = append(assessment, sentence)
		case matchesAny(lower, ext.keywords.Plan):
			plan = append(plan, sentence)
		}
	}

	return types.SoapRecord{
		Subjective: joinOrFallback(subjective, FallbackSubjective),
		Objective:  joinOrFallback(objective, FallbackObjective),
		Assessment: joinOrFallback(assessment, FallbackAssessment),
		Plan:       joinOrFallback(plan, FallbackPlan),
	}
}

func joinOrFallback(sentences []string, fallback string) string {
	if len(sentences) == 0 {
		return fallback
	}
	return strings.Join(sentences, " ")
}
