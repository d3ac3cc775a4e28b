// Package interactions reports known drug-drug interactions from a static
// pair table. The table is keyed by a hash of the normalized unordered pair,
// so lookup order and input casing never matter.
package interactions

import (
	"strings"

	"auramed.com/copilot/types"
	"auramed.com/copilot/utils"
)

const (
	SeverityHigh     = "high"
	SeverityModerate = "moderate"
	SeverityLow      = "low"
)

type pairEntry struct {
	Severity       string
	Effect         string
	Recommendation string
}

type pair struct {
	a, b  string
	entry pairEntry
}

var knownPairs = []pair{
	{"warfarin", "aspirin", pairEntry{SeverityHigh, "Increased bleeding risk", "Monitor INR closely"}},
	{"warfarin", "ibuprofen", pairEntry{SeverityModerate, "Increased bleeding risk", "Use with caution"}},
	{"warfarin", "omeprazole", pairEntry{SeverityLow, "Reduced absorption", "Monitor effectiveness"}},
	{"warfarin", "antibiotics", pairEntry{SeverityHigh, "Increased INR", "Adjust dose as needed"}},
	{"metformin", "alcohol", pairEntry{SeverityHigh, "Risk of lactic acidosis", "Avoid alcohol consumption"}},
	{"metformin", "contrast_dye", pairEntry{SeverityHigh, "Renal impairment risk", "Hold 48 hours before procedure"}},
	{"lisinopril", "potassium_supplements", pairEntry{SeverityModerate, "Hyperkalemia", "Monitor potassium levels"}},
	{"lisinopril", "nsaids", pairEntry{SeverityModerate, "Reduced antihypertensive effect", "Monitor blood pressure"}},
	{"atorvastatin", "grapefruit_juice", pairEntry{SeverityModerate, "Increased statin levels", "Avoid grapefruit products"}},
	{"atorvastatin", "erythromycin", pairEntry{SeverityHigh, "Increased risk of myopathy", "Consider alternative"}},
	{"insulin", "beta_blockers", pairEntry{SeverityModerate, "Masked hypoglycemia symptoms", "Educate patient on symptoms"}},
}

var pairTable = buildPairTable(knownPairs)

func buildPairTable(pairs []pair) map[uint64]pair {
	table := make(map[uint64]pair, len(pairs))
	for _, p := range pairs {
		table[utils.HashPair(p.a, p.b)] = p
	}
	return table
}

// Check tests every unordered pair drawn from drugs against the interaction
// table. Each pair is tested exactly once (i < j), so the same interaction
// is never reported twice and a drug never interacts with itself. Records
// carry the table's canonical drug names, so the same pair yields the same
// record regardless of input order or casing.
func Check(drugs []string) []types.InteractionRecord {
	var records []types.InteractionRecord
	seen := make(map[uint64]bool)
	for i := 0; i < len(drugs); i++ {
		for j := i + 1; j < len(drugs); j++ {
			if sameDrug(drugs[i], drugs[j]) {
				continue
			}
			key := utils.HashPair(drugs[i], drugs[j])
			if seen[key] {
				continue
			}
			seen[key] = true
			known, ok := pairTable[key]
			if !ok {
				continue
			}
			records = append(records, types.InteractionRecord{
				PrimaryDrug:     known.a,
				InteractingDrug: known.b,
				Severity:        known.entry.Severity,
				Effect:          known.entry.Effect,
				Recommendation:  known.entry.Recommendation,
			})
		}
	}
	return records
}

func sameDrug(a string, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

const (
	recommendationMonitor = "Monitor patient closely for adverse effects"
	recommendationNone    = "No significant interactions found"
)

// BuildReport runs Check and wraps the outcome with the checked drug list
// and an overall recommendation.
func BuildReport(drugs []string) types.InteractionReport {
	records := Check(drugs)
	recommendation := recommendationNone
	if len(records) > 0 {
		recommendation = recommendationMonitor
	}
	return types.InteractionReport{
		DrugsChecked:      drugs,
		InteractionsFound: len(records) > 0,
		Interactions:      records,
		Recommendation:    recommendation,
	}
}
