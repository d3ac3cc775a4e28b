package pipeline

import (
	"encoding/json"
	"testing"

	"auramed.com/copilot/soap"
	"auramed.com/copilot/types"
	"github.com/stretchr/testify/require"
)

func runCopilot(t *testing.T, params CopilotParams, text string) types.CopilotResponse {
	t.Helper()
	ppln, err := NewCopilot(params)
	require.NoError(t, err)

	raw, ok := <-ppln(Request{Tid: "test", Text: text})
	require.True(t, ok)

	var response types.CopilotResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &response))
	return response
}

func TestCopilotAlwaysExtractsSoap(t *testing.T) {
	response := runCopilot(t, CopilotParams{}, "")

	require.Equal(t, soap.FallbackSubjective, response.SoapNotes.Subjective)
	require.Equal(t, soap.FallbackObjective, response.SoapNotes.Objective)
	require.Equal(t, soap.FallbackAssessment, response.SoapNotes.Assessment)
	require.Equal(t, soap.FallbackPlan, response.SoapNotes.Plan)
	require.Nil(t, response.Chads2Score)
	require.Nil(t, response.DrugInteractions)
}

func TestCopilotChads2Trigger(t *testing.T) {
	transcript := "Patient is 78 years old with history of atrial fibrillation."
	response := runCopilot(t, CopilotParams{}, transcript)

	require.NotNil(t, response.Chads2Score)
	// The demo profile scores HTN(1) + Age(1) + DM(1) + Stroke/TIA(2).
	require.Equal(t, 5, response.Chads2Score.Score)
	require.Equal(t, "High", response.Chads2Score.RiskLevel)
	require.Nil(t, response.DrugInteractions)
}

func TestCopilotChads2TriggerCaseInsensitive(t *testing.T) {
	response := runCopilot(t, CopilotParams{}, "Consider AFib workup")
	require.NotNil(t, response.Chads2Score)
}

func TestCopilotDrugMentions(t *testing.T) {
	transcript := "Currently taking warfarin and was started on aspirin last week."
	response := runCopilot(t, CopilotParams{}, transcript)

	require.Nil(t, response.Chads2Score)
	require.NotNil(t, response.DrugInteractions)
	require.Equal(t, []string{"warfarin", "aspirin"}, response.DrugInteractions.DrugsChecked)
	require.True(t, response.DrugInteractions.InteractionsFound)
	require.Len(t, response.DrugInteractions.Interactions, 1)
	require.Equal(t, "high", response.DrugInteractions.Interactions[0].Severity)
}

func TestCopilotDrugMentionWithoutInteraction(t *testing.T) {
	response := runCopilot(t, CopilotParams{}, "Continue metformin at current dose.")

	require.NotNil(t, response.DrugInteractions)
	require.Equal(t, []string{"metformin"}, response.DrugInteractions.DrugsChecked)
	require.False(t, response.DrugInteractions.InteractionsFound)
	require.Empty(t, response.DrugInteractions.Interactions)
}

func TestCopilotNoDrugMentions(t *testing.T) {
	response := runCopilot(t, CopilotParams{}, "Patient reports mild headache.")
	require.Nil(t, response.DrugInteractions)
}

func TestCopilotRuleSetOverrides(t *testing.T) {
	params := CopilotParams{
		RuleSets: []types.RuleSet{{
			Name:           "custom",
			Chads2Triggers: []string{"cardioembolic"},
		}},
	}

	response := runCopilot(t, params, "Possible cardioembolic source.")
	require.NotNil(t, response.Chads2Score)

	// The default trigger list was replaced.
	response = runCopilot(t, params, "History of atrial fibrillation.")
	require.Nil(t, response.Chads2Score)
}

func TestCopilotDocID(t *testing.T) {
	ppln, err := NewCopilot(CopilotParams{})
	require.NoError(t, err)

	raw := <-ppln(Request{Tid: "transcript-42", Text: "Patient reports cough."})
	var response types.CopilotResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &response))
	require.Equal(t, "transcript-42", response.DocID)
}
