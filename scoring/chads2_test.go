package scoring

import (
	"testing"

	"auramed.com/copilot/types"
	"github.com/stretchr/testify/require"
)

func TestScoreCHADS2NoFlags(t *testing.T) {
	result := ScoreCHADS2(types.PatientFlags{})
	require.Equal(t, 0, result.Score)
	require.Empty(t, result.Components)
	require.Equal(t, RiskLow, result.RiskLevel)
	require.Equal(t, "0.6%/year", result.AnnualStrokeRisk)
}

func TestScoreCHADS2AllFlags(t *testing.T) {
	flags := types.PatientFlags{
		CongestiveHeartFailure: true,
		Hypertension:           true,
		Age:                    80,
		Diabetes:               true,
		StrokeTIAHistory:       true,
	}
	result := ScoreCHADS2(flags)
	require.Equal(t, 6, result.Score)
	require.Equal(t, []string{
		ComponentCHF,
		ComponentHTN,
		ComponentAge75,
		ComponentDiabetes,
		ComponentStrokeTIA,
	}, result.Components)
	require.Equal(t, RiskHigh, result.RiskLevel)
	require.Equal(t, "9.8%/year", result.AnnualStrokeRisk)
}

func TestScoreCHADS2Formula(t *testing.T) {
	tests := []struct {
		name          string
		flags         types.PatientFlags
		expectedScore int
		expectedRisk  string
	}{
		{"CHF only", types.PatientFlags{CongestiveHeartFailure: true}, 1, RiskLow},
		{"HTN only", types.PatientFlags{Hypertension: true}, 1, RiskLow},
		{"age 75 exactly", types.PatientFlags{Age: 75}, 1, RiskLow},
		{"age 74 scores nothing", types.PatientFlags{Age: 74}, 0, RiskLow},
		{"diabetes only", types.PatientFlags{Diabetes: true}, 1, RiskLow},
		{"stroke history is worth two", types.PatientFlags{StrokeTIAHistory: true}, 2, RiskModerate},
		{
			"demo profile",
			types.PatientFlags{Age: 78, Hypertension: true, Diabetes: true, StrokeTIAHistory: true},
			5,
			RiskHigh,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ScoreCHADS2(tt.flags)
			require.Equal(t, tt.expectedScore, result.Score)
			require.Equal(t, tt.expectedRisk, result.RiskLevel)
			require.GreaterOrEqual(t, result.Score, 0)
			require.LessOrEqual(t, result.Score, 6)
		})
	}
}

func TestScoreCHADS2ComponentOrder(t *testing.T) {
	// Evaluation order is fixed regardless of which flags are set.
	flags := types.PatientFlags{
		StrokeTIAHistory: true,
		Hypertension:     true,
	}
	result := ScoreCHADS2(flags)
	require.Equal(t, []string{ComponentHTN, ComponentStrokeTIA}, result.Components)
}

func TestChads2TierTableCoversFullRange(t *testing.T) {
	for score := 0; score <= 6; score++ {
		_, ok := chads2Tiers[score]
		require.True(t, ok, "no tier for score %d", score)
	}
}
