package scoring

import (
	"math"

	"auramed.com/copilot/types"
)

const CategoryUnknown = "unknown"

// Half-open bucket [Min, Max). First matching bucket wins; buckets are
// contiguous so every finite value falls into exactly one.
type vitalsBucket struct {
	Min            float64
	Max            float64
	Category       string
	Detail         string
	Interpretation string
}

var bmiBuckets = []vitalsBucket{
	{math.Inf(-1), 18.5, "underweight", "Increased mortality", "Underweight - Consider nutritional assessment"},
	{18.5, 25.0, "normal", "Lowest risk", "Normal weight - Maintain healthy lifestyle"},
	{25.0, 30.0, "overweight", "Increased risk", "Overweight - Consider weight management"},
	{30.0, 35.0, "obese_class1", "High risk", "Obesity Class I - Weight loss recommended"},
	{35.0, 40.0, "obese_class2", "Very high risk", "Obesity Class II - Medical intervention recommended"},
	{40.0, math.Inf(1), "obese_class3", "Extremely high risk", "Obesity Class III - Urgent medical intervention needed"},
}

var mapBuckets = []vitalsBucket{
	{math.Inf(-1), 60.0, "hypotension", "Consider fluid resuscitation", "Hypotension - Consider fluid resuscitation"},
	{60.0, 100.0, "normal", "Monitor", "Normal MAP - Continue monitoring"},
	{100.0, 110.0, "mild_hypertension", "Lifestyle modifications", "Mild hypertension - Lifestyle modifications"},
	{110.0, 130.0, "moderate_hypertension", "Consider medication", "Moderate hypertension - Consider medication"},
	{130.0, math.Inf(1), "severe_hypertension", "Urgent treatment", "Severe hypertension - Urgent treatment needed"},
}

func findBucket(buckets []vitalsBucket, value float64) (vitalsBucket, bool) {
	for _, bucket := range buckets {
		if value >= bucket.Min && value < bucket.Max {
			return bucket, true
		}
	}
	return vitalsBucket{}, false
}

func roundOneDecimal(value float64) float64 {
	return math.Round(value*10) / 10
}

// CalculateBMI computes weight/height² and buckets the rounded value.
func CalculateBMI(weightKg float64, heightCm float64) types.BMIResult {
	heightM := heightCm / 100
	bmi := roundOneDecimal(weightKg / (heightM * heightM))

	result := types.BMIResult{
		BMI:            bmi,
		Category:       CategoryUnknown,
		RiskLevel:      CategoryUnknown,
		WeightKg:       weightKg,
		HeightCm:       heightCm,
		Interpretation: CategoryUnknown,
	}
	if bucket, ok := findBucket(bmiBuckets, bmi); ok {
		result.Category = bucket.Category
		result.RiskLevel = bucket.Detail
		result.Interpretation = bucket.Interpretation
	}
	return result
}

// CalculateMAP computes diastolic + (systolic-diastolic)/3 and buckets the
// rounded value.
func CalculateMAP(systolic int, diastolic int) types.MAPResult {
	mapValue := roundOneDecimal(float64(diastolic) + float64(systolic-diastolic)/3)

	result := types.MAPResult{
		MAP:               mapValue,
		Category:          CategoryUnknown,
		RecommendedAction: CategoryUnknown,
		Systolic:          systolic,
		Diastolic:         diastolic,
		Interpretation:    CategoryUnknown,
	}
	if bucket, ok := findBucket(mapBuckets, mapValue); ok {
		result.Category = bucket.Category
		result.RecommendedAction = bucket.Detail
		result.Interpretation = bucket.Interpretation
	}
	return result
}
