// Package sampledata bundles a handful of medical transcription samples
// modelled on the MTSamples dataset. They back the -demo entrypoint mode and
// give the tests realistic transcripts to chew on.
package sampledata

import "strings"

type Sample struct {
	ID               int      `json:"id"`
	MedicalSpecialty string   `json:"medical_specialty"`
	SampleName       string   `json:"sample_name"`
	Transcription    string   `json:"transcription"`
	Keywords         []string `json:"keywords"`
}

func All() []Sample {
	return samples
}

func ByID(id int) (Sample, bool) {
	for _, sample := range samples {
		if sample.ID == id {
			return sample, true
		}
	}
	return Sample{}, false
}

func BySpecialty(specialty string) []Sample {
	var found []Sample
	lower := strings.ToLower(specialty)
	for _, sample := range samples {
		if strings.Contains(strings.ToLower(sample.MedicalSpecialty), lower) {
			found = append(found, sample)
		}
	}
	return found
}

func WithKeyword(keyword string) []Sample {
	var found []Sample
	lower := strings.ToLower(keyword)
	for _, sample := range samples {
		if sampleHasKeyword(sample, lower) {
			found = append(found, sample)
		}
	}
	return found
}

func sampleHasKeyword(sample Sample, lowerKeyword string) bool {
	if strings.Contains(strings.ToLower(sample.Transcription), lowerKeyword) {
		return true
	}
	for _, kw := range sample.Keywords {
		if strings.Contains(strings.ToLower(kw), lowerKeyword) {
			return true
		}
	}
	return false
}

var samples = []Sample{
	{
		ID:               1,
		MedicalSpecialty: "Cardiovascular / Pulmonary",
		SampleName:       "CHEST PAIN",
		Transcription: `SUBJECTIVE:
The patient is a 78-year-old male with a history of hypertension, type 2 diabetes, and atrial fibrillation who presents with complaints of chest pain radiating to his left arm, associated with shortness of breath and diaphoresis. The pain started approximately 2 hours ago while he was watching television. He describes the pain as pressure-like, 8/10 in intensity. He denies any nausea, vomiting, or syncope.

OBJECTIVE:
Vital signs: BP 160/95, HR 110, RR 22, Temp 98.6°F, SpO2 92% on room air.
Physical exam: Patient appears uncomfortable, diaphoretic. Heart: irregularly irregular rhythm, no murmurs. Lungs: clear bilaterally.
ECG: Shows atrial fibrillation with rapid ventricular response, ST elevation in leads V1-V4.
Labs: Pending.

ASSESSMENT:
1. Acute coronary syndrome, likely STEMI
2. Atrial fibrillation with rapid ventricular response
3. Hypertension
4. Type 2 diabetes mellitus

PLAN:
1. Activate cardiac catheterization lab
2. Aspirin 325 mg chewed
3. Nitroglycerin sublingual
4. Morphine for pain control
5. Start heparin drip
6. Cardiology consultation
7. Monitor CHADS2 score for anticoagulation decision`,
		Keywords: []string{"chest pain", "STEMI", "atrial fibrillation", "hypertension", "diabetes"},
	},
	{
		ID:               2,
		MedicalSpecialty: "Endocrinology",
		SampleName:       "DIABETES MANAGEMENT",
		Transcription: `SUBJECTIVE:
65-year-old female with type 2 diabetes mellitus presents for routine follow-up. She reports good adherence to her medications including metformin 1000 mg twice daily and insulin glargine 20 units nightly. Her home glucose monitoring shows fasting levels between 90-120 mg/dL and postprandial levels <180 mg/dL. She denies any episodes of hypoglycemia. She continues her diet and exercise regimen.

OBJECTIVE:
Vital signs: BP 128/82, HR 78, RR 16, Temp 98.2°F.
Weight: 85 kg, Height: 165 cm (BMI: 31.2)
Recent labs: HbA1c 6.8%, creatinine 0.9 mg/dL, eGFR >60 mL/min.
Physical exam: No acanthosis nigricans, foot exam normal.

ASSESSMENT:
1. Type 2 diabetes mellitus, well-controlled
2. Obesity (BMI 31.2)
3. Hypertension, controlled

PLAN:
1. Continue current diabetes regimen
2. Encourage weight loss of 5-10% body weight
3. Check for potential drug interactions with new medications
4. Follow-up in 3 months
5. Annual eye and foot exams scheduled`,
		Keywords: []string{"diabetes", "obesity", "metformin", "insulin", "HbA1c"},
	},
	{
		ID:               3,
		MedicalSpecialty: "Neurology",
		SampleName:       "STROKE FOLLOW-UP",
		Transcription: `SUBJECTIVE:
72-year-old male with history of ischemic stroke 6 months ago presents for follow-up. He reports good recovery with only mild residual weakness in his right hand. He denies any new neurological symptoms, falls, or seizures. He is currently on warfarin 5 mg daily for stroke prevention. He reports occasional dizziness but no syncope.

OBJECTIVE:
Vital signs: BP 142/88, HR 72, RR 18, Temp 98.4°F.
Neurological exam: Alert and oriented. Cranial nerves intact. Strength 4+/5 in right hand, otherwise 5/5. Sensation intact.
INR: 2.3 (therapeutic range)
Recent imaging: CT head shows old infarct in left MCA territory.

ASSESSMENT:
1. Status post ischemic stroke with good recovery
2. Atrial fibrillation (known)
3. Hypertension
4. CHADS2 score needs reassessment for anticoagulation therapy

PLAN:
1. Continue warfarin with current dose
2. Check drug interactions with any new medications
3. Physical therapy for hand weakness
4. Calculate CHADS2 score today
5. Follow-up in 6 months
6. Consider switching to DOAC if appropriate`,
		Keywords: []string{"stroke", "warfarin", "atrial fibrillation", "CHADS2", "neurology"},
	},
	{
		ID:               4,
		MedicalSpecialty: "General Medicine",
		SampleName:       "HYPERTENSION MANAGEMENT",
		Transcription: `SUBJECTIVE:
55-year-old male presents for hypertension management. He reports occasional headaches and fatigue. He is currently taking lisinopril 20 mg daily and hydrochlorothiazide 25 mg daily. He denies chest pain, shortness of breath, or edema. He has tried lifestyle modifications including salt restriction and exercise.

OBJECTIVE:
Vital signs: BP 148/92, HR 84, RR 16, Temp 98.0°F.
Weight: 92 kg, Height: 178 cm (BMI: 29.0)
Physical exam: Funduscopic exam shows grade 1 hypertensive retinopathy. Heart: regular rhythm, no murmurs.
Recent labs: Creatinine 1.1 mg/dL, potassium 4.2 mEq/L.

ASSESSMENT:
1. Essential hypertension, uncontrolled
2. Obesity
3. Hypertensive retinopathy

PLAN:
1. Increase lisinopril to 40 mg daily
2. Add amlodipine 5 mg daily
3. Check for drug interactions with current regimen
4. Strict blood pressure monitoring
5. Weight loss counseling
6. Follow-up in 1 month`,
		Keywords: []string{"hypertension", "lisinopril", "obesity", "blood pressure"},
	},
	{
		ID:               5,
		MedicalSpecialty: "Cardiology",
		SampleName:       "HEART FAILURE",
		Transcription: `SUBJECTIVE:
68-year-old female with systolic heart failure (EF 35%) presents with worsening dyspnea on exertion. She reports needing 3 pillows to sleep (3-pillow orthopnea) and awakening short of breath at night. She has gained 2 kg in the past week. She is currently taking furosemide 40 mg daily, lisinopril 20 mg daily, and carvedilol 6.25 mg twice daily.

OBJECTIVE:
Vital signs: BP 118/76, HR 92, RR 24, Temp 98.8°F, SpO2 94% on room air.
Weight: 70 kg (up 2 kg from last visit)
Physical exam: JVP elevated at 8 cm, bilateral crackles at lung bases, 2+ pitting edema to mid-shins.
Labs: BNP 850 pg/mL, creatinine 1.3 mg/dL.

ASSESSMENT:
1. Systolic heart failure, decompensated
2. Volume overload
3. Renal impairment

PLAN:
1. Increase furosemide to 80 mg daily
2. Continue current heart failure medications
3. Daily weight monitoring
4. Salt and fluid restriction
5. Cardiology follow-up in 1 week
6. Consider CHADS2 score calculation (has atrial fibrillation)`,
		Keywords: []string{"heart failure", "CHADS2", "furosemide", "lisinopril", "dyspnea"},
	},
}
