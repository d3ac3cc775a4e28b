package types

// PatientFlags carries the CHADS2 risk factors. Missing booleans are false
// and a missing age is zero, so the zero value is a valid "no risk factors"
// profile.
type PatientFlags struct {
	CongestiveHeartFailure bool `json:"congestive_heart_failure"`
	Hypertension           bool `json:"hypertension"`
	Age                    int  `json:"age"`
	Diabetes               bool `json:"diabetes"`
	StrokeTIAHistory       bool `json:"stroke_tia_history"`
}
