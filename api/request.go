// Package api exposes the rule engine over HTTP. The analyze endpoint runs
// the full dispatcher; the remaining endpoints call one calculator each, the
// way the mobile client uses them.
package api

import (
	"encoding/json"
	"io/ioutil"
	"net/http"

	"auramed.com/copilot/interactions"
	"auramed.com/copilot/pipeline"
	"auramed.com/copilot/scoring"
	"auramed.com/copilot/soap"
	"auramed.com/copilot/types"
)

type Handlers struct {
	Pipeline  pipeline.Pipeline
	Extractor *soap.Extractor
}

func NewHandlers(ppln pipeline.Pipeline, extractor *soap.Extractor) *Handlers {
	return &Handlers{Pipeline: ppln, Extractor: extractor}
}

func (h *Handlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/analyze", h.Analyze)
	mux.HandleFunc("/api/soap-notes", h.SoapNotes)
	mux.HandleFunc("/api/chads2-score", h.Chads2Score)
	mux.HandleFunc("/api/drug-interactions", h.DrugInteractions)
	mux.HandleFunc("/api/bmi", h.BMI)
	mux.HandleFunc("/api/map", h.MAP)
}

// Analyze reads the transcript from the raw request body and runs the full
// dispatcher.
func (h *Handlers) Analyze(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	logger := makeRequestLogger(r)

	if r.Method != "POST" {
		logger.Err(nil).Int("status", http.StatusMethodNotAllowed).Msg("Only 'POST' method is allowed here")
		http.Error(w, "", http.StatusMethodNotAllowed)
		return
	}

	msg, err := ioutil.ReadAll(r.Body)
	if err != nil {
		logger.Err(err).Int("status", http.StatusBadRequest).Msg("Could not read request body")
		http.Error(w, "", http.StatusBadRequest)
		return
	}

	request := pipeline.Request{
		Tid:  "api",
		Text: string(msg),
	}
	logger.Info().Str("tid", request.Tid).Msg("Starting pipeline for request from API")
	resp := <-h.Pipeline(request)
	_, _ = w.Write([]byte(resp))
	logger.Info().Int("status", http.StatusOK).Msg("Finished processing request")
}

type transcriptBody struct {
	Transcript string `json:"transcript"`
}

func (h *Handlers) SoapNotes(w http.ResponseWriter, r *http.Request) {
	var body transcriptBody
	if !decodeJSONBody(w, r, &body) {
		return
	}
	writeJSON(w, r, h.Extractor.Extract(body.Transcript))
}

func (h *Handlers) Chads2Score(w http.ResponseWriter, r *http.Request) {
	var flags types.PatientFlags
	if !decodeJSONBody(w, r, &flags) {
		return
	}
	writeJSON(w, r, scoring.ScoreCHADS2(flags))
}

type medicationsBody struct {
	Medications []string `json:"medications"`
}

func (h *Handlers) DrugInteractions(w http.ResponseWriter, r *http.Request) {
	var body medicationsBody
	if !decodeJSONBody(w, r, &body) {
		return
	}
	writeJSON(w, r, interactions.BuildReport(body.Medications))
}

type bmiBody struct {
	WeightKg float64 `json:"weight_kg"`
	HeightCm float64 `json:"height_cm"`
}

func (h *Handlers) BMI(w http.ResponseWriter, r *http.Request) {
	var body bmiBody
	if !decodeJSONBody(w, r, &body) {
		return
	}
	writeJSON(w, r, scoring.CalculateBMI(body.WeightKg, body.HeightCm))
}

type mapBody struct {
	Systolic  int `json:"systolic"`
	Diastolic int `json:"diastolic"`
}

func (h *Handlers) MAP(w http.ResponseWriter, r *http.Request) {
	var body mapBody
	if !decodeJSONBody(w, r, &body) {
		return
	}
	writeJSON(w, r, scoring.CalculateMAP(body.Systolic, body.Diastolic))
}

func decodeJSONBody(w http.ResponseWriter, r *http.Request, target interface{}) bool {
	w.Header().Set("Content-Type", "application/json")

	logger := makeRequestLogger(r)

	if r.Method != "POST" {
		logger.Err(nil).Int("status", http.StatusMethodNotAllowed).Msg("Only 'POST' method is allowed here")
		http.Error(w, "", http.StatusMethodNotAllowed)
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		logger.Err(err).Int("status", http.StatusBadRequest).Msg("Could not decode request body")
		http.Error(w, "", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload interface{}) {
	logger := makeRequestLogger(r)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Err(err).Msg("Could not encode response")
		return
	}
	logger.Info().Int("status", http.StatusOK).Msg("Finished processing request")
}
