// Package ai answers plant identification, diagnostic and care questions.
// The default client returns canned answers; an OpenAI-compatible endpoint
// may be configured for image scanning.
package ai

import (
	"context"
	"errors"
)

const (
	AnalysisIdentification = "identification"
	AnalysisDiagnostic     = "diagnostic"
	AnalysisCare           = "soins"
)

var ErrUnknownAnalysis = errors.New("unknown analysis type")

// ScanResult is what the scanner reports for one photo.
type ScanResult struct {
	PlantName   string  `json:"plant_name"`
	Variety     *string `json:"variety"`
	Confidence  float64 `json:"confidence"`
	Description string  `json:"description"`
	CareTips    *string `json:"care_tips"`
}

type Client interface {
	// Analyze returns a free-form result for one of the analysis types.
	Analyze(ctx context.Context, analysisType, imageBase64 string) (map[string]any, error)
	Scan(ctx context.Context, imageBase64 string) (*ScanResult, error)
}

// ValidAnalysisType reports whether t is one of the supported analysis types.
func ValidAnalysisType(t string) bool {
	switch t {
	case AnalysisIdentification, AnalysisDiagnostic, AnalysisCare:
		return true
	}
	return false
}
