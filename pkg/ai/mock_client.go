package ai

import (
	"context"
	"fmt"
)

type mockClient struct{}

func NewMock() Client { return &mockClient{} }

func (m *mockClient) Analyze(_ context.Context, analysisType, _ string) (map[string]any, error) {
	switch analysisType {
	case AnalysisIdentification:
		return map[string]any{
			"plant_name":  "Tomate (Solanum lycopersicum)",
			"confidence":  0.85,
			"description": "Plante potagère de la famille des solanacées",
			"category":    "potager",
			"subcategory": "legume",
		}, nil
	case AnalysisDiagnostic:
		return map[string]any{
			"health_status": "Légère carence en azote",
			"symptoms":      []string{"Jaunissement des feuilles inférieures"},
			"severity":      "faible",
			"confidence":    0.78,
		}, nil
	case AnalysisCare:
		return map[string]any{
			"care_plan": map[string]string{
				"watering":    "Arrosage tous les 2-3 jours",
				"fertilizing": "Engrais riche en azote une fois par semaine",
				"pruning":     "Tailler les gourmands régulièrement",
				"temperature": "Température optimale: 18-25°C",
			},
			"next_actions": []string{
				"Arroser dans 2 jours",
				"Appliquer engrais azote",
				"Vérifier présence de nuisibles",
			},
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAnalysis, analysisType)
}

func (m *mockClient) Scan(_ context.Context, _ string) (*ScanResult, error) {
	variety := "Cœur de Bœuf"
	tips := "Arroser au pied 2 à 3 fois par semaine et tuteurer dès 30 cm"
	return &ScanResult{
		PlantName:   "Tomate",
		Variety:     &variety,
		Confidence:  0.82,
		Description: "Plant de tomate vigoureux à grosses feuilles dentées",
		CareTips:    &tips,
	}, nil
}
