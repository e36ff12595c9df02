// Package seed loads the plant catalog from the embedded data set and an
// optional spreadsheet.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"potager/entities"
	"potager/pkg/catalog/repository"
	"potager/pkg/logger"
)

//go:embed plants.json
var embeddedPlants []byte

const defaultPlantingDepth = "10-12 cm (standard)"

var catalogNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://lepotagermalin.com/catalog"))

// PlantID is stable across reseeds for the same name and variety.
func PlantID(nameFR, variety string) string {
	key := strings.TrimSpace(nameFR) + "|" + strings.TrimSpace(variety)
	return uuid.NewSHA1(catalogNamespace, []byte(key)).String()
}

// PlantingType maps the planting depth text to a planting method label.
func PlantingType(depth string) string {
	d := strings.ToLower(depth)
	switch {
	case strings.Contains(d, "graines"):
		return "Semis direct en graines"
	case strings.Contains(d, "arbuste"):
		return "Plantation d'arbuste"
	case strings.Contains(d, "arbre"):
		return "Plantation d'arbre"
	case strings.Contains(d, "plant"):
		return "Repiquage de plants"
	default:
		return "Plantation standard"
	}
}

// Normalize fills derived fields in place.
func Normalize(p *entities.Plant) {
	p.NameFR = strings.TrimSpace(p.NameFR)
	p.Variety = strings.TrimSpace(p.Variety)
	if strings.TrimSpace(p.PlantingDepth) == "" {
		p.PlantingDepth = defaultPlantingDepth
	}
	if p.PlantingType == "" {
		p.PlantingType = PlantingType(p.PlantingDepth)
	}
	if p.Category == "" {
		p.Category = "potager"
	}
	p.ID = PlantID(p.NameFR, p.Variety)
}

// Embedded returns the built-in catalog, normalised.
func Embedded() ([]entities.Plant, error) {
	var plants []entities.Plant
	if err := json.Unmarshal(embeddedPlants, &plants); err != nil {
		return nil, fmt.Errorf("decode embedded catalog: %w", err)
	}
	for i := range plants {
		Normalize(&plants[i])
	}
	return plants, nil
}

// Seed replaces the catalog with the embedded set plus the rows of the
// workbook at xlsxPath when it is not empty. Workbook rows win over embedded
// rows with the same name and variety.
func Seed(ctx context.Context, repo repository.CatalogRepository, xlsxPath string, log *logger.Logger) (int, error) {
	plants, err := Embedded()
	if err != nil {
		return 0, err
	}
	if xlsxPath != "" {
		extra, err := LoadXLSX(xlsxPath)
		if err != nil {
			return 0, err
		}
		if log != nil {
			log.WithField("path", xlsxPath).WithField("rows", len(extra)).Info("catalog workbook loaded")
		}
		plants = append(plants, extra...)
	}
	plants = dedupe(plants)

	if err := repo.Replace(ctx, plants); err != nil {
		return 0, fmt.Errorf("replace catalog: %w", err)
	}
	if log != nil {
		log.WithField("plants", len(plants)).Info("catalog seeded")
	}
	return len(plants), nil
}

// dedupe keeps the last plant for each id, in first-seen order.
func dedupe(plants []entities.Plant) []entities.Plant {
	pos := make(map[string]int, len(plants))
	out := make([]entities.Plant, 0, len(plants))
	for _, p := range plants {
		if i, ok := pos[p.ID]; ok {
			out[i] = p
			continue
		}
		pos[p.ID] = len(out)
		out = append(out, p)
	}
	return out
}
