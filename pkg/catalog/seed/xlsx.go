package seed

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"potager/entities"
)

func normHeader(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF")
	s = strings.ToLower(s)
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

// LoadXLSX reads plants from the first sheet of a workbook. The first row
// holds the headers; French and English column names are both accepted.
func LoadXLSX(path string) ([]entities.Plant, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer x.Close()

	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheet", path)
	}
	rows, err := x.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	hmap := map[string]int{}
	for i, h := range rows[0] {
		hmap[normHeader(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[normHeader(k)]; ok {
				return idx
			}
		}
		return -1
	}

	cName := findAny("name_fr", "nom", "nom_fr", "name", "plante")
	if cName == -1 {
		return nil, fmt.Errorf("workbook %s: missing name column, found headers %v", path, rows[0])
	}
	cLatin := findAny("name_latin", "nom_latin", "latin")
	cVariety := findAny("variety", "variete", "variété")
	cCategory := findAny("category", "categorie", "catégorie")
	cSub := findAny("subcategory", "sous_categorie", "sous-catégorie", "type")
	cImage := findAny("image_url", "image", "photo")
	cDesc := findAny("description")
	cCare := findAny("care_instructions", "entretien", "soins")
	cSeason := findAny("growing_season", "saison", "saisons")
	cDiff := findAny("difficulty", "difficulte", "difficulté")
	cSun := findAny("sunlight", "exposition", "soleil")
	cWater := findAny("watering", "arrosage")
	cSoil := findAny("soil_type", "sol", "type_de_sol")
	cMonthly := findAny("monthly_watering", "arrosage_mensuel", "arrosage_par_mois")
	cSpPlants := findAny("spacing_between_plants", "espacement_plants", "distance_plants")
	cSpRows := findAny("spacing_between_rows", "espacement_rangs", "distance_rangs")
	cDepth := findAny("planting_depth", "profondeur", "profondeur_plantation")

	var out []entities.Plant
	for _, rec := range rows[1:] {
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}
		name := get(cName)
		if name == "" {
			continue
		}
		p := entities.Plant{
			NameFR:               name,
			NameLatin:            get(cLatin),
			Variety:              get(cVariety),
			Category:             strings.ToLower(get(cCategory)),
			Subcategory:          strings.ToLower(get(cSub)),
			ImageURL:             get(cImage),
			Description:          get(cDesc),
			CareInstructions:     get(cCare),
			GrowingSeason:        splitList(get(cSeason)),
			Difficulty:           get(cDiff),
			Sunlight:             get(cSun),
			Watering:             get(cWater),
			SoilType:             get(cSoil),
			MonthlyWatering:      get(cMonthly),
			SpacingBetweenPlants: get(cSpPlants),
			SpacingBetweenRows:   get(cSpRows),
			PlantingDepth:        get(cDepth),
		}
		Normalize(&p)
		out = append(out, p)
	}
	return out, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ';' || r == '/' })
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, strings.ToLower(p))
		}
	}
	return out
}
