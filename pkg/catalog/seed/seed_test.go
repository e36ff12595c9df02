package seed

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"potager/entities"
	"potager/pkg/catalog/repositoryImp"
	"potager/pkg/testutil"
)

func TestPlantingType(t *testing.T) {
	cases := map[string]string{
		"1 cm (graines)":      "Semis direct en graines",
		"12-15 cm (plant)":    "Repiquage de plants",
		"30 cm (arbuste)":     "Plantation d'arbuste",
		"50 cm (arbre)":       "Plantation d'arbre",
		"10-12 cm (standard)": "Plantation standard",
		"":                    "Plantation standard",
	}
	for depth, want := range cases {
		assert.Equal(t, want, PlantingType(depth), depth)
	}
}

func TestNormalizeFillsDefaults(t *testing.T) {
	p := entities.Plant{NameFR: " Basilic ", Variety: "Genovese"}
	Normalize(&p)
	assert.Equal(t, "Basilic", p.NameFR)
	assert.Equal(t, "10-12 cm (standard)", p.PlantingDepth)
	assert.Equal(t, "Plantation standard", p.PlantingType)
	assert.Equal(t, "potager", p.Category)
	assert.Equal(t, PlantID("Basilic", "Genovese"), p.ID)
}

func TestPlantIDIsStable(t *testing.T) {
	assert.Equal(t, PlantID("Tomate", "Cerise"), PlantID("Tomate", "Cerise"))
	assert.NotEqual(t, PlantID("Tomate", "Cerise"), PlantID("Tomate", "Cœur de Bœuf"))
}

func TestEmbeddedCatalog(t *testing.T) {
	plants, err := Embedded()
	require.NoError(t, err)
	require.NotEmpty(t, plants)

	seen := map[string]bool{}
	for _, p := range plants {
		assert.NotEmpty(t, p.NameFR)
		assert.NotEmpty(t, p.PlantingDepth, p.NameFR)
		assert.NotEmpty(t, p.PlantingType, p.NameFR)
		assert.False(t, seen[p.ID], "duplicate id for %s", p.NameFR)
		seen[p.ID] = true
	}
}

func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		row := r
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	path := filepath.Join(t.TempDir(), "catalog.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadXLSXHeaderAliases(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"Nom", "Variété", "Catégorie", "Arrosage mensuel", "Profondeur", "Saison"},
		{"Poivron", "Doux d'Espagne", "Potager", "Juillet: 2-3 fois par semaine", "1 cm (graines)", "printemps, été"},
		{"", "ignored", "", "", "", ""},
		{"Menthe", "", "", "", "", ""},
	})

	plants, err := LoadXLSX(path)
	require.NoError(t, err)
	require.Len(t, plants, 2)

	assert.Equal(t, "Poivron", plants[0].NameFR)
	assert.Equal(t, "potager", plants[0].Category)
	assert.Equal(t, "Juillet: 2-3 fois par semaine", plants[0].MonthlyWatering)
	assert.Equal(t, "Semis direct en graines", plants[0].PlantingType)
	assert.Equal(t, []string{"printemps", "été"}, plants[0].GrowingSeason)

	assert.Equal(t, "10-12 cm (standard)", plants[1].PlantingDepth)
}

func TestLoadXLSXRequiresName(t *testing.T) {
	path := writeWorkbook(t, [][]any{{"couleur"}, {"rouge"}})
	_, err := LoadXLSX(path)
	assert.ErrorContains(t, err, "missing name column")
}

func TestSeedReplacesCatalog(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repositoryImp.New(db)
	ctx := context.Background()

	testutil.SeedPlant(t, db, "stale", "Ancienne", "")

	embedded, err := Embedded()
	require.NoError(t, err)

	path := writeWorkbook(t, [][]any{
		{"name_fr", "variety", "monthly_watering"},
		{"Tomate Cerise", "Cerise", "Juillet: 4 fois par semaine"},
		{"Poireau", "Bleu de Solaise", "Août: 1 fois par semaine"},
	})

	n, err := Seed(ctx, repo, path, nil)
	require.NoError(t, err)
	assert.Equal(t, len(embedded)+1, n)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, n, count)

	_, err = repo.FindByID(ctx, "stale")
	assert.Error(t, err)

	// the workbook row overrides the embedded one with the same id
	p, err := repo.FindByID(ctx, PlantID("Tomate Cerise", "Cerise"))
	require.NoError(t, err)
	assert.Equal(t, "Juillet: 4 fois par semaine", p.MonthlyWatering)

	// reseeding keeps ids stable
	_, err = Seed(ctx, repo, "", nil)
	require.NoError(t, err)
	p, err = repo.FindByID(ctx, PlantID("Tomate Cerise", "Cerise"))
	require.NoError(t, err)
	assert.Equal(t, "Juillet: 3-4 fois par semaine", p.MonthlyWatering)
}
