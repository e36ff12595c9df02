package serviceImp

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"potager/pkg/apperr"
	"potager/pkg/logger"
	"potager/pkg/testutil"
	"potager/pkg/tips/repositoryImp"
)

// fakeEmbedder maps texts onto two axes: watering and pests.
type fakeEmbedder struct{ fail bool }

func (f fakeEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	if f.fail {
		return nil, errors.New("endpoint down")
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		t = strings.ToLower(t)
		v := []float32{0.1, 0.1}
		if strings.Contains(t, "arros") || strings.Contains(t, "eau") {
			v[0] = 1
		}
		if strings.Contains(t, "puceron") || strings.Contains(t, "nuisible") {
			v[1] = 1
		}
		out[i] = v
	}
	return out, nil
}

func TestChunkText(t *testing.T) {
	text := strings.Repeat("a", 10) + "\n" + strings.Repeat("b", 3) + "\n" + "c"
	assert.Equal(t, []string{strings.Repeat("a", 10), "bbb\nc"}, chunkText(text, 5))
	assert.Empty(t, chunkText("  \n ", 5))
}

func TestKeywordSearch(t *testing.T) {
	db := testutil.NewDB(t)
	svc := New(repositoryImp.New(db), nil, logger.NewDefault("test"))
	ctx := context.Background()

	n, err := svc.SeedDefaults(ctx)
	require.NoError(t, err)
	assert.Positive(t, n)

	n, err = svc.SeedDefaults(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "already seeded")

	hits, err := svc.Search(ctx, "pucerons savon", 3)
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	assert.Equal(t, "Lutter contre les pucerons", hits[0].DocTitle)

	hits, err = svc.Search(ctx, "xylophone", 3)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestEmbeddingSearch(t *testing.T) {
	db := testutil.NewDB(t)
	svc := New(repositoryImp.New(db), fakeEmbedder{}, logger.NewDefault("test"))
	ctx := context.Background()

	_, _, err := svc.AddDocument(ctx, "Arrosage", "eau", "Arrosez le soir au pied.", "")
	require.NoError(t, err)
	_, _, err = svc.AddDocument(ctx, "Nuisibles", "", "Les pucerons aiment les rosiers.", "")
	require.NoError(t, err)

	hits, err := svc.Search(ctx, "puceron", 1)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Nuisibles", hits[0].DocTitle)
}

func TestAddDocumentSurvivesEmbeddingFailure(t *testing.T) {
	db := testutil.NewDB(t)
	svc := New(repositoryImp.New(db), fakeEmbedder{fail: true}, logger.NewDefault("test"))
	ctx := context.Background()

	doc, n, err := svc.AddDocument(ctx, "Paillage", "", "Le paillis garde le sol frais.", "")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.NotZero(t, doc.DocID)

	hits, err := svc.Search(ctx, "paillis", 5)
	require.NoError(t, err)
	require.Len(t, hits, 1)

	_, _, err = svc.AddDocument(ctx, "", "", "texte", "")
	assert.ErrorIs(t, err, apperr.ErrBadRequest)
	_, _, err = svc.AddDocument(ctx, "Vide", "", "   ", "")
	assert.ErrorIs(t, err, apperr.ErrBadRequest)
}
