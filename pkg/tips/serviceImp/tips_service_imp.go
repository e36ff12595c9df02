package serviceImp

import (
	"context"
	"math"
	"sort"
	"strings"
	"unicode"

	"potager/entities"
	"potager/pkg/apperr"
	"potager/pkg/logger"
	"potager/pkg/tips/embedder"
	"potager/pkg/tips/repository"
	"potager/pkg/tips/service"
)

const chunkRunes = 1000

type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

type Svc struct {
	r   repository.TipsRepository
	emb Embedder
	log *logger.Logger
}

// New builds the service; emb may be nil, in which case search is keyword based.
func New(r repository.TipsRepository, emb Embedder, log *logger.Logger) service.TipsService {
	return &Svc{r: r, emb: emb, log: log}
}

// chunkText cuts text at the first newline after maxRunes runes.
func chunkText(text string, maxRunes int) []string {
	var parts []string
	var cur strings.Builder
	count := 0
	for _, r := range text {
		cur.WriteRune(r)
		count++
		if count >= maxRunes && r == '\n' {
			if s := strings.TrimSpace(cur.String()); s != "" {
				parts = append(parts, s)
			}
			cur.Reset()
			count = 0
		}
	}
	if s := strings.TrimSpace(cur.String()); s != "" {
		parts = append(parts, s)
	}
	return parts
}

func (s *Svc) AddDocument(ctx context.Context, title, tags, text, sourceURL string) (*entities.TipDocument, int, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, 0, apperr.BadRequest("title is required")
	}
	chs := chunkText(text, chunkRunes)
	if len(chs) == 0 {
		return nil, 0, apperr.BadRequest("text is required")
	}

	var embs [][]float32
	if s.emb != nil {
		var err error
		embs, err = s.emb.Embed(ctx, chs)
		if err != nil {
			// chunks stay searchable by keyword
			s.log.WithError(err).Warn("embedding failed, storing chunks without vectors")
			embs = nil
		}
	}

	rows := make([]entities.TipChunk, len(chs))
	for i := range chs {
		rows[i] = entities.TipChunk{Ord: i, Text: chs[i]}
		if i < len(embs) {
			rows[i].Embedding = embedder.FloatsToBytes(embs[i])
		}
	}
	d := &entities.TipDocument{Title: title, Tags: strings.TrimSpace(tags), SourceURL: sourceURL}
	if err := s.r.CreateDocument(ctx, d, rows); err != nil {
		return nil, 0, err
	}
	return d, len(rows), nil
}

func cosine(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

func words(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// keywordScore is the share of query words found in text, with a bonus for
// the whole phrase.
func keywordScore(query, text string) float64 {
	qw := words(query)
	if len(qw) == 0 {
		return 0
	}
	present := map[string]bool{}
	for _, w := range words(text) {
		present[w] = true
	}
	hits := 0
	for _, w := range qw {
		if present[w] {
			hits++
		}
	}
	score := float64(hits) / float64(len(qw))
	if strings.Contains(strings.ToLower(text), strings.ToLower(strings.TrimSpace(query))) {
		score += 1
	}
	return score
}

func (s *Svc) Search(ctx context.Context, query string, k int) ([]service.Hit, error) {
	q := strings.TrimSpace(query)
	if q == "" || k <= 0 {
		return nil, nil
	}

	var qvec []float32
	if s.emb != nil {
		if vec, err := s.emb.Embed(ctx, []string{q}); err == nil && len(vec) > 0 {
			qvec = vec[0]
		}
	}

	chunks, err := s.r.AllChunks(ctx)
	if err != nil {
		return nil, err
	}

	var hits []service.Hit
	for _, ch := range chunks {
		var sc float64
		if len(qvec) > 0 && len(ch.Embedding) > 0 {
			sc = cosine(qvec, embedder.BytesToFloats(ch.Embedding))
		} else {
			sc = keywordScore(q, ch.Text)
		}
		if sc <= 0 {
			continue
		}
		hits = append(hits, service.Hit{ChunkID: ch.ChunkID, DocID: ch.DocID, Ord: ch.Ord, Text: ch.Text, Score: sc})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	if len(hits) > k {
		hits = hits[:k]
	}

	ids := make([]uint, 0, len(hits))
	seen := map[uint]bool{}
	for _, h := range hits {
		if !seen[h.DocID] {
			seen[h.DocID] = true
			ids = append(ids, h.DocID)
		}
	}
	meta, err := s.r.DocsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range hits {
		if d, ok := meta[hits[i].DocID]; ok {
			hits[i].DocTitle = d.Title
			hits[i].SourceURL = d.SourceURL
		}
	}
	return hits, nil
}

var defaultTips = []struct{ title, tags, text string }{
	{
		"Arroser au bon moment",
		"arrosage,été",
		"Arrosez tôt le matin ou en soirée pour limiter l'évaporation. " +
			"Visez le pied des plantes plutôt que le feuillage afin d'éviter les maladies comme le mildiou. " +
			"Un arrosage copieux et espacé vaut mieux que de petits arrosages quotidiens.",
	},
	{
		"Pailler le potager",
		"paillage,sol,arrosage",
		"Un paillis de paille, de tontes séchées ou de feuilles mortes garde le sol frais, " +
			"réduit les arrosages de moitié et limite les mauvaises herbes. Étalez 5 à 10 cm sur un sol humide.",
	},
	{
		"Tomates : gourmands et tuteurs",
		"tomate,taille",
		"Supprimez les gourmands qui poussent à l'aisselle des feuilles pour concentrer la sève sur les fruits. " +
			"Tuteurez dès que le plant dépasse 30 cm et attachez la tige sans serrer.",
	},
	{
		"Lutter contre les pucerons",
		"pucerons,nuisibles,rosier",
		"Pulvérisez un mélange d'eau et de savon noir sur les colonies de pucerons. " +
			"Favorisez les coccinelles et plantez des capucines qui attirent les pucerons loin des cultures.",
	},
	{
		"Réussir ses semis",
		"semis,graines",
		"Semez à une profondeur égale à deux ou trois fois la taille de la graine. " +
			"Gardez la terre humide sans excès jusqu'à la levée puis éclaircissez les jeunes plants.",
	},
}

func (s *Svc) SeedDefaults(ctx context.Context) (int, error) {
	n, err := s.r.CountDocuments(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	for _, t := range defaultTips {
		if _, _, err := s.AddDocument(ctx, t.title, t.tags, t.text, ""); err != nil {
			return 0, err
		}
	}
	return len(defaultTips), nil
}
