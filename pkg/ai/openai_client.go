package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const scanPrompt = `Analysez cette image de plante et identifiez:
1. Le nom de la plante (nom commun en français)
2. La variété spécifique si identifiable (ex: pour une tomate, dire si c'est Cœur de Bœuf, Cerise, Roma, etc.)
3. Votre niveau de confiance (0-1)
4. Une brève description
5. Des conseils d'entretien basiques

Répondez au format JSON avec les clés: plant_name, variety, confidence, description, care_tips`

// openAI scans photos through an OpenAI-compatible chat completions API.
// Text analyses stay on the canned answers.
type openAI struct {
	endpoint string
	key      string
	model    string
	httpc    *http.Client
	fallback Client
}

func NewOpenAI(endpoint, key, model string) Client {
	if model == "" {
		model = "gpt-4o"
	}
	return &openAI{
		endpoint: endpoint,
		key:      key,
		model:    model,
		httpc:    &http.Client{Timeout: 25 * time.Second},
		fallback: NewMock(),
	}
}

func (c *openAI) Analyze(ctx context.Context, analysisType, imageBase64 string) (map[string]any, error) {
	return c.fallback.Analyze(ctx, analysisType, imageBase64)
}

func (c *openAI) Scan(ctx context.Context, imageBase64 string) (*ScanResult, error) {
	reqBody := map[string]any{
		"model": c.model,
		"messages": []map[string]any{{
			"role": "user",
			"content": []map[string]any{
				{"type": "text", "text": scanPrompt},
				{"type": "image_url", "image_url": map[string]string{"url": "data:image/jpeg;base64," + imageBase64}},
			},
		}},
		"max_tokens": 500,
	}
	b, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(c.endpoint, "/")+"/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scanner request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("scanner request: status %d: %s", resp.StatusCode, gjson.GetBytes(msg, "error.message").String())
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read scanner response: %w", err)
	}
	content := gjson.GetBytes(body, "choices.0.message.content")
	if !content.Exists() {
		return nil, fmt.Errorf("scanner response: no choices")
	}
	return ParseScanContent(content.String()), nil
}

// ParseScanContent reads the JSON answer of the model, possibly wrapped in a
// fenced block. Unparseable answers become an unidentified plant whose
// description is the raw text.
func ParseScanContent(content string) *ScanResult {
	text := content
	if _, after, ok := strings.Cut(text, "```json"); ok {
		text, _, _ = strings.Cut(after, "```")
	} else if _, after, ok := strings.Cut(text, "```"); ok {
		text, _, _ = strings.Cut(after, "```")
	}

	var r ScanResult
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &r); err == nil && r.PlantName != "" {
		return &r
	}
	tips := "Consultez l'encyclopédie pour plus d'informations"
	return &ScanResult{
		PlantName:   "Plante non identifiée",
		Confidence:  0.5,
		Description: content,
		CareTips:    &tips,
	}
}
