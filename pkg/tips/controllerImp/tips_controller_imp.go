package controllerImp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/echo/v4"

	"potager/pkg/apperr"
	"potager/pkg/tips/controller"
	"potager/pkg/tips/service"
)

const (
	searchResults = 6
	maxRedirects  = 5
)

var errHostNotAllowed = errors.New("domain not allowed")

type tipsCtrl struct {
	s        service.TipsService
	allow    map[string]bool
	maxBytes int
	httpc    *http.Client
}

// NewTipsController only fetches pages whose host is listed in allowedDomains.
func NewTipsController(s service.TipsService, allowedDomains []string, maxBytes int) controller.TipsController {
	allow := map[string]bool{}
	for _, h := range allowedDomains {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			allow[h] = true
		}
	}
	if maxBytes <= 0 {
		maxBytes = 1_500_000
	}
	h := &tipsCtrl{s: s, allow: allow, maxBytes: maxBytes}
	h.httpc = &http.Client{Timeout: 20 * time.Second, CheckRedirect: h.checkRedirect}
	return h
}

// checkRedirect keeps every hop of a fetch on the allow-list.
func (h *tipsCtrl) checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return fmt.Errorf("stopped after %d redirects", maxRedirects)
	}
	if !h.allowed(req.URL) {
		return fmt.Errorf("redirect to %s: %w", req.URL.Host, errHostNotAllowed)
	}
	return nil
}

func (h *tipsCtrl) allowed(u *url.URL) bool {
	return (u.Scheme == "http" || u.Scheme == "https") && h.allow[strings.ToLower(u.Host)]
}

type ingestReq struct {
	Title     string  `json:"title"`
	Tags      string  `json:"tags"`
	Text      string  `json:"text"`
	SourceURL *string `json:"source_url"`
}

func (h *tipsCtrl) IngestText(c echo.Context) error {
	var req ingestReq
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("invalid json")
	}
	src := ""
	if req.SourceURL != nil {
		src = *req.SourceURL
	}
	doc, n, err := h.s.AddDocument(c.Request().Context(), req.Title, req.Tags, req.Text, src)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]any{"doc": doc, "chunks": n})
}

func (h *tipsCtrl) IngestURL(c echo.Context) error {
	var body struct {
		URL   string `json:"url"`
		Tags  string `json:"tags"`
		Title string `json:"title"`
	}
	if err := c.Bind(&body); err != nil || body.URL == "" {
		return apperr.BadRequest("url required")
	}
	u, err := url.Parse(body.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return apperr.BadRequest("bad url")
	}
	if !h.allowed(u) {
		return apperr.Forbidden("domain not allowed")
	}

	txt, title, err := h.fetchMainText(c.Request().Context(), body.URL)
	if errors.Is(err, errHostNotAllowed) {
		return apperr.Forbidden("domain not allowed")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	if body.Title != "" {
		title = body.Title
	}
	if title == "" {
		title = u.Host
	}
	doc, n, err := h.s.AddDocument(c.Request().Context(), title, body.Tags, txt, body.URL)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]any{"doc": doc, "chunks": n})
}

// GET /api/premium/care-tips?q=arrosage
func (h *tipsCtrl) Search(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return apperr.BadRequest("q required")
	}
	hits, err := h.s.Search(c.Request().Context(), q, searchResults)
	if err != nil {
		return err
	}
	if hits == nil {
		hits = []service.Hit{}
	}
	return c.JSON(http.StatusOK, hits)
}

func (h *tipsCtrl) fetchMainText(ctx context.Context, u string) (string, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", "", err
	}
	resp, err := h.httpc.Do(req)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return "", "", fmt.Errorf("fetch %s: status %d", u, resp.StatusCode)
	}
	if resp.ContentLength > int64(h.maxBytes) {
		return "", "", fmt.Errorf("page too large")
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, int64(h.maxBytes)))
	if err != nil {
		return "", "", err
	}
	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	switch {
	case strings.Contains(ct, "text/plain"):
		return string(b), guessTitleFromText(string(b)), nil
	case strings.Contains(ct, "text/html"):
	default:
		return "", "", fmt.Errorf("unsupported content-type: %s", ct)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(b))
	if err != nil {
		return "", "", err
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())

	var parts []string
	sel := doc.Find("main, article")
	if sel.Length() == 0 {
		sel = doc.Selection
	}
	sel.Find("h1,h2,h3,p,li").Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	return cleanWhitespace(strings.Join(parts, "\n")), title, nil
}

var wsRX = regexp.MustCompile(`\s+\n`)

func cleanWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	return wsRX.ReplaceAllString(s, "\n")
}

func guessTitleFromText(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	if r := []rune(line); len(r) > 120 {
		line = string(r[:120])
	}
	return line
}
