package osuweb

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"

	"github.com/osuit/ai-agent/internal/config"
)

const (
	userAgent  = "OSU-AI-Agent/1.0 (internal assistant)"
	detailPath = "/majors-and-academics/majors/detail/"
	maxItems   = 80
)

var (
	whitespacePattern = regexp.MustCompile(`\s+`)
	detailLinkPattern = regexp.MustCompile(`href="[^"]*` + regexp.QuoteMeta(detailPath) + `[^"]*"[^>]*>([^<]{3,120})</a>`)
)

// Service scrapes the undergraduate majors listing from the OSU
// admissions site.
type Service struct {
	sourceURL string
	client    *http.Client
}

// NewService creates a new OSU web service.
func NewService() *Service {
	service := &Service{
		sourceURL: config.GetMajorsSourceURL(),
		client: &http.Client{
			Timeout: 8 * time.Second,
		},
	}

	log.Info().Str("url", service.sourceURL).Msg("OSU web service initialized")
	return service
}

// SourceURL returns the majors listing page this service scrapes.
func (s *Service) SourceURL() string {
	return s.sourceURL
}

// FetchMajors downloads the majors listing page and extracts major
// names from links to major detail pages. The result is deduplicated
// and capped at 80 entries.
func (s *Service) FetchMajors(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.sourceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create majors request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("majors page request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("majors page returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read majors page: %w", err)
	}

	return parseMajors(body), nil
}

// parseMajors walks the document tree for anchors pointing at major
// detail pages, falling back to a regex scan when the tree walk finds
// nothing.
func parseMajors(body []byte) []string {
	found := newCollector()

	if doc, err := html.Parse(bytes.NewReader(body)); err == nil {
		var walk func(*html.Node)
		walk = func(n *html.Node) {
			if n.Type == html.ElementNode && n.Data == "a" {
				for _, attr := range n.Attr {
					if attr.Key == "href" && strings.Contains(attr.Val, detailPath) {
						found.add(textContent(n))
						break
					}
				}
			}
			for child := n.FirstChild; child != nil; child = child.NextSibling {
				walk(child)
			}
		}
		walk(doc)
	}
	if len(found.majors) > 0 {
		if len(found.majors) > maxItems {
			return found.majors[:maxItems]
		}
		return found.majors
	}

	for _, match := range detailLinkPattern.FindAllSubmatch(body, -1) {
		found.add(string(match[1]))
		if len(found.majors) >= maxItems {
			break
		}
	}
	return found.majors
}

type collector struct {
	seen   map[string]bool
	majors []string
}

func newCollector() *collector {
	return &collector{seen: make(map[string]bool)}
}

// add normalizes whitespace and keeps names of at least 3 characters,
// skipping duplicates.
func (c *collector) add(name string) {
	name = strings.TrimSpace(whitespacePattern.ReplaceAllString(name, " "))
	if len(name) < 3 || c.seen[name] {
		return
	}
	c.seen[name] = true
	c.majors = append(c.majors, name)
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return sb.String()
}
