package navcen

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"

	"PortStatusMonitor/internal/domain"
	"PortStatusMonitor/internal/ports"
)

const defaultMarsecLevel = "MARSEC 1"

var (
	marsecExpr = regexp.MustCompile(`(?i)MARSEC[- ]?(LEVEL[- ]?)?\d`)
	sectorExpr = regexp.MustCompile(`SECTOR\s+[\w\s-]+\s*\(\d{2}-\d{5}\)`)
)

// Fetcher retrieves one page body. Satisfied by fetch.Client.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Client scrapes the NAVCEN port status pages: the index page for the zone
// list and per-zone pages for the sub-port status table.
type Client struct {
	fetcher  Fetcher
	baseURL  string
	resolver ports.CoordinateResolver
	logger   *slog.Logger
}

var _ ports.ZoneSource = (*Client)(nil)

// NewClient wires the fetcher and the coordinate resolver.
func NewClient(fetcher Fetcher, baseURL string, resolver ports.CoordinateResolver, logger *slog.Logger) *Client {
	return &Client{
		fetcher:  fetcher,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		resolver: resolver,
		logger:   logger,
	}
}

// ListZones scrapes the index page for zone names, taken from anchors that
// link to per-zone status pages. Order follows the document; duplicates are
// dropped.
func (c *Client) ListZones(ctx context.Context) ([]string, error) {
	body, err := c.fetcher.Get(ctx, c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("fetch index page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse index page: %w", err)
	}

	var zones []string
	seen := map[string]struct{}{}
	doc.Find(`a[href*="port-status?zone="]`).Each(func(_ int, link *goquery.Selection) {
		name := strings.TrimSpace(link.Text())
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		zones = append(zones, name)
	})

	c.debug("listed zones", "count", len(zones))
	return zones, nil
}

// ScrapeZone fetches and parses a single zone page. A page without a usable
// status table degrades to a synthetic single-port zone at the centroid;
// that is a documented fallback, not an error.
func (c *Client) ScrapeZone(ctx context.Context, zoneName string) (domain.Zone, error) {
	pageURL, err := c.zoneURL(zoneName)
	if err != nil {
		return domain.Zone{}, err
	}

	body, err := c.fetcher.Get(ctx, pageURL)
	if err != nil {
		return domain.Zone{}, fmt.Errorf("fetch zone %s: %w", zoneName, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return domain.Zone{}, fmt.Errorf("parse zone %s: %w", zoneName, err)
	}

	zone := domain.Zone{
		Name:        zoneName,
		MarsecLevel: defaultMarsecLevel,
		SourceURL:   pageURL,
	}

	pageText := doc.Text()
	if match := marsecExpr.FindString(pageText); match != "" {
		zone.MarsecLevel = strings.ToUpper(match)
	}
	zone.SectorInfo = strings.TrimSpace(sectorExpr.FindString(pageText))

	zone.SubPorts = c.extractSubPorts(doc, zoneName)

	if len(zone.SubPorts) == 0 {
		lat, lon := c.resolver.ZoneCentroid(zoneName)
		zone.Synthetic = true
		zone.SubPorts = []domain.SubPort{{
			Name:      titleCase(zoneName),
			Condition: domain.ConditionNormal,
			Latitude:  lat,
			Longitude: lon,
		}}
		c.info("no status table for zone, treating as single port", "zone", zoneName)
	}

	return zone, nil
}

// extractSubPorts finds the first table whose header mentions both a port
// and a status column, tolerating column renames and reordering, and reads
// its data rows. Rows need at least name, status and comments cells; the
// optional fourth cell is the last-changed date.
func (c *Client) extractSubPorts(doc *goquery.Document, zoneName string) []domain.SubPort {
	var subPorts []domain.SubPort

	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		rows := table.Find("tr")
		if rows.Length() < 2 {
			return true
		}

		header := strings.ToUpper(rows.First().Text())
		if !strings.Contains(header, "PORT") || !strings.Contains(header, "STATUS") {
			return true
		}

		rows.Slice(1, rows.Length()).Each(func(_ int, row *goquery.Selection) {
			cells := row.Find("td, th")
			if cells.Length() < 3 {
				return
			}

			name := strings.TrimSpace(cells.Eq(0).Text())
			if name == "" {
				return
			}
			rawStatus := strings.TrimSpace(cells.Eq(1).Text())
			comments := strings.TrimSpace(cells.Eq(2).Text())
			lastChanged := ""
			if cells.Length() > 3 {
				lastChanged = strings.TrimSpace(cells.Eq(3).Text())
			}

			condition := domain.ConditionFromStatus(rawStatus).UpgradeFromComments(comments)
			lat, lon := c.resolver.Resolve(zoneName, name, len(subPorts))

			subPorts = append(subPorts, domain.SubPort{
				Name:        name,
				Condition:   condition,
				Comments:    comments,
				LastChanged: lastChanged,
				Latitude:    lat,
				Longitude:   lon,
			})
		})

		return false // first qualifying table wins
	})

	return subPorts
}

func (c *Client) zoneURL(zoneName string) (string, error) {
	parsed, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base url %s: %w", c.baseURL, err)
	}
	query := parsed.Query()
	query.Set("zone", zoneName)
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}

// titleCase renders an upper-cased zone name as a display name for the
// synthetic fallback port ("NEW YORK" -> "New York").
func titleCase(s string) string {
	var b strings.Builder
	startOfWord := true
	for _, r := range strings.ToLower(s) {
		if startOfWord && unicode.IsLetter(r) {
			r = unicode.ToUpper(r)
			startOfWord = false
		} else if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			startOfWord = true
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (c *Client) debug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}

func (c *Client) info(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Info(msg, args...)
	}
}
