package services

import (
	"context"
	"html"
	"log"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	config "github.com/jngeno/stablemate/configs"
)

// CompetitionResult is one event parsed out of the registry's search page.
type CompetitionResult struct {
	Name       string `json:"name"`
	Date       string `json:"date"`
	Location   string `json:"location"`
	Discipline string `json:"discipline"`
}

var (
	eventRowRe  = regexp.MustCompile(`(?s)<tr[^>]*class="[^"]*event[^"]*"[^>]*>(.*?)</tr>`)
	tableCellRe = regexp.MustCompile(`(?s)<td[^>]*>(.*?)</td>`)
	htmlTagRe   = regexp.MustCompile(`<[^>]+>`)
)

// SearchCompetitionRegistry runs a free-text search against the external
// competition registry in a headless browser and parses the result table.
// The registry has no API, so this is best effort by design: any navigation
// or parse failure yields an empty list, never an error to the caller.
func SearchCompetitionRegistry(ctx context.Context, query string) []CompetitionResult {
	baseURL := config.Config("REGISTRY_BASE_URL")
	if baseURL == "" {
		log.Println("⚠️ Competition registry URL not configured, skipping search")
		return []CompetitionResult{}
	}

	cctx, cancel := chromedp.NewContext(ctx)
	defer cancel()
	cctx, cancelTimeout := context.WithTimeout(cctx, 30*time.Second)
	defer cancelTimeout()

	actions := []chromedp.Action{
		network.Enable(),
		network.SetExtraHTTPHeaders(network.Headers{"Accept-Language": "en"}),
	}

	// Some registries hide results behind a member login.
	if email, password := config.Config("REGISTRY_EMAIL"), config.Config("REGISTRY_PASSWORD"); email != "" && password != "" {
		actions = append(actions,
			chromedp.Navigate(baseURL+"/login"),
			chromedp.SendKeys(`input[name="email"]`, email, chromedp.ByQuery),
			chromedp.SendKeys(`input[name="password"]`, password, chromedp.ByQuery),
			chromedp.Submit(`input[name="password"]`, chromedp.ByQuery),
		)
	}

	var pageHTML string
	actions = append(actions,
		chromedp.Navigate(baseURL+"/events/search?q="+url.QueryEscape(query)),
		chromedp.OuterHTML("html", &pageHTML, chromedp.ByQuery),
	)

	if err := chromedp.Run(cctx, actions...); err != nil {
		log.Printf("🔥 Competition registry search failed for query %q: %v", query, err)
		return []CompetitionResult{}
	}

	return parseCompetitionRows(pageHTML)
}

func parseCompetitionRows(pageHTML string) []CompetitionResult {
	results := []CompetitionResult{}

	for _, row := range eventRowRe.FindAllStringSubmatch(pageHTML, -1) {
		cells := tableCellRe.FindAllStringSubmatch(row[1], -1)
		if len(cells) < 4 {
			continue
		}

		result := CompetitionResult{
			Name:       cleanCell(cells[0][1]),
			Date:       cleanCell(cells[1][1]),
			Location:   cleanCell(cells[2][1]),
			Discipline: cleanCell(cells[3][1]),
		}
		if result.Name == "" {
			continue
		}
		results = append(results, result)
	}

	return results
}

func cleanCell(cell string) string {
	return strings.TrimSpace(html.UnescapeString(htmlTagRe.ReplaceAllString(cell, " ")))
}
