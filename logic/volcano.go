package logic

import (
	"bytes"
	"disaster_board/dto"
	"disaster_board/shared"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_volcano.go -package mocks disaster_board/logic IVolcanoFeed

const volcanoPageUrl = "https://volcano.si.edu/reports_weekly.cfm"

const volcanoTimeoutSec = 10

// IVolcanoFeed scrapes the Smithsonian GVP weekly report page. The page is an
// unversioned HTML layout we do not control, so the contract here is weak on
// purpose: never fail on a page we could load, always return a bounded list.
type IVolcanoFeed interface {
	GetVolcanoes() ([]dto.VolcanoEntry, error)
}

// IPageExtractor is one strategy for pulling volcano entries out of a parsed
// page. Strategies are tried in order until one yields anything.
type IPageExtractor interface {
	Extract(doc *goquery.Document, maxEntries int) []dto.VolcanoEntry
}

type volcanoFeed struct {
	cfg        *shared.Config
	logger     shared.ILogger
	userAgent  shared.IUserAgent
	metrics    IMetrics
	pageUrl    string
	extractors []IPageExtractor
}

func NewVolcanoFeed(
	cfg *shared.Config,
	logger shared.ILogger,
	userAgent shared.IUserAgent,
	metrics IMetrics,
) IVolcanoFeed {
	return &volcanoFeed{
		cfg:       cfg,
		logger:    logger,
		userAgent: userAgent,
		metrics:   metrics,
		pageUrl:   volcanoPageUrl,
		extractors: []IPageExtractor{
			&tableExtractor{},
			&listExtractor{
				minItemChars: cfg.Volcano.MinItemChars,
				maxNameChars: cfg.Volcano.MaxNameChars,
			},
		},
	}
}

func (vf *volcanoFeed) GetVolcanoes() ([]dto.VolcanoEntry, error) {

	obs := vf.metrics.StartFeedFetch("volcanoes")
	defer obs.Finish()

	body, err := fetchBody(vf.userAgent, vf.pageUrl, volcanoTimeoutSec*time.Second)
	if err != nil {
		vf.logger.Warnf("Failed to fetch volcano page: %v", err)
		vf.metrics.FeedFetched("volcanoes", "failed")
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		vf.logger.Warnf("Failed to parse volcano page HTML: %v", err)
		vf.metrics.FeedFetched("volcanoes", "failed")
		return nil, err
	}

	// A page that parses but matches no strategy yields an empty list, not an
	// error; the layout changing underneath us is an expected event
	entries := []dto.VolcanoEntry{}
	for _, ex := range vf.extractors {
		entries = ex.Extract(doc, vf.cfg.Volcano.MaxEntries)
		if len(entries) > 0 {
			break
		}
	}
	if len(entries) == 0 {
		vf.logger.Warnf("No volcano entries extracted; page layout may have changed")
	}

	vf.metrics.FeedFetched("volcanoes", "ok")
	return entries, nil
}

// Primary strategy: table rows, first cell is the volcano name, second cell
// (when present) its status.
type tableExtractor struct {
}

func (te *tableExtractor) Extract(doc *goquery.Document, maxEntries int) []dto.VolcanoEntry {
	entries := []dto.VolcanoEntry{}
	doc.Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		cells := row.Find("td")
		if cells.Length() == 0 {
			return true
		}
		name := shared.CollapseSpace(cells.Eq(0).Text())
		if name == "" {
			return true
		}
		status := ""
		if cells.Length() > 1 {
			status = shared.CollapseSpace(cells.Eq(1).Text())
		}
		entries = append(entries, dto.VolcanoEntry{Name: name, Status: status})
		return len(entries) < maxEntries
	})
	return entries
}

// Fallback strategy when the table yields nothing: any list item with enough
// text is assumed to name a volcano.
type listExtractor struct {
	minItemChars int
	maxNameChars int
}

func (le *listExtractor) Extract(doc *goquery.Document, maxEntries int) []dto.VolcanoEntry {
	entries := []dto.VolcanoEntry{}
	doc.Find("li").EachWithBreak(func(_ int, item *goquery.Selection) bool {
		text := shared.CollapseSpace(item.Text())
		if utf8.RuneCountInString(text) <= le.minItemChars {
			return true
		}
		entries = append(entries, dto.VolcanoEntry{
			Name:   shared.Truncate(text, le.maxNameChars),
			Status: "",
		})
		return len(entries) < maxEntries
	})
	return entries
}
