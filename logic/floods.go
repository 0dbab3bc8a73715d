package logic

import (
	"disaster_board/shared"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_floods.go -package mocks disaster_board/logic IFloodFeed

const floodSearchUrl = "https://api.reliefweb.int/v1/reports"

// ReliefWeb is the slowest of the four upstreams; it gets a little extra rope.
const floodTimeoutSec = 12

// IFloodFeed queries the ReliefWeb report search for recent flood reports and
// passes the paginated response through unmodified.
type IFloodFeed interface {
	GetReports() (json.RawMessage, error)
}

type floodFeed struct {
	cfg       *shared.Config
	logger    shared.ILogger
	userAgent shared.IUserAgent
	metrics   IMetrics
	searchUrl string
}

func NewFloodFeed(
	cfg *shared.Config,
	logger shared.ILogger,
	userAgent shared.IUserAgent,
	metrics IMetrics,
) IFloodFeed {
	return &floodFeed{
		cfg:       cfg,
		logger:    logger,
		userAgent: userAgent,
		metrics:   metrics,
		searchUrl: floodSearchUrl,
	}
}

func (ff *floodFeed) GetReports() (json.RawMessage, error) {

	obs := ff.metrics.StartFeedFetch("floods")
	defer obs.Finish()

	body, err := fetchBody(ff.userAgent, ff.buildSearchUrl(), floodTimeoutSec*time.Second)
	if err == nil && !json.Valid(body) {
		err = fmt.Errorf("upstream returned malformed JSON")
	}
	if err != nil {
		ff.logger.Warnf("Failed to fetch flood reports: %v", err)
		ff.metrics.FeedFetched("floods", "failed")
		return nil, err
	}

	ff.metrics.FeedFetched("floods", "ok")
	return json.RawMessage(body), nil
}

func (ff *floodFeed) buildSearchUrl() string {
	// Free-text match on "flood" with OR semantics, most recent first.
	// ReliefWeb requires the appname identifier on every call.
	params := url.Values{}
	params.Set("appname", ff.cfg.ReliefWebAppName)
	params.Set("query[value]", "flood")
	params.Set("query[operator]", "OR")
	params.Set("limit", strconv.Itoa(ff.cfg.FloodResultLimit))
	params.Add("sort[]", "date:desc")
	return ff.searchUrl + "?" + params.Encode()
}
