package logic

import (
	"disaster_board/shared"
	"encoding/json"
	"fmt"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_quakes.go -package mocks disaster_board/logic IQuakeFeed

// Past day, all magnitudes. Not configurable; the whole dashboard is built
// around this one summary window.
const quakeFeedUrl = "https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary/all_day.geojson"

const quakeTimeoutSec = 10

// IQuakeFeed serves the USGS GeoJSON feed as-is. No reshaping happens here;
// the FeatureCollection goes to the client untouched.
type IQuakeFeed interface {
	GetEarthquakes() (json.RawMessage, error)
}

type quakeFeed struct {
	logger    shared.ILogger
	userAgent shared.IUserAgent
	metrics   IMetrics
	feedUrl   string
}

func NewQuakeFeed(
	logger shared.ILogger,
	userAgent shared.IUserAgent,
	metrics IMetrics,
) IQuakeFeed {
	return &quakeFeed{
		logger:    logger,
		userAgent: userAgent,
		metrics:   metrics,
		feedUrl:   quakeFeedUrl,
	}
}

func (qf *quakeFeed) GetEarthquakes() (json.RawMessage, error) {

	obs := qf.metrics.StartFeedFetch("earthquakes")
	defer obs.Finish()

	body, err := fetchBody(qf.userAgent, qf.feedUrl, quakeTimeoutSec*time.Second)
	if err == nil && !json.Valid(body) {
		err = fmt.Errorf("upstream returned malformed JSON")
	}
	if err != nil {
		qf.logger.Warnf("Failed to fetch earthquake feed: %v", err)
		qf.metrics.FeedFetched("earthquakes", "failed")
		return nil, err
	}

	qf.metrics.FeedFetched("earthquakes", "ok")
	return json.RawMessage(body), nil
}
