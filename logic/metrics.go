package logic

import (
	"github.com/prometheus/client_golang/prometheus"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_metrics.go -package mocks disaster_board/logic IMetrics,IFetchObserver

type IMetrics interface {
	ServiceStarted()
	StartFeedFetch(feed string) IFetchObserver
	FeedFetched(feed, outcome string)
}

type IFetchObserver interface {
	Finish()
}

type metrics struct {
	feedFetchDuration *prometheus.HistogramVec
	feedsFetched      *prometheus.CounterVec
	serviceStarted    prometheus.Counter
}

func NewMetrics() IMetrics {

	res := metrics{}

	res.feedFetchDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "feed_fetch_duration",
		Help: "Duration in seconds of upstream feed fetches.",
	}, []string{"feed"})
	prometheus.Register(res.feedFetchDuration)

	res.feedsFetched = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "feeds_fetched",
		Help: "Number of upstream feed fetches by outcome",
	}, []string{"feed", "outcome"})
	prometheus.Register(res.feedsFetched)

	res.serviceStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "service_started",
		Help: "Service has started up",
	})
	prometheus.Register(res.serviceStarted)

	return &res
}

type fetchObserver struct {
	feed  string
	start time.Time
	hgvec *prometheus.HistogramVec
}

func (fo *fetchObserver) Finish() {
	now := time.Now()
	elapsed := float64(now.UnixMilli()-fo.start.UnixMilli()) / 1000.0
	fo.hgvec.WithLabelValues(fo.feed).Observe(elapsed)
}

func (m *metrics) StartFeedFetch(feed string) IFetchObserver {
	return &fetchObserver{feed, time.Now(), m.feedFetchDuration}
}

func (m *metrics) FeedFetched(feed, outcome string) {
	m.feedsFetched.WithLabelValues(feed, outcome).Add(1)
}

func (m *metrics) ServiceStarted() {
	m.serviceStarted.Add(1)
}
