package logic

import (
	"disaster_board/shared"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const geoJsonBody = `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{"mag":5.2,"place":"somewhere"},"geometry":{"type":"Point","coordinates":[142.1,38.3,10.0]}}]}`

func newTestQuakeFeed(url string) *quakeFeed {
	return &quakeFeed{
		logger:    nopLogger{},
		userAgent: shared.NewUserAgent(),
		metrics:   nopMetrics{},
		feedUrl:   url,
	}
}

func TestQuakes_PassThrough(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(geoJsonBody))
	}))
	defer ts.Close()

	qf := newTestQuakeFeed(ts.URL)
	data, err := qf.GetEarthquakes()

	assert.NoError(t, err)
	assert.JSONEq(t, geoJsonBody, string(data))
}

func TestQuakes_UpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	qf := newTestQuakeFeed(ts.URL)
	_, err := qf.GetEarthquakes()

	assert.Error(t, err)
}

func TestQuakes_MalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>this is not geojson</html>"))
	}))
	defer ts.Close()

	qf := newTestQuakeFeed(ts.URL)
	_, err := qf.GetEarthquakes()

	assert.Error(t, err)
}

func TestQuakes_Unreachable(t *testing.T) {
	qf := newTestQuakeFeed("http://127.0.0.1:1/nope")
	_, err := qf.GetEarthquakes()
	assert.Error(t, err)
}
