package logic

import (
	"disaster_board/shared"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const reliefWebBody = `{"totalCount":123,"data":[` +
	`{"fields":{"title":"Flooding in region A","url":["https://reliefweb.int/report/a"]}},` +
	`{"fields":{"title":"Flooding in region B"}}]}`

func testFloodCfg() *shared.Config {
	return &shared.Config{
		ReliefWebAppName: "disaster-board-test",
		FloodResultLimit: 6,
	}
}

func newTestFloodFeed(cfg *shared.Config, url string) *floodFeed {
	ff := NewFloodFeed(cfg, nopLogger{}, shared.NewUserAgent(), nopMetrics{}).(*floodFeed)
	ff.searchUrl = url
	return ff
}

func TestFloods_QueryAndPassThrough(t *testing.T) {
	var gotQuery map[string][]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(reliefWebBody))
	}))
	defer ts.Close()

	ff := newTestFloodFeed(testFloodCfg(), ts.URL)
	data, err := ff.GetReports()

	assert.NoError(t, err)
	assert.JSONEq(t, reliefWebBody, string(data))

	assert.Equal(t, []string{"disaster-board-test"}, gotQuery["appname"])
	assert.Equal(t, []string{"flood"}, gotQuery["query[value]"])
	assert.Equal(t, []string{"OR"}, gotQuery["query[operator]"])
	assert.Equal(t, []string{"6"}, gotQuery["limit"])
	assert.Equal(t, []string{"date:desc"}, gotQuery["sort[]"])
}

func TestFloods_UpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer ts.Close()

	ff := newTestFloodFeed(testFloodCfg(), ts.URL)
	_, err := ff.GetReports()

	assert.Error(t, err)
}

func TestFloods_MalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<!DOCTYPE html><html>maintenance page</html>"))
	}))
	defer ts.Close()

	ff := newTestFloodFeed(testFloodCfg(), ts.URL)
	_, err := ff.GetReports()

	assert.Error(t, err)
}
