package server

import (
	"disaster_board/dto"
	"disaster_board/test/mocks"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var testClockTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type feedHarness struct {
	mockLogger    *mocks.MockILogger
	mockQuakes    *mocks.MockIQuakeFeed
	mockTsunami   *mocks.MockITsunamiFeed
	mockVolcanoes *mocks.MockIVolcanoFeed
	mockFloods    *mocks.MockIFloodFeed
}

func stubLogger(mockLogger *mocks.MockILogger) {
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Printf(gomock.Any(), gomock.Any()).AnyTimes()
}

func setupFeedHandlerTest(t *testing.T) (*gomock.Controller, *feedHarness, *mux.Router) {

	ctrl := gomock.NewController(t)

	h := &feedHarness{
		mockLogger:    mocks.NewMockILogger(ctrl),
		mockQuakes:    mocks.NewMockIQuakeFeed(ctrl),
		mockTsunami:   mocks.NewMockITsunamiFeed(ctrl),
		mockVolcanoes: mocks.NewMockIVolcanoFeed(ctrl),
		mockFloods:    mocks.NewMockIFloodFeed(ctrl),
	}
	stubLogger(h.mockLogger)

	group := NewFeedApiHandlerGroup(h.mockLogger, clockwork.NewFakeClockAt(testClockTime),
		h.mockQuakes, h.mockTsunami, h.mockVolcanoes, h.mockFloods)
	router := NewMux([]IHandlerGroup{group}, h.mockLogger)

	return ctrl, h, router
}

func getJson(t *testing.T, router *mux.Router, path string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	var body map[string]any
	err := json.Unmarshal(rr.Body.Bytes(), &body)
	assert.NoError(t, err)
	return rr.Code, body
}

func TestGetEarthquakes_Success(t *testing.T) {
	ctrl, h, router := setupFeedHandlerTest(t)
	defer ctrl.Finish()

	raw := json.RawMessage(`{"type":"FeatureCollection","features":[]}`)
	h.mockQuakes.EXPECT().GetEarthquakes().Return(raw, nil)

	code, body := getJson(t, router, "/api/earthquakes")

	assert.Equal(t, 200, code)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "usgs", body["source"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "FeatureCollection", data["type"])
	assert.NotContains(t, body, "error")
}

func TestGetEarthquakes_Failure(t *testing.T) {
	ctrl, h, router := setupFeedHandlerTest(t)
	defer ctrl.Finish()

	h.mockQuakes.EXPECT().GetEarthquakes().Return(nil, errors.New("dial tcp: timeout"))

	code, body := getJson(t, router, "/api/earthquakes")

	assert.Equal(t, 500, code)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "Failed to fetch earthquakes", body["error"])
	assert.NotContains(t, body, "data")
	assert.NotContains(t, body, "source")
}

func TestGetTsunami_Success(t *testing.T) {
	ctrl, h, router := setupFeedHandlerTest(t)
	defer ctrl.Finish()

	entries := []dto.TsunamiEntry{{
		Id:      "urn:event:1",
		Title:   "Tsunami Advisory",
		Updated: testClockTime,
		Summary: "An advisory is in effect.",
		Link:    "https://www.tsunami.gov/events/1",
	}}
	h.mockTsunami.EXPECT().GetEntries().Return(entries, nil)

	code, body := getJson(t, router, "/api/tsunami")

	assert.Equal(t, 200, code)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "tsunami.gov", body["source"])
	data := body["data"].([]any)
	assert.Len(t, data, 1)
	first := data[0].(map[string]any)
	assert.Equal(t, "Tsunami Advisory", first["title"])
}

func TestGetTsunami_EmptyList(t *testing.T) {
	ctrl, h, router := setupFeedHandlerTest(t)
	defer ctrl.Finish()

	h.mockTsunami.EXPECT().GetEntries().Return([]dto.TsunamiEntry{}, nil)

	code, body := getJson(t, router, "/api/tsunami")

	assert.Equal(t, 200, code)
	assert.Equal(t, true, body["ok"])
	data := body["data"].([]any)
	assert.Len(t, data, 0)
}

func TestGetTsunami_Failure(t *testing.T) {
	ctrl, h, router := setupFeedHandlerTest(t)
	defer ctrl.Finish()

	h.mockTsunami.EXPECT().GetEntries().Return(nil, errors.New("no such host"))

	code, body := getJson(t, router, "/api/tsunami")

	assert.Equal(t, 500, code)
	assert.Equal(t, "Failed to fetch tsunami feed", body["error"])
}

func TestGetVolcanoes_Success(t *testing.T) {
	ctrl, h, router := setupFeedHandlerTest(t)
	defer ctrl.Finish()

	entries := []dto.VolcanoEntry{
		{Name: "Etna", Status: "erupting"},
		{Name: "Merapi", Status: ""},
	}
	h.mockVolcanoes.EXPECT().GetVolcanoes().Return(entries, nil)

	code, body := getJson(t, router, "/api/volcanoes")

	assert.Equal(t, 200, code)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "gvp", body["source"])
	data := body["data"].([]any)
	assert.Len(t, data, 2)
}

func TestGetVolcanoes_Failure(t *testing.T) {
	ctrl, h, router := setupFeedHandlerTest(t)
	defer ctrl.Finish()

	h.mockVolcanoes.EXPECT().GetVolcanoes().Return(nil, errors.New("status 502"))

	code, body := getJson(t, router, "/api/volcanoes")

	assert.Equal(t, 500, code)
	assert.Equal(t, "Failed to fetch volcano info", body["error"])
}

func TestGetFloods_Success(t *testing.T) {
	ctrl, h, router := setupFeedHandlerTest(t)
	defer ctrl.Finish()

	raw := json.RawMessage(`{"totalCount":2,"data":[{"fields":{"title":"Flooding"}}]}`)
	h.mockFloods.EXPECT().GetReports().Return(raw, nil)

	code, body := getJson(t, router, "/api/floods")

	assert.Equal(t, 200, code)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "reliefweb", body["source"])
	data := body["data"].(map[string]any)
	assert.Len(t, data["data"].([]any), 1)
}

func TestGetFloods_Failure(t *testing.T) {
	ctrl, h, router := setupFeedHandlerTest(t)
	defer ctrl.Finish()

	h.mockFloods.EXPECT().GetReports().Return(nil, errors.New("429"))

	code, body := getJson(t, router, "/api/floods")

	assert.Equal(t, 500, code)
	assert.Equal(t, "Failed to fetch flood reports", body["error"])
}

func TestGetPing_UsesInjectedClock(t *testing.T) {
	ctrl, _, router := setupFeedHandlerTest(t)
	defer ctrl.Finish()

	code, body := getJson(t, router, "/api/ping")

	assert.Equal(t, 200, code)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "2026-03-01T12:00:00Z", body["time"])
}

// Every feed failing must leave every other route answering; no route shares
// fate with another.
func TestAllFeedsFailing_RoutesStayIndependent(t *testing.T) {
	ctrl, h, router := setupFeedHandlerTest(t)
	defer ctrl.Finish()

	h.mockQuakes.EXPECT().GetEarthquakes().Return(nil, errors.New("down"))
	h.mockTsunami.EXPECT().GetEntries().Return(nil, errors.New("down"))
	h.mockVolcanoes.EXPECT().GetVolcanoes().Return(nil, errors.New("down"))
	h.mockFloods.EXPECT().GetReports().Return(nil, errors.New("down"))

	expected := map[string]string{
		"/api/earthquakes": "Failed to fetch earthquakes",
		"/api/tsunami":     "Failed to fetch tsunami feed",
		"/api/volcanoes":   "Failed to fetch volcano info",
		"/api/floods":      "Failed to fetch flood reports",
	}
	for path, msg := range expected {
		code, body := getJson(t, router, path)
		assert.Equal(t, 500, code, path)
		assert.Equal(t, false, body["ok"], path)
		assert.Equal(t, msg, body["error"], path)
	}

	// And ping still answers
	code, body := getJson(t, router, "/api/ping")
	assert.Equal(t, 200, code)
	assert.Equal(t, true, body["ok"])
}
