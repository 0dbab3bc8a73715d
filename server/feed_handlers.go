package server

import (
	"disaster_board/dto"
	"disaster_board/logic"
	"disaster_board/shared"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
)

// One fixed, human-readable error string per route. DNS failure, timeout,
// non-2xx and parse failure all collapse into it; the cause goes to the log.
const (
	msgQuakesFailed  = "Failed to fetch earthquakes"
	msgTsunamiFailed = "Failed to fetch tsunami feed"
	msgVolcanoFailed = "Failed to fetch volcano info"
	msgFloodsFailed  = "Failed to fetch flood reports"
)

type feedApiHandlerGroup struct {
	logger    shared.ILogger
	clock     clockwork.Clock
	quakes    logic.IQuakeFeed
	tsunami   logic.ITsunamiFeed
	volcanoes logic.IVolcanoFeed
	floods    logic.IFloodFeed
}

func NewFeedApiHandlerGroup(
	logger shared.ILogger,
	clock clockwork.Clock,
	quakes logic.IQuakeFeed,
	tsunami logic.ITsunamiFeed,
	volcanoes logic.IVolcanoFeed,
	floods logic.IFloodFeed,
) IHandlerGroup {
	res := feedApiHandlerGroup{
		logger:    logger,
		clock:     clock,
		quakes:    quakes,
		tsunami:   tsunami,
		volcanoes: volcanoes,
		floods:    floods,
	}
	return &res
}

func (hg *feedApiHandlerGroup) Prefix() string {
	return "/api"
}

func (hg *feedApiHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/earthquakes", func(w http.ResponseWriter, r *http.Request) { hg.getEarthquakes(w, r) }},
		{"GET", "/tsunami", func(w http.ResponseWriter, r *http.Request) { hg.getTsunami(w, r) }},
		{"GET", "/volcanoes", func(w http.ResponseWriter, r *http.Request) { hg.getVolcanoes(w, r) }},
		{"GET", "/floods", func(w http.ResponseWriter, r *http.Request) { hg.getFloods(w, r) }},
		{"GET", "/ping", func(w http.ResponseWriter, r *http.Request) { hg.getPing(w, r) }},
	}
}

// Feed routes are public; no auth on this group.
func (hg *feedApiHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return emptyMW
}

func (hg *feedApiHandlerGroup) getEarthquakes(w http.ResponseWriter, r *http.Request) {
	data, err := hg.quakes.GetEarthquakes()
	if err != nil {
		writeFeedFailure(w, msgQuakesFailed)
		return
	}
	writeJsonResponse(hg.logger, w, dto.Envelope{Ok: true, Source: "usgs", Data: data})
}

func (hg *feedApiHandlerGroup) getTsunami(w http.ResponseWriter, r *http.Request) {
	entries, err := hg.tsunami.GetEntries()
	if err != nil {
		writeFeedFailure(w, msgTsunamiFailed)
		return
	}
	writeJsonResponse(hg.logger, w, dto.Envelope{Ok: true, Source: "tsunami.gov", Data: entries})
}

func (hg *feedApiHandlerGroup) getVolcanoes(w http.ResponseWriter, r *http.Request) {
	entries, err := hg.volcanoes.GetVolcanoes()
	if err != nil {
		writeFeedFailure(w, msgVolcanoFailed)
		return
	}
	writeJsonResponse(hg.logger, w, dto.Envelope{Ok: true, Source: "gvp", Data: entries})
}

func (hg *feedApiHandlerGroup) getFloods(w http.ResponseWriter, r *http.Request) {
	data, err := hg.floods.GetReports()
	if err != nil {
		writeFeedFailure(w, msgFloodsFailed)
		return
	}
	writeJsonResponse(hg.logger, w, dto.Envelope{Ok: true, Source: "reliefweb", Data: data})
}

func (hg *feedApiHandlerGroup) getPing(w http.ResponseWriter, r *http.Request) {
	resp := dto.PingResp{
		Ok:   true,
		Time: hg.clock.Now().UTC().Format(time.RFC3339),
	}
	writeJsonResponse(hg.logger, w, resp)
}
