package logic

import (
	"bytes"
	"disaster_board/dto"
	"disaster_board/shared"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
	"github.com/spaolacci/murmur3"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_tsunami.go -package mocks disaster_board/logic ITsunamiFeed

const tsunamiFeedUrl = "https://www.tsunami.gov/events/xml/PAAQAtom.xml"

const tsunamiTimeoutSec = 10

// ITsunamiFeed turns the tsunami.gov ATOM feed into a flat list of entries.
// Zero, one or many entry elements all come out as a list; the scalar-vs-list
// ambiguity of the XML is resolved here and nowhere else.
type ITsunamiFeed interface {
	GetEntries() ([]dto.TsunamiEntry, error)
}

type tsunamiFeed struct {
	logger    shared.ILogger
	userAgent shared.IUserAgent
	metrics   IMetrics
	feedUrl   string
}

func NewTsunamiFeed(
	logger shared.ILogger,
	userAgent shared.IUserAgent,
	metrics IMetrics,
) ITsunamiFeed {
	return &tsunamiFeed{
		logger:    logger,
		userAgent: userAgent,
		metrics:   metrics,
		feedUrl:   tsunamiFeedUrl,
	}
}

func (tf *tsunamiFeed) GetEntries() ([]dto.TsunamiEntry, error) {

	obs := tf.metrics.StartFeedFetch("tsunami")
	defer obs.Finish()

	body, err := fetchBody(tf.userAgent, tf.feedUrl, tsunamiTimeoutSec*time.Second)
	if err != nil {
		tf.logger.Warnf("Failed to fetch tsunami feed: %v", err)
		tf.metrics.FeedFetched("tsunami", "failed")
		return nil, err
	}

	fp := gofeed.NewParser()
	feed, err := fp.Parse(bytes.NewReader(body))
	if err != nil {
		tf.logger.Warnf("Failed to parse tsunami feed: %v", err)
		tf.metrics.FeedFetched("tsunami", "failed")
		return nil, err
	}

	// Not nil: an empty feed is a valid, empty list
	entries := make([]dto.TsunamiEntry, 0, len(feed.Items))
	for _, itm := range feed.Items {
		entries = append(entries, normalizeEntry(itm))
	}

	tf.metrics.FeedFetched("tsunami", "ok")
	return entries, nil
}

func normalizeEntry(itm *gofeed.Item) dto.TsunamiEntry {

	// A summary element may carry its text as an attributed/mixed node; the
	// parser hands us the inner text, possibly with markup still in it.
	// Bulletins run long; the full text goes through uncut.
	summary := stripHtml(itm.Description)

	var updated time.Time
	if itm.UpdatedParsed != nil {
		updated = *itm.UpdatedParsed
	} else if itm.PublishedParsed != nil {
		updated = *itm.PublishedParsed
	}

	// A link field may be a single element or a sequence; always the first
	link := itm.Link
	if len(itm.Links) > 0 {
		link = itm.Links[0]
	}

	id := itm.GUID
	if id == "" {
		id = fmt.Sprintf("urn:entry:%d", getEntryHash(itm))
	}

	return dto.TsunamiEntry{
		Id:      id,
		Title:   stripHtml(itm.Title),
		Updated: updated,
		Summary: summary,
		Link:    link,
	}
}

// Deterministic surrogate id for entries the upstream publishes without one.
func getEntryHash(itm *gofeed.Item) uint {
	str := itm.Title + "\t" + itm.Link
	hasher := murmur3.New32()
	_, _ = hasher.Write([]byte(str))
	return uint(hasher.Sum32())
}

func stripHtml(htm string) string {
	p := bluemonday.StrictPolicy()
	plain := p.Sanitize(htm)
	plain = html.UnescapeString(plain)
	plain = strings.TrimSpace(plain)
	return plain
}
