package dto

import "time"

// Envelope is the uniform wrapper every feed route responds with.
// Ok=true carries Data and no Error; Ok=false carries Error and no Data.
type Envelope struct {
	Ok     bool   `json:"ok"`
	Source string `json:"source,omitempty"`
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

type PingResp struct {
	Ok   bool   `json:"ok"`
	Time string `json:"time"`
}

type TsunamiEntry struct {
	Id      string    `json:"id"`
	Title   string    `json:"title"`
	Updated time.Time `json:"updated"`
	Summary string    `json:"summary"`
	Link    string    `json:"link"`
}

// Status is empty when the page gave us a name but nothing to go with it.
type VolcanoEntry struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}
