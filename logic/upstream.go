package logic

import (
	"disaster_board/shared"
	"fmt"
	"io"
	"net/http"
	"time"
)

// fetchBody GETs an upstream resource and returns the raw body. A slow
// upstream, a transport error and a non-200 status are all just errors; the
// caller does not get to tell them apart, and nothing is retried.
func fetchBody(userAgent shared.IUserAgent, urlStr string, timeout time.Duration) ([]byte, error) {

	var req *http.Request
	var err error
	if req, err = http.NewRequest("GET", urlStr, nil); err != nil {
		return nil, err
	}
	userAgent.AddUserAgent(req)

	client := http.Client{}
	client.Timeout = timeout
	var resp *http.Response
	if resp, err = client.Do(req); err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request for %s failed with status %v", urlStr, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
