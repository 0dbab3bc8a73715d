package shared

import (
	"fmt"
	"net/http"
	"os"
	"strings"
)

const (
	versionFileName   = "www/version.txt"
	userAgentTemplate = "Disaster-Board/%s (disaster dashboard; respectful fetcher)"
)

// IUserAgent stamps outbound upstream requests with an identifying agent
// string. GVP and ReliefWeb both ask automated clients to identify themselves.
type IUserAgent interface {
	AddUserAgent(req *http.Request)
}

type userAgent struct {
	userAgentValue string
}

func NewUserAgent() IUserAgent {
	return &userAgent{
		userAgentValue: buildUserAgentString(),
	}
}

func buildUserAgentString() string {
	versionBytes, _ := os.ReadFile(versionFileName)
	versionStr := strings.TrimSpace(string(versionBytes))
	versionStr = strings.TrimPrefix(versionStr, "v")
	if versionStr == "" {
		versionStr = "0.0.0"
	}
	return fmt.Sprintf(userAgentTemplate, versionStr)
}

func (ua *userAgent) AddUserAgent(req *http.Request) {
	req.Header.Add("User-Agent", ua.userAgentValue)
}
