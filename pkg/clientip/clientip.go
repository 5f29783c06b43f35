package clientip

import (
	"net"
	"net/http"
	"strings"
)

// Headers checked by FromRequest, highest priority first.
const (
	HeaderCFConnectingIP = "CF-Connecting-IP"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderRealIP         = "X-Real-IP"
)

// FromRequest returns the originating client address: CF-Connecting-IP, the
// first valid entry of X-Forwarded-For, X-Real-IP, then RemoteAddr.
// It returns "" when none of them holds a valid IP.
func FromRequest(r *http.Request) string {
	if ip := parseIP(r.Header.Get(HeaderCFConnectingIP)); ip != "" {
		return ip
	}

	for entry := range strings.SplitSeq(r.Header.Get(HeaderForwardedFor), ",") {
		if ip := parseIP(entry); ip != "" {
			return ip
		}
	}

	if ip := parseIP(r.Header.Get(HeaderRealIP)); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// parseIP returns the canonical form of s, or "" if s is not an IP.
func parseIP(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
