package lib

import (
	"net/url"
	"strings"
)

// NormalizeDomain reduces user supplied input to a bare lowercase domain.
// Values pasted with a scheme, path, query or trailing slash are accepted.
func NormalizeDomain(input string) string {
	domain := strings.ToLower(strings.TrimSpace(input))
	if strings.Contains(domain, "://") {
		if parsed, err := url.Parse(domain); err == nil && parsed.Host != "" {
			return parsed.Host
		}
	}
	if idx := strings.IndexAny(domain, "/?#"); idx >= 0 {
		domain = domain[:idx]
	}
	return domain
}
