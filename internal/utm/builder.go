package utm

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/vadimbarashkov/utmka/internal/entity"
)

const defaultScheme = "https://"

// Encode serializes the non-empty parameters in the order
// utm_source, utm_medium, utm_campaign, utm_term, utm_content.
func (p Params) Encode() string {
	pairs := []struct{ key, value string }{
		{"utm_source", p.Source},
		{"utm_medium", p.Medium},
		{"utm_campaign", p.Campaign},
		{"utm_term", p.Term},
		{"utm_content", p.Content},
	}

	var b strings.Builder
	for _, kv := range pairs {
		if kv.value == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.value))
	}

	return b.String()
}

func withScheme(raw string) string {
	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return raw
	}
	return defaultScheme + raw
}

// BuildLink normalizes baseURL and replaces its query with the UTM parameters.
// It fails with entity.ErrInvalidURL when the result is not an absolute URL.
func BuildLink(baseURL string, p Params) (string, error) {
	const op = "utm.BuildLink"

	u, err := url.Parse(withScheme(strings.TrimSpace(baseURL)))
	if err != nil {
		return "", fmt.Errorf("%s: %w: %v", op, entity.ErrInvalidURL, err)
	}

	if u.Host == "" || u.Opaque != "" {
		return "", fmt.Errorf("%s: %w: missing host", op, entity.ErrInvalidURL)
	}

	u.Host = strings.ToLower(u.Host)
	if u.Path == "" {
		u.Path = "/"
	}
	u.RawQuery = p.Encode()
	u.ForceQuery = false

	return u.String(), nil
}
