package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidEndpoint is returned by RequestURL when the endpoint is not an
// absolute URL.
var ErrInvalidEndpoint = errors.New("invalid network endpoint")

// RequestURL joins the current endpoint with path and appends the encoded
// query parameters. Query values already present on the endpoint are kept
// unless a parameter with the same key overrides them.
//
// It fails only when the endpoint is not an absolute URL.
func (s Settings) RequestURL(path string) (string, error) {
	endpoint := s.CurrentNetwork()

	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrInvalidEndpoint, endpoint, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w %q: scheme and host are required", ErrInvalidEndpoint, endpoint)
	}

	if path = strings.TrimLeft(path, "/"); path != "" {
		u = u.JoinPath(path)
	}

	if params := s.queryParameters.Values(); len(params) > 0 {
		query := u.Query()
		for key, values := range params {
			query[key] = values
		}
		u.RawQuery = query.Encode()
	}

	return u.String(), nil
}
