package drs

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/GBA-BI/drs-client/pkg/consts"
)

// RFC-1035-like label syntax: 1-63 chars, alphanumeric with interior hyphens.
const (
	reDomainPart = `[a-z0-9]([a-z0-9-]{1,61}[a-z0-9])?`
	reDomain     = `(` + reDomainPart + `\.)+` + reDomainPart + `\.?`
)

var reHost = regexp.MustCompile(`(?i)^(?P<schema>drs|http|https)://(?P<host>` + reDomain + `)/?`)

// Endpoint describes where a DRS instance serves its API.
type Endpoint struct {
	Scheme   string
	Host     string
	Port     int
	BasePath string
}

// URL composes the base URL of the DRS API, e.g.
// "https://my-drs.app:443/ga4gh/drs/v1".
func (e *Endpoint) URL() string {
	return fmt.Sprintf("%s://%s:%d/%s", e.Scheme, e.Host, e.Port, e.BasePath)
}

// ResolveEndpoint builds an Endpoint from a base URI in drs, http or https
// schema. Anything after a slash following the host is ignored, so a
// hostname-based DRS URI to a given object works as well. A drs schema maps
// to https, or to http when insecure is set. A zero port picks the schema
// default (443/80).
func ResolveEndpoint(uri string, port int, basePath string, insecure bool) (*Endpoint, error) {
	match := reHost.FindStringSubmatch(uri)
	if match == nil {
		return nil, fmt.Errorf("%w: %q does not match a DRS, HTTP or HTTPS host", ErrInvalidURI, uri)
	}
	scheme := strings.ToLower(match[reHost.SubexpIndex("schema")])
	host := match[reHost.SubexpIndex("host")]
	if len(host) > consts.MaxHostLength {
		return nil, fmt.Errorf("%w: host exceeds %d characters", ErrInvalidURI, consts.MaxHostLength)
	}
	if scheme == consts.SchemeDRS {
		scheme = consts.SchemeHTTPS
		if insecure {
			scheme = consts.SchemeHTTP
		}
	}
	if port == 0 {
		port = consts.DefaultHTTPSPort
		if scheme == consts.SchemeHTTP {
			port = consts.DefaultHTTPPort
		}
	}
	if basePath == "" {
		basePath = consts.DefaultBasePath
	}
	return &Endpoint{
		Scheme:   scheme,
		Host:     host,
		Port:     port,
		BasePath: strings.Trim(basePath, "/"),
	}, nil
}
