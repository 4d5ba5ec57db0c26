package drs

import (
	"fmt"
	"strconv"
	"strings"
)

// DrsObject is the success shape of GET /objects/{object_id}.
type DrsObject struct {
	ID            string         `json:"id"`
	Name          string         `json:"name,omitempty"`
	SelfURI       string         `json:"self_uri"`
	Size          int64          `json:"size"`
	CreatedTime   string         `json:"created_time"`
	UpdatedTime   string         `json:"updated_time"`
	Version       string         `json:"version"`
	MimeType      string         `json:"mime_type"`
	Description   string         `json:"description,omitempty"`
	Aliases       []string       `json:"aliases,omitempty"`
	Checksums     []Checksum     `json:"checksums"`
	Contents      []Content      `json:"contents,omitempty"`
	AccessMethods []AccessMethod `json:"access_methods"`
}

// PostDrsObject is the request shape of POST /objects, as defined by
// DRS-filer. It is DrsObject without the server-assigned id and self_uri.
type PostDrsObject struct {
	Name          string         `json:"name,omitempty"`
	Size          int64          `json:"size"`
	CreatedTime   string         `json:"created_time"`
	UpdatedTime   string         `json:"updated_time"`
	Version       string         `json:"version"`
	MimeType      string         `json:"mime_type"`
	Description   string         `json:"description,omitempty"`
	Aliases       []string       `json:"aliases,omitempty"`
	Checksums     []Checksum     `json:"checksums"`
	Contents      []Content      `json:"contents,omitempty"`
	AccessMethods []AccessMethod `json:"access_methods"`
}

// Checksum ...
type Checksum struct {
	Checksum string `json:"checksum"`
	Type     string `json:"type"`
}

// Content ...
type Content struct {
	ID       string    `json:"id,omitempty"`
	Name     string    `json:"name"`
	DRSURI   []string  `json:"drs_uri,omitempty"`
	Contents []Content `json:"contents,omitempty"`
}

// AccessMethod ...
type AccessMethod struct {
	Type           string      `json:"type"` // s3 gs ftp gsiftp globus htsget https file
	AccessURL      AccessURL   `json:"access_url"`
	Region         string      `json:"region,omitempty"`
	AccessID       string      `json:"access_id,omitempty"`
	Authorizations interface{} `json:"authorizations,omitempty"`
}

// AccessURL is the success shape of GET /objects/{object_id}/access/{access_id}.
type AccessURL struct {
	URL     string   `json:"url"`
	Headers []string `json:"headers,omitempty"`
}

// Error is the error shape returned by a DRS instance for non-2xx responses.
type Error struct {
	Msg        string     `json:"msg"`
	StatusCode StatusCode `json:"status_code"`
}

// StatusCode tolerates implementations that quote the numeric status_code
// field (e.g. "status_code": "404").
type StatusCode int

func (s *StatusCode) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if raw == "null" || raw == "" {
		*s = 0
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("status_code %q is not numeric", raw)
	}
	*s = StatusCode(n)
	return nil
}

func (s StatusCode) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(s))), nil
}
