package path

import (
	"net/url"
	"os"
	"strings"
)

// ParseURL splits a bucket-style URL (e.g. s3://bucket/key) into host and
// path without the leading slash.
func ParseURL(rawURL string) (string, string, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return "", "", err
	}
	host := parsedURL.Host
	prefix := strings.TrimPrefix(parsedURL.Path, "/")
	return host, prefix, nil
}

func FileExists(filename string) (bool, error) {
	_, err := os.Stat(filename)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
