package drs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/GBA-BI/drs-client/pkg/log"
)

// Client talks to one GA4GH DRS instance. It also supports the registration
// and deletion endpoints defined in DRS-filer
// (https://github.com/elixir-cloud-aai/drs-filer).
//
// A non-empty per-call token replaces the stored token for the rest of the
// client's lifetime (last writer wins). Callers issuing concurrent requests
// against one client should serialize calls or avoid per-call overrides.
type Client struct {
	endpoint *Endpoint
	token    string
	headers  map[string]string

	client *http.Client
	logger log.Logger
}

// New resolves cfg.URI into an endpoint and builds a client for it. An
// unparseable URI is fatal, no partial client is returned.
func New(cfg *Config, logger log.Logger) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config of drs client")
	}
	endpoint, err := ResolveEndpoint(cfg.URI, cfg.Port, cfg.BasePath, cfg.Insecure)
	if err != nil {
		return nil, err
	}
	c := &Client{
		endpoint: endpoint,
		token:    cfg.Token,
		client:   &http.Client{},
		logger:   logger,
	}
	c.headers = c.buildHeaders()
	c.logger.Infof("instantiated client for: %s", endpoint.URL())
	return c, nil
}

// Endpoint returns the resolved endpoint of the DRS instance.
func (c *Client) Endpoint() *Endpoint {
	return c.endpoint
}

// GetObject retrieves a DRS object. objectID may be a bare identifier or a
// hostname-based DRS URI; only the identifier part of a URI is evaluated.
func (c *Client) GetObject(ctx context.Context, objectID, token string) (*DrsObject, error) {
	objID, err := ResolveObjectID(objectID)
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/objects/%s", c.endpoint.URL(), objID)
	body, err := c.do(ctx, http.MethodGet, url, nil, token)
	if err != nil {
		return nil, err
	}
	var object DrsObject
	if err := json.Unmarshal(body, &object); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if err := object.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	c.logger.Infof("retrieved object: %s", objectID)
	return &object, nil
}

// GetAccessURL retrieves the access URL behind one of a DRS object's access
// methods.
func (c *Client) GetAccessURL(ctx context.Context, objectID, accessID, token string) (*AccessURL, error) {
	objID, err := ResolveObjectID(objectID)
	if err != nil {
		return nil, err
	}
	if accessID == "" {
		return nil, fmt.Errorf("%w: empty access identifier", ErrInvalidURI)
	}
	url := fmt.Sprintf("%s/objects/%s/access/%s", c.endpoint.URL(), objID, quoteAll(accessID))
	body, err := c.do(ctx, http.MethodGet, url, nil, token)
	if err != nil {
		return nil, err
	}
	var accessURL AccessURL
	if err := json.Unmarshal(body, &accessURL); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if err := accessURL.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	c.logger.Infof("retrieved access URL: %s", accessURL.URL)
	return &accessURL, nil
}

// PostObject registers a DRS object and returns its server-assigned
// identifier. The payload is validated locally first; an invalid payload
// fails before any network I/O.
func (c *Client) PostObject(ctx context.Context, object *PostDrsObject, token string) (string, error) {
	if object == nil {
		return "", fmt.Errorf("%w: nil object data", ErrInvalidObjectData)
	}
	if err := object.Validate(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidObjectData, err)
	}
	payload, err := json.Marshal(object)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidObjectData, err)
	}
	url := fmt.Sprintf("%s/objects", c.endpoint.URL())
	body, err := c.do(ctx, http.MethodPost, url, payload, token)
	if err != nil {
		return "", err
	}
	objectID, err := decodeIdentifier(body)
	if err != nil {
		return "", err
	}
	c.logger.Infof("object registered: %s", objectID)
	return objectID, nil
}

// DeleteObject deletes a DRS object and returns the identifier of the
// deleted object.
func (c *Client) DeleteObject(ctx context.Context, objectID, token string) (string, error) {
	objID, err := ResolveObjectID(objectID)
	if err != nil {
		return "", err
	}
	url := fmt.Sprintf("%s/objects/%s", c.endpoint.URL(), objID)
	body, err := c.do(ctx, http.MethodDelete, url, nil, token)
	if err != nil {
		return "", err
	}
	deletedID, err := decodeIdentifier(body)
	if err != nil {
		return "", err
	}
	c.logger.Infof("object deleted: %s", objectID)
	return deletedID, nil
}

// do sends one request and normalizes the outcome: transport failures to
// ErrConnectionFailure, well-formed non-2xx bodies to *APIError, malformed
// bodies to ErrInvalidResponse. A non-empty token replaces the stored one
// before headers are built.
func (c *Client) do(ctx context.Context, method, url string, payload []byte, token string) ([]byte, error) {
	if token != "" {
		c.token = token
		c.headers = c.buildHeaders()
	}
	c.logger.Infof("request URL: %s", url)

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURI, err)
	}
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailure, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiError Error
		if err := json.Unmarshal(body, &apiError); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
		if err := apiError.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
		c.logger.Warnf("received error response: %s", apiError.Msg)
		return nil, &APIError{Msg: apiError.Msg, StatusCode: int(apiError.StatusCode)}
	}
	return body, nil
}

func (c *Client) buildHeaders() map[string]string {
	headers := map[string]string{
		"Content-Type": "application/json",
	}
	if c.token != "" {
		headers["Authorization"] = "Bearer " + c.token
	}
	return headers
}

// decodeIdentifier parses the plain JSON string body that the registration
// and deletion endpoints return.
func decodeIdentifier(body []byte) (string, error) {
	var id string
	if err := json.Unmarshal(body, &id); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return id, nil
}
