package s3

import (
	"context"
	"io"
	"net/http"

	"golang.org/x/time/rate"
)

type rateLimitingTransport struct {
	limiter   *rate.Limiter
	transport http.RoundTripper
}

func (t *rateLimitingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.transport.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	resp.Body = &readLimiter{
		reader:  resp.Body,
		limiter: t.limiter,
	}

	return resp, nil
}

type readLimiter struct {
	reader  io.ReadCloser
	limiter *rate.Limiter
}

func (r *readLimiter) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	if err != nil {
		return n, err
	}

	if err := r.limiter.WaitN(context.TODO(), n); err != nil {
		return 0, err
	}

	return n, nil
}

func (r *readLimiter) Close() error {
	return r.reader.Close()
}
