package retry

import (
	"context"
	"errors"
	"io"
	"net"
	"syscall"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/GBA-BI/drs-client/pkg/log"
)

// Download retries fn on transient network failures while fetching object
// bytes. DRS API calls are never routed through here.
func Download(ctx context.Context, logger log.Logger, attempts uint, fn func() error) error {
	if attempts <= 1 {
		return fn()
	}
	return retry.Do(fn,
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.RetryIf(isTransient),
		retry.OnRetry(func(n uint, err error) {
			logger.Warnf("retry %d times with err %v", n, err)
		}),
		retry.DelayType(retry.CombineDelay(retry.BackOffDelay, retry.RandomDelay)),
		retry.Delay(time.Second),
		retry.MaxDelay(time.Minute),
		retry.MaxJitter(time.Second*5),
		retry.LastErrorOnly(true),
	)
}

func isTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
