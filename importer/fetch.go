package importer

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/fwojciec/docsite"
	"golang.org/x/time/rate"
)

// fetch retrieves u, waiting for the host's turn first. Transient
// failures are retried with a doubling delay.
func (im *Importer) fetch(ctx context.Context, u *url.URL) (string, error) {
	retries := im.Retries
	if retries == 0 {
		retries = DefaultRetries
	}
	delay := im.RetryDelay
	if delay <= 0 {
		delay = DefaultRetryDelay
	}

	for attempt := 0; ; attempt++ {
		if err := im.waitHost(ctx, u.Host); err != nil {
			return "", err
		}

		html, err := im.Fetcher.Fetch(ctx, u.String())
		if err == nil {
			return html, nil
		}
		if attempt >= retries || !transient(err) {
			return "", fmt.Errorf("fetch %s: %w", u, err)
		}

		im.logger().Warn("retrying page", "url", u.String(), "attempt", attempt+2, "err", err)
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delay << attempt):
		}
	}
}

// transient reports whether a failed fetch may succeed when repeated.
// Missing pages and rejected requests are final.
func transient(err error) bool {
	switch docsite.ErrorCode(err) {
	case docsite.ENOTFOUND, docsite.EINVALID:
		return false
	}
	return true
}

// waitHost blocks until a request to host respects HostInterval.
func (im *Importer) waitHost(ctx context.Context, host string) error {
	if im.HostInterval <= 0 {
		return ctx.Err()
	}

	im.mu.Lock()
	if im.hosts == nil {
		im.hosts = make(map[string]*rate.Limiter)
	}
	l, ok := im.hosts[host]
	if !ok {
		l = rate.NewLimiter(rate.Every(im.HostInterval), 1)
		im.hosts[host] = l
	}
	im.mu.Unlock()

	return l.Wait(ctx)
}
