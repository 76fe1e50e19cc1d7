/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package metrics

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/humaidq/ehrkit/logging"
)

// Fetch defaults matching the backend's development setup.
const (
	DefaultURL     = "http://localhost:3001/api/metrics"
	DefaultTimeout = 5 * time.Second

	maxDocumentBytes = 8 << 20
)

// Source records where a document came from.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
	// SourceStub marks the document served by the development stub server.
	SourceStub Source = "stub"
)

var logger = logging.Logger(logging.SourceReport)

// Fetcher reads a metrics document over HTTP.
type Fetcher struct {
	URL     string
	Timeout time.Duration
	// Retries is the number of extra attempts after the first one.
	Retries int
}

// Fetch returns the live document, or the fallback document if the request
// fails in any way. It never returns an error.
func (f Fetcher) Fetch(ctx context.Context) (Document, Source) {
	doc, err := f.fetch(ctx)
	if err != nil {
		logger.Warn("failed to fetch metrics, using sample payload", "url", f.URL, "error", err)
		return Fallback(), SourceFallback
	}

	logger.Info("fetched metrics", "url", f.URL)
	return doc, SourceLive
}

func (f Fetcher) client() *retryablehttp.Client {
	timeout := f.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	retries := f.Retries
	if retries < 0 {
		retries = 0
	}

	c := retryablehttp.NewClient()
	c.RetryMax = retries
	c.RetryWaitMin = 250 * time.Millisecond
	c.RetryWaitMax = 2 * time.Second
	c.HTTPClient.Timeout = timeout
	c.Logger = logging.NewLeveledLogger(logging.SourceReport)
	c.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return c
}

func (f Fetcher) fetch(ctx context.Context) (Document, error) {
	if f.URL == "" {
		return nil, errEmptyURL
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client().Do(req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", errUnexpectedState, resp.Status)
	}

	doc, err := Decode(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return nil, err
	}

	return doc, nil
}
