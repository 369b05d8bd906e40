// Copyright 2025 Stock Parfait

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package theta

import (
	"context"
	"net/http"
	"net/url"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/fetch"
	"github.com/stockparfait/iterator"
	"github.com/stockparfait/logging"
)

const (
	// nextPageHeader is the response header carrying the absolute URL of the
	// server-side continuation page.
	nextPageHeader = "Next-Page"

	// nextPageNone is the literal header value meaning "no continuation"; an
	// absent header means the same.
	nextPageNone = "null"

	// pageBuffer is the capacity of the page hand-off channel: the producer
	// may fetch this many pages ahead of the consumer.
	pageBuffer = 1
)

// pagedRequest fetches the pages of one logical request sequentially in a
// background goroutine and hands them to the consumer over a bounded
// channel. A request may be split across multiple pages on either side: the
// server chains pages with the Next-Page header, and the client may split a
// large query into several requests, one per element of the parameter
// sequence. Pages are delivered strictly in request order, continuation
// pages before the next client-side request.
type pagedRequest struct {
	url    string
	params iterator.Iterator[url.Values]
	pages  chan *http.Response
	cancel context.CancelFunc
	done   chan struct{}

	// fetchErr is a transport error that stopped the producer. It is written
	// by the producer goroutine before the pages channel is closed, and must
	// only be read after the channel is seen closed.
	fetchErr error
}

// startPagedRequest starts the producer goroutine. The caller must consume
// pages with next() and release the request with close(), whether or not all
// pages were consumed.
func startPagedRequest(ctx context.Context, url string, params iterator.Iterator[url.Values]) *pagedRequest {
	ctx, cancel := context.WithCancel(ctx)
	p := &pagedRequest{
		url:    url,
		params: params,
		pages:  make(chan *http.Response, pageBuffer),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go p.run(ctx)
	return p
}

// run is the producer loop: fetch a page, hand it off, decide the next page.
// It terminates on exhaustion, on a transport error, on a non-success page
// (which is still handed off for the consumer to report), or on
// cancellation.
func (p *pagedRequest) run(ctx context.Context) {
	defer close(p.done)
	defer close(p.pages)

	pageCount := 0
	resp, err := p.nextRequest(ctx)
	for resp != nil {
		pageCount++
		logging.Debugf(ctx, "ThetaData: fetched page %d: HTTP %s", pageCount, resp.Status)
		select {
		case p.pages <- resp:
		case <-ctx.Done():
			resp.Body.Close()
			return
		}
		resp, err = p.nextPage(ctx, resp)
	}
	// A cancelled in-flight request is the expected way to stop; anything
	// else must reach the consumer.
	if err != nil && ctx.Err() == nil {
		p.fetchErr = err
	}
}

// nextPage decides how the request continues after a completed page: a
// non-success page ends it (the consumer reports the error), then a
// server-advertised continuation URL takes precedence over the next
// client-side parameter set. This order determines row order and must not
// change.
func (p *pagedRequest) nextPage(ctx context.Context, resp *http.Response) (*http.Response, error) {
	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}
	if next := resp.Header.Get(nextPageHeader); next != "" && next != nextPageNone {
		r, err := get(ctx, next, nil)
		if err != nil {
			return nil, errors.Annotate(err, "failed to fetch continuation page %s", next)
		}
		return r, nil
	}
	return p.nextRequest(ctx)
}

// get issues one GET through the HTTP connection pool that the fetch package
// carries in the context. The response body is not read or buffered, and any
// response status is returned as a page: the consumer decides what a
// non-success page means.
func get(ctx context.Context, uri string, query url.Values) (*http.Response, error) {
	if len(query) > 0 {
		uri += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, errors.Annotate(err, "failed to create GET request for %s", uri)
	}
	return fetch.GetClient(ctx).Do(req)
}

// nextRequest issues a single GET for the next element of the parameter
// sequence, if any. The response body is not read or buffered, and the
// request is never retried.
func (p *pagedRequest) nextRequest(ctx context.Context) (*http.Response, error) {
	query, ok := p.params.Next()
	if !ok {
		return nil, nil
	}
	r, err := get(ctx, p.url, query)
	if err != nil {
		return nil, errors.Annotate(err, "failed to fetch %s", p.url)
	}
	return r, nil
}

// next returns the next page in order; false means no more pages. After a
// false result, err() reports why the producer stopped.
func (p *pagedRequest) next() (*http.Response, bool) {
	resp, ok := <-p.pages
	return resp, ok
}

// err returns the transport error that stopped the producer, if any. Only
// valid after next() returned false.
func (p *pagedRequest) err() error {
	return p.fetchErr
}

// close cancels the producer, waits for it to terminate, and releases every
// page it had buffered but not delivered. After close returns, no network
// resource owned by the request remains open on the producer side.
func (p *pagedRequest) close() {
	p.cancel()
	<-p.done
	for resp := range p.pages {
		resp.Body.Close()
	}
}
