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
	"net/url"
	"strings"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/iterator"
)

// Query is a builder for a single terminal request, identified by its API
// path such as "hist/option/quote". Builder methods always create a deep
// copy, leaving the original intact; a query may therefore be used as a
// template for several streams.
type Query struct {
	path      string
	params    url.Values
	start     Date
	end       Date
	splitDays int
}

// NewQuery creates a new query for the API path assembled from the pieces.
func NewQuery(path ...string) *Query {
	return &Query{path: strings.Join(path, "/"), params: make(url.Values)}
}

// Copy creates a deep copy of the query. It is primarily used in its builder
// methods.
func (q *Query) Copy() *Query {
	q2 := Query{
		path:      q.path,
		start:     q.start,
		end:       q.end,
		splitDays: q.splitDays,
	}
	q2.params = make(url.Values, len(q.params))
	for k, v := range q.params {
		q2.params[k] = append([]string{}, v...)
	}
	return &q2
}

// Param sets a single query parameter.
func (q *Query) Param(key, value string) *Query {
	q2 := q.Copy()
	q2.params.Set(key, value)
	return q2
}

// DateRange sets the inclusive start_date / end_date parameters.
func (q *Query) DateRange(start, end Date) *Query {
	q2 := q.Copy()
	q2.start = start
	q2.end = end
	return q2
}

// SplitDays requests client-side splitting of the date range into
// sub-requests of at most days calendar days each. It only takes effect
// together with DateRange. Zero disables splitting.
func (q *Query) SplitDays(days int) *Query {
	q2 := q.Copy()
	q2.splitDays = days
	return q2
}

// Values returns the query values for the query. Each call creates a new
// object, so the caller is free to modify it without affecting the query.
func (q *Query) Values() url.Values {
	v := make(url.Values, len(q.params)+2)
	for k, vals := range q.params {
		v[k] = append([]string{}, vals...)
	}
	if !q.start.IsZero() || !q.end.IsZero() {
		v.Set("start_date", q.start.String())
		v.Set("end_date", q.end.String())
	}
	return v
}

// Path returns the API path of the query.
func (q *Query) Path() string {
	return q.path
}

// Stream executes the query using the Client from the context and returns
// the lazy stream of its result rows. An invalid date range is reported
// immediately, before any request is issued. The caller must fully consume
// the stream or Close it.
func (q *Query) Stream(ctx context.Context) (*RowStream, error) {
	client := GetClient(ctx)
	if client == nil {
		return nil, errors.Reason("Query.Stream: no client in context")
	}
	template := q.Values()
	template.Set("use_csv", "true")

	var params iterator.Iterator[url.Values]
	if q.splitDays > 0 {
		if q.start.IsZero() || q.end.IsZero() {
			return nil, errors.Annotate(ErrInvalidRange,
				"Query.Stream: SplitDays requires a DateRange for %s", q.path)
		}
		chunks, err := SplitRange(q.start, q.end, q.splitDays)
		if err != nil {
			return nil, errors.Annotate(err, "Query.Stream: cannot split %s", q.path)
		}
		params = &chunkedParams{template: template, chunks: chunks}
	} else {
		params = iterator.FromSlice([]url.Values{template})
	}
	return newRowStream(startPagedRequest(ctx, client.endpoint(q.path), params)), nil
}

// Collect is the eager variant of Stream: it drains the stream and returns
// all rows in order.
func (q *Query) Collect(ctx context.Context) ([]Row, error) {
	s, err := q.Stream(ctx)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	var rows []Row
	for row, ok := s.Next(); ok; row, ok = s.Next() {
		rows = append(rows, row)
	}
	if err := s.Err(); err != nil {
		return nil, errors.Annotate(err, "failed to collect %s", q.path)
	}
	return rows, nil
}

// chunkedParams generates the per-chunk query values of a split date range:
// a fresh copy of the template with start_date / end_date overwritten, so
// that issued parameters are never mutated afterwards. It is a single-pass
// sequence.
type chunkedParams struct {
	template url.Values
	chunks   []DateRange
	pos      int
}

var _ iterator.Iterator[url.Values] = &chunkedParams{}

func (c *chunkedParams) Next() (url.Values, bool) {
	if c.pos >= len(c.chunks) {
		return nil, false
	}
	r := c.chunks[c.pos]
	c.pos++
	v := make(url.Values, len(c.template))
	for k, vals := range c.template {
		v[k] = append([]string{}, vals...)
	}
	v.Set("start_date", r.Start.String())
	v.Set("end_date", r.End.String())
	return v, true
}
