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
	"io"
	"net/http"
	"strings"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/iterator"
)

// RowStream is a lazy sequence of decoded rows spanning all pages of one
// paginated request. It is single-use: iterate with Next until it returns
// false, then check Err; the zero-row case with a nil Err is a clean
// exhaustion. Close may be called at any point to stop early; it releases
// all network resources, including pages fetched ahead but never consumed.
// Next after Close returns false.
type RowStream struct {
	req    *pagedRequest
	rows   *csvRows
	page   *http.Response // the page rows is decoding
	runErr error
	closed bool
}

var _ iterator.Iterator[Row] = &RowStream{}

func newRowStream(req *pagedRequest) *RowStream {
	return &RowStream{req: req}
}

// Next returns the next row of the stream. Rows arrive strictly in request
// order: all pages of the first client-side request (including its
// continuation pages), then the second request, and so on.
func (s *RowStream) Next() (Row, bool) {
	if s.closed {
		return nil, false
	}
	for {
		if s.rows != nil {
			row, err := s.rows.next()
			if err == nil {
				return row, true
			}
			if err != io.EOF {
				s.fail(errors.Annotate(err, "failed to decode CSV row"))
				return nil, false
			}
			// Page exhausted; release it before moving on.
			s.page.Body.Close()
			s.page = nil
			s.rows = nil
		}
		page, ok := s.req.next()
		if !ok {
			err := s.req.err()
			s.Close()
			s.runErr = err
			return nil, false
		}
		s.page = page
		if page.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(page.Body)
			s.fail(&HTTPError{
				StatusCode: page.StatusCode,
				Body:       strings.TrimSpace(string(body)),
			})
			return nil, false
		}
		s.rows = newCSVRows(page.Body)
	}
}

// Columns returns the header of the page currently being decoded, in column
// order, or nil before the first row is delivered.
func (s *RowStream) Columns() []string {
	if s.rows == nil {
		return nil
	}
	return s.rows.columns()
}

// Err returns the error that terminated the stream, or nil after a clean
// exhaustion. It is only valid once Next has returned false.
func (s *RowStream) Err() error {
	return s.runErr
}

// Close terminates the stream early. It stops the background producer,
// releases the page being decoded and any pages fetched ahead, and waits for
// the producer to wind down before returning. Close is idempotent.
func (s *RowStream) Close() {
	if s.closed {
		return
	}
	s.closed = true
	if s.page != nil {
		s.page.Body.Close()
		s.page = nil
	}
	s.rows = nil
	s.req.close()
}

func (s *RowStream) fail(err error) {
	s.Close()
	s.runErr = err
}
