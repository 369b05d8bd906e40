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
	"fmt"

	"github.com/stockparfait/errors"
)

// HTTPError is the terminal stream error for a page answered with a
// non-success HTTP status. It carries the status code and the response body
// text.
type HTTPError struct {
	StatusCode int
	Body       string
}

var _ error = &HTTPError{}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("ThetaData returned HTTP %d: %s", e.StatusCode, e.Body)
}

// ErrNoData is returned by convenience methods that expect at least one row
// when the stream ends cleanly without producing any.
var ErrNoData = errors.Reason("no data")
