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
	"encoding/csv"
	"io"
)

// Row is a single decoded CSV data row, keyed by the column names of the
// page's header line.
type Row map[string]string

// csvRows incrementally decodes one page body: the first line is the header,
// every following line is zipped against it. Rows are produced as soon as a
// full line is read; the body is never buffered whole.
type csvRows struct {
	reader *csv.Reader
	header []string
}

func newCSVRows(r io.Reader) *csvRows {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true
	return &csvRows{reader: reader}
}

// next returns the next data row. It returns io.EOF at the end of the page,
// and csv.Reader errors as is; in particular, a line whose field count does
// not match the header fails with csv.ErrFieldCount rather than being
// silently dropped.
func (c *csvRows) next() (Row, error) {
	if c.header == nil {
		header, err := c.reader.Read()
		if err != nil {
			return nil, err // io.EOF for an empty page
		}
		c.header = append([]string{}, header...)
	}
	record, err := c.reader.Read()
	if err != nil {
		return nil, err
	}
	row := make(Row, len(c.header))
	for i, name := range c.header {
		row[name] = record[i]
	}
	return row, nil
}

// columns returns the header of the page, in column order, or nil if no
// header line was read yet.
func (c *csvRows) columns() []string {
	return c.header
}
