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
	"github.com/stockparfait/errors"
	"github.com/stockparfait/iterator"
)

// MappedStream converts a RowStream into a typed lazy sequence by applying a
// parsing function to each row. It has the same single-use, Close-to-release
// semantics as the underlying RowStream.
type MappedStream[T any] struct {
	rows *RowStream
	f    func(Row) (T, bool, error)
	err  error
}

// MapRows wraps a RowStream with a row parser. The parser's second return
// value marks rows to skip (for instance, the all-zero filler rows the
// terminal emits on non-trading days); a parser error terminates the stream.
func MapRows[T any](rows *RowStream, f func(Row) (T, bool, error)) *MappedStream[T] {
	return &MappedStream[T]{rows: rows, f: f}
}

// Next returns the next parsed value. After it returns false, Err reports
// the terminating error, if any.
func (m *MappedStream[T]) Next() (T, bool) {
	var zero T
	for {
		row, ok := m.rows.Next()
		if !ok {
			m.err = m.rows.Err()
			return zero, false
		}
		v, keep, err := m.f(row)
		if err != nil {
			m.Close()
			m.err = errors.Annotate(err, "failed to parse row")
			return zero, false
		}
		if keep {
			return v, true
		}
	}
}

// Err returns the error that terminated the sequence, if any. Only valid
// after Next returned false.
func (m *MappedStream[T]) Err() error {
	return m.err
}

// Close releases the underlying stream. Idempotent.
func (m *MappedStream[T]) Close() {
	m.rows.Close()
}

// First returns the first value of the sequence and closes it. It returns
// ErrNoData if the sequence ends cleanly without a single value.
func First[T any](m *MappedStream[T]) (T, error) {
	defer m.Close()
	v, ok := m.Next()
	if !ok {
		if err := m.Err(); err != nil {
			return v, err
		}
		return v, ErrNoData
	}
	return v, nil
}

// All drains the sequence into a slice and closes it.
func All[T any](m *MappedStream[T]) ([]T, error) {
	defer m.Close()
	var vals []T
	for v, ok := m.Next(); ok; v, ok = m.Next() {
		vals = append(vals, v)
	}
	return vals, m.Err()
}

var _ iterator.Iterator[int] = &MappedStream[int]{}
