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
	"time"

	"github.com/stockparfait/errors"
)

// Date records a calendar date as year, month and day. The struct is designed
// to fit into 4 bytes. Its string form is the YYYYMMDD format used by
// ThetaData requests and responses.
type Date struct {
	YearVal  uint16
	MonthVal uint8
	DayVal   uint8
}

// NewDate is the constructor for Date.
func NewDate(year uint16, month, day uint8) Date {
	return Date{year, month, day}
}

// NewDateFromTime creates a Date instance from the calendar date of t in its
// own location.
func NewDateFromTime(t time.Time) Date {
	return Date{
		YearVal:  uint16(t.Year()),
		MonthVal: uint8(t.Month()),
		DayVal:   uint8(t.Day()),
	}
}

// NewDateFromString creates a Date instance from its YYYYMMDD representation.
func NewDateFromString(s string) (Date, error) {
	if len(s) != 8 {
		return Date{}, errors.Reason("date must be in YYYYMMDD format: '%s'", s)
	}
	t, err := time.Parse("20060102", s)
	if err != nil {
		return Date{}, errors.Annotate(err, "failed to parse a Date string: '%s'", s)
	}
	return NewDateFromTime(t), nil
}

func (d Date) Year() uint16 { return d.YearVal }
func (d Date) Month() uint8 { return d.MonthVal }
func (d Date) Day() uint8   { return d.DayVal }

// String representation of the value in the YYYYMMDD wire format.
func (d Date) String() string {
	return fmt.Sprintf("%04d%02d%02d", d.Year(), d.Month(), d.Day())
}

// ToTime converts Date to Time in UTC.
func (d Date) ToTime() time.Time {
	return time.Date(int(d.Year()), time.Month(d.Month()), int(d.Day()), 0, 0, 0, 0, time.UTC)
}

// In returns the midnight of the date in the given location.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(int(d.Year()), time.Month(d.Month()), int(d.Day()), 0, 0, 0, 0, loc)
}

// AddDays returns the date n calendar days after d; n may be negative.
func (d Date) AddDays(n int) Date {
	return NewDateFromTime(d.ToTime().AddDate(0, 0, n))
}

// Before compares two Date objects for strict inequality (self < d2).
func (d Date) Before(d2 Date) bool {
	if d.Year() != d2.Year() {
		return d.Year() < d2.Year()
	}
	if d.Month() != d2.Month() {
		return d.Month() < d2.Month()
	}
	return d.Day() < d2.Day()
}

// After compares two Date objects for strict inequality, self > d2.
func (d Date) After(d2 Date) bool {
	return d2.Before(d)
}

// IsZero checks whether the date has a zero value.
func (d Date) IsZero() bool {
	return d.Year() == 0 && d.Month() == 0 && d.Day() == 0
}

// DateRange is an inclusive range of calendar dates.
type DateRange struct {
	Start Date
	End   Date
}

// ErrInvalidRange indicates an invalid date range or chunk size in
// SplitRange. It is reported eagerly, before any request is issued.
var ErrInvalidRange = errors.Reason("invalid date range")

// SplitRange splits the inclusive range [start, end] into consecutive
// sub-ranges of at most maxDays days each. The sub-ranges are contiguous,
// do not overlap, and cover the original range exactly; the last one may be
// shorter than maxDays. A single-day range yields a single chunk.
func SplitRange(start, end Date, maxDays int) ([]DateRange, error) {
	if maxDays < 1 {
		return nil, errors.Annotate(ErrInvalidRange, "maxDays = %d, must be >= 1", maxDays)
	}
	if end.Before(start) {
		return nil, errors.Annotate(ErrInvalidRange, "start %s is after end %s", start, end)
	}
	var chunks []DateRange
	for curr := start; !end.Before(curr); curr = curr.AddDays(maxDays) {
		chunkEnd := curr.AddDays(maxDays - 1)
		if end.Before(chunkEnd) {
			chunkEnd = end
		}
		chunks = append(chunks, DateRange{Start: curr, End: chunkEnd})
	}
	return chunks, nil
}

