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

package record

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MarketTimeZone is US Eastern time, the time zone of all ThetaData
// timestamps.
var MarketTimeZone = mustLoadLocation("America/New_York")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// TimeOfDay is a time of day in Eastern time with millisecond resolution,
// the "ms_of_day" representation of the wire format.
type TimeOfDay int

// NewTimeOfDay creates a TimeOfDay from clock components.
func NewTimeOfDay(hour, min, sec, msec int) TimeOfDay {
	return TimeOfDay(((hour*60+min)*60+sec)*1000 + msec)
}

// TimeOfDayOf extracts the Eastern wall clock time of t.
func TimeOfDayOf(t time.Time) TimeOfDay {
	t = t.In(MarketTimeZone)
	return NewTimeOfDay(t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/1_000_000)
}

// Regular trading session boundaries.
var (
	MarketOpen  = NewTimeOfDay(9, 30, 0, 0)
	MarketClose = NewTimeOfDay(16, 0, 0, 0)
)

// Param formats the time for the "ivl_time" / "at_time" request parameters,
// as milliseconds since midnight Eastern.
func (t TimeOfDay) Param() string { return fmt.Sprintf("%d", int(t)) }

// Clock splits the time into its clock components. Values past the end of
// the day clip to 23:59:59.999.
func (t TimeOfDay) Clock() (hour, min, sec, msec int) {
	ms := int(t)
	if ms > 86399999 {
		ms = 86399999
	}
	hour = ms / 3600_000
	ms %= 3600_000
	min = ms / 60_000
	ms %= 60_000
	return hour, min, ms / 1000, ms % 1000
}

func (t TimeOfDay) String() string {
	hour, min, sec, msec := t.Clock()
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hour, min, sec, msec)
}

// At anchors the time of day on the given date in Eastern time.
func (t TimeOfDay) At(year int, month time.Month, day int) time.Time {
	hour, min, sec, msec := t.Clock()
	return time.Date(year, month, day, hour, min, sec, msec*1_000_000, MarketTimeZone)
}

// FormatPrice formats a dollar price for use in a request. The wire format
// is an integer in 1/10 cent, so the price is rounded to 3 decimal places.
func FormatPrice(price decimal.Decimal) string {
	return price.Mul(decimal.NewFromInt(1000)).Round(0).String()
}

// ParsePrice parses a price in the integer 1/10 cent wire format, as used by
// the "strike" response field.
func ParsePrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return d.Shift(-3), nil
}

// FormatDate formats a date for use in a request, as YYYYMMDD in Eastern
// time.
func FormatDate(t time.Time) string {
	return t.In(MarketTimeZone).Format("20060102")
}
